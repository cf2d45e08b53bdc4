package daxa

type ImageView struct {
	Device *Device
	ID     ImageViewID
}

func (d *Device) CreateImageView(info ImageViewInfo) (*ImageView, error) {
	var id ImageViewID
	err := logFailure("create image view", d.lib.CreateImageView(d.handle, &info, &id))
	if err != nil {
		return nil, err
	}

	var ret ImageView
	ret.Device = d
	ret.ID = id

	return &ret, nil
}

func (d *Device) DestroyImageView(id ImageViewID) error {
	return logFailure("destroy image view", d.lib.DestroyImageView(d.handle, id))
}

func (i *ImageView) IsValid() bool {
	return i.Device.IsImageViewValid(i.ID)
}

func (i *ImageView) Destroy() error {
	return i.Device.DestroyImageView(i.ID)
}
