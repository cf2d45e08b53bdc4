package daxa

type Image struct {
	Device *Device
	ID     ImageID
	Format Format
}

func (d *Device) CreateImage(info ImageInfo) (*Image, error) {
	var id ImageID
	err := logFailure("create image", d.lib.CreateImage(d.handle, &info, &id))
	if err != nil {
		return nil, err
	}

	var ret Image
	ret.Device = d
	ret.ID = id
	ret.Format = info.Format

	return &ret, nil
}

func (d *Device) DestroyImage(id ImageID) error {
	return logFailure("destroy image", d.lib.DestroyImage(d.handle, id))
}

func (i *Image) IsValid() bool {
	return i.Device.IsImageValid(i.ID)
}

// CreateImageView creates a 2D view over the first mip and layer of the image
// using the image's own format.
func (i *Image) CreateImageView() (*ImageView, error) {
	return i.Device.CreateImageView(ImageViewInfo{
		Type:   ImageViewType2D,
		Format: i.Format,
		Image:  i.ID,
		Slice: ImageMipArraySlice{
			LevelCount: 1,
			LayerCount: 1,
		},
	})
}

func (i *Image) Destroy() error {
	return i.Device.DestroyImage(i.ID)
}
