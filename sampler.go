package daxa

// Sampler describes how shaders read from image views.
type Sampler struct {
	Device *Device
	ID     SamplerID
}

func (d *Device) CreateSampler(info SamplerInfo) (*Sampler, error) {
	var id SamplerID
	err := logFailure("create sampler", d.lib.CreateSampler(d.handle, &info, &id))
	if err != nil {
		return nil, err
	}

	var ret Sampler
	ret.Device = d
	ret.ID = id

	return &ret, nil
}

func (d *Device) DestroySampler(id SamplerID) error {
	return logFailure("destroy sampler", d.lib.DestroySampler(d.handle, id))
}

func (s *Sampler) IsValid() bool {
	return s.Device.IsSamplerValid(s.ID)
}

func (s *Sampler) Destroy() error {
	return s.Device.DestroySampler(s.ID)
}
