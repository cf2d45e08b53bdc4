package daxa

// Event is a split barrier signaled and waited on from command recorders.
type Event struct {
	object
}

func (d *Device) CreateEvent(info EventInfo) (*Event, error) {
	h, err := d.create("create event", func(out *Handle) Result {
		return d.lib.CreateEvent(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &Event{
		object: object{Device: d, Handle: h, kind: ObjectEvent},
	}, nil
}
