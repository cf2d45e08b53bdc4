package daxa

// CommandRecorder records GPU commands. Recording itself happens in the
// native library; this wrapper only creates and completes recorders.
type CommandRecorder struct {
	object
	Name string
}

// ExecutableCommandList is a completed batch of commands ready for Submit.
type ExecutableCommandList struct {
	object
}

func (d *Device) CreateCommandRecorder(info CommandRecorderInfo) (*CommandRecorder, error) {
	h, err := d.create("create command recorder", func(out *Handle) Result {
		return d.lib.CreateCommandRecorder(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &CommandRecorder{
		object: object{Device: d, Handle: h, kind: ObjectCommandRecorder},
		Name:   info.Name,
	}, nil
}

// Complete closes the commands recorded so far into an executable list. The
// recorder can keep recording afterwards.
func (c *CommandRecorder) Complete() (*ExecutableCommandList, error) {
	var h Handle
	err := logFailure("complete current commands", c.Device.lib.CompleteCommands(c.Handle, &h))
	if err != nil {
		return nil, err
	}

	return &ExecutableCommandList{
		object: object{Device: c.Device, Handle: h, kind: ObjectExecutableCommandList},
	}, nil
}
