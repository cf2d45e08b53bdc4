package daxa

// TimelineSemaphoreValue pairs a timeline semaphore with the value a
// submission waits for or signals.
type TimelineSemaphoreValue struct {
	Semaphore *TimelineSemaphore
	Value     uint64
}

type CommandSubmitInfo struct {
	WaitStages               PipelineStageFlags
	CommandLists             []*ExecutableCommandList
	WaitBinarySemaphores     []*BinarySemaphore
	SignalBinarySemaphores   []*BinarySemaphore
	WaitTimelineSemaphores   []TimelineSemaphoreValue
	SignalTimelineSemaphores []TimelineSemaphoreValue
}

type PresentInfo struct {
	WaitBinarySemaphores []*BinarySemaphore
	Swapchain            *Swapchain
}

// Submit queues command lists on the device's main queue.
func (d *Device) Submit(info CommandSubmitInfo) error {
	native := NativeSubmitInfo{
		WaitStages:               info.WaitStages,
		CommandLists:             make([]Handle, len(info.CommandLists)),
		WaitBinarySemaphores:     binaryHandles(info.WaitBinarySemaphores),
		SignalBinarySemaphores:   binaryHandles(info.SignalBinarySemaphores),
		WaitTimelineSemaphores:   timelinePairs(info.WaitTimelineSemaphores),
		SignalTimelineSemaphores: timelinePairs(info.SignalTimelineSemaphores),
	}
	for i := range info.CommandLists {
		native.CommandLists[i] = info.CommandLists[i].Handle
	}

	return logFailure("submit", d.lib.Submit(d.handle, &native))
}

// SubmitWaitIdle submits command lists and blocks until the device is idle.
func (d *Device) SubmitWaitIdle(lists ...*ExecutableCommandList) error {
	if err := d.Submit(CommandSubmitInfo{CommandLists: lists}); err != nil {
		return err
	}
	return d.WaitIdle()
}

// Present queues the current swapchain image for presentation.
func (d *Device) Present(info PresentInfo) error {
	native := NativePresentInfo{
		WaitBinarySemaphores: binaryHandles(info.WaitBinarySemaphores),
	}
	if info.Swapchain != nil {
		native.Swapchain = info.Swapchain.Handle
	}

	return logFailure("present", d.lib.Present(d.handle, &native))
}

func binaryHandles(s []*BinarySemaphore) []Handle {
	b := make([]Handle, len(s))
	for i := range s {
		b[i] = s[i].Handle
	}
	return b
}

func timelinePairs(s []TimelineSemaphoreValue) []TimelinePair {
	p := make([]TimelinePair, len(s))
	for i := range s {
		p[i] = TimelinePair{Semaphore: s[i].Semaphore.Handle, Value: s[i].Value}
	}
	return p
}
