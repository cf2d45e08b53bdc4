package daxa

// Swapchain is a set of presentable images bound to a native window.
type Swapchain struct {
	object
	Info SwapchainInfo
}

func (d *Device) CreateSwapchain(info SwapchainInfo) (*Swapchain, error) {
	h, err := d.create("create swapchain", func(out *Handle) Result {
		return d.lib.CreateSwapchain(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &Swapchain{
		object: object{Device: d, Handle: h, kind: ObjectSwapchain},
		Info:   info,
	}, nil
}

// AcquireNextImage returns the id of the next image to render into. The
// AcquireSemaphore is signaled once the image is ready.
func (s *Swapchain) AcquireNextImage() (ImageID, error) {
	var id ImageID
	err := logFailure("swapchain acquire next image", s.Device.lib.SwapchainAcquireNextImage(s.Handle, &id))
	if err != nil {
		return ImageID{}, err
	}
	return id, nil
}

// AcquireSemaphore returns the semaphore signaled by the current acquire. It
// is owned by the swapchain; destroying the returned wrapper does nothing.
func (s *Swapchain) AcquireSemaphore() *BinarySemaphore {
	return s.borrowSemaphore(s.Device.lib.SwapchainAcquireSemaphore(s.Handle))
}

// PresentSemaphore returns the semaphore the current present waits on. It is
// owned by the swapchain.
func (s *Swapchain) PresentSemaphore() *BinarySemaphore {
	return s.borrowSemaphore(s.Device.lib.SwapchainPresentSemaphore(s.Handle))
}

func (s *Swapchain) borrowSemaphore(h Handle) *BinarySemaphore {
	return &BinarySemaphore{
		object: object{Device: s.Device, Handle: h, kind: ObjectBinarySemaphore, borrowed: true},
	}
}
