package daxa

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"
)

// Device owns a native device handle. Resources created from it keep a
// pointer back to it for validity queries and cleanup; the device does not
// own them.
//
// Destroy releases the native device. If a Device becomes unreachable without
// Destroy having been called, the garbage collector releases it instead.
type Device struct {
	lib    Library
	handle DeviceHandle
	state  *deviceState
}

// deviceState is shared by Destroy and the GC cleanup so the native destroy
// entry point runs once no matter which path gets there first.
type deviceState struct {
	lib    Library
	handle DeviceHandle
	once   sync.Once
}

func (s *deviceState) destroy() {
	s.once.Do(func() {
		s.lib.DestroyDevice(s.handle)
		Logger().Debug("daxa: device destroyed", "handle", uintptr(s.handle))
	})
}

// NewDevice wraps a native device handle created through lib. The returned
// Device takes ownership of the handle.
func NewDevice(lib Library, handle DeviceHandle) *Device {
	d := &Device{
		lib:    lib,
		handle: handle,
		state:  &deviceState{lib: lib, handle: handle},
	}
	runtime.AddCleanup(d, func(s *deviceState) {
		Logger().Warn("daxa: device was not destroyed before being collected", "handle", uintptr(s.handle))
		s.destroy()
	}, d.state)
	return d
}

// Handle returns the native device handle.
func (d *Device) Handle() DeviceHandle {
	return d.handle
}

func (d *Device) String() string {
	return fmt.Sprintf("{ Handle: %#x Name: %q }", uintptr(d.handle), d.Info().Name)
}

// Destroy releases the native device. Safe to call more than once and from
// several goroutines; only the first call reaches the native library.
func (d *Device) Destroy() {
	d.state.destroy()
}

// Info returns the descriptor the device was created with.
func (d *Device) Info() DeviceInfo {
	return d.lib.DeviceInfo(d.handle)
}

// Properties returns the physical device properties of the device.
func (d *Device) Properties() DeviceProperties {
	return d.lib.DeviceProperties(d.handle)
}

// WaitIdle blocks until all work submitted to the device has completed.
func (d *Device) WaitIdle() error {
	return logFailure("wait idle", d.lib.WaitIdle(d.handle))
}

// CollectGarbage destroys resources whose destruction was deferred by the
// native library until the GPU finished using them.
func (d *Device) CollectGarbage() error {
	return logFailure("collect garbage", d.lib.CollectGarbage(d.handle))
}

func (d *Device) BufferMemoryRequirements(info BufferInfo) MemoryRequirements {
	return d.lib.BufferMemoryRequirements(d.handle, &info)
}

func (d *Device) ImageMemoryRequirements(info ImageInfo) MemoryRequirements {
	return d.lib.ImageMemoryRequirements(d.handle, &info)
}

func (d *Device) IsBufferValid(id BufferID) bool {
	return d.lib.IsBufferValid(d.handle, id)
}

func (d *Device) IsImageValid(id ImageID) bool {
	return d.lib.IsImageValid(d.handle, id)
}

func (d *Device) IsImageViewValid(id ImageViewID) bool {
	return d.lib.IsImageViewValid(d.handle, id)
}

func (d *Device) IsSamplerValid(id SamplerID) bool {
	return d.lib.IsSamplerValid(d.handle, id)
}

// BufferDeviceAddress returns the GPU virtual address of a buffer.
func (d *Device) BufferDeviceAddress(id BufferID) (BufferDeviceAddress, error) {
	var address BufferDeviceAddress
	err := logFailure("buffer device address", d.lib.BufferDeviceAddress(d.handle, id, &address))
	if err != nil {
		return 0, err
	}
	return address, nil
}

// BufferHostAddress returns the host mapping of a host visible buffer.
func (d *Device) BufferHostAddress(id BufferID) (unsafe.Pointer, error) {
	var address unsafe.Pointer
	err := logFailure("buffer host address", d.lib.BufferHostAddress(d.handle, id, &address))
	if err != nil {
		return nil, err
	}
	return address, nil
}

// DestroyAny destroys a resource wrapper, resource id or refcounted object
// created from this device. Values it does not recognise are ignored.
func (d *Device) DestroyAny(i interface{}) error {
	switch t := i.(type) {
	case BufferID:
		return d.DestroyBuffer(t)
	case ImageID:
		return d.DestroyImage(t)
	case ImageViewID:
		return d.DestroyImageView(t)
	case SamplerID:
		return d.DestroySampler(t)
	case Destroyer:
		return t.Destroy()
	case Releaser:
		t.Destroy()
	}
	return nil
}
