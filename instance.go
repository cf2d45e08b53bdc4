package daxa

import (
	"sync"
)

// Instance is the native library instance devices are created from.
type Instance struct {
	lib    Library
	handle InstanceHandle
	once   sync.Once
}

// NewInstance creates a native instance through lib.
func NewInstance(lib Library, info InstanceInfo) (*Instance, error) {
	var handle InstanceHandle
	err := logFailure("create instance", lib.CreateInstance(&info, &handle))
	if err != nil {
		return nil, err
	}

	Logger().Debug("daxa: instance created", "app", info.AppName, "engine", info.EngineName)

	return &Instance{lib: lib, handle: handle}, nil
}

func (i *Instance) Handle() InstanceHandle {
	return i.handle
}

// CreateDevice selects a physical device with the native default scoring and
// creates a logical device on it.
func (i *Instance) CreateDevice(info DeviceInfo) (*Device, error) {
	var handle DeviceHandle
	err := logFailure("create device", i.lib.CreateDevice(i.handle, &info, &handle))
	if err != nil {
		return nil, err
	}

	Logger().Debug("daxa: device created", "name", info.Name, "handle", uintptr(handle))

	return NewDevice(i.lib, handle), nil
}

// Destroy releases the instance. Devices created from it must be destroyed
// first.
func (i *Instance) Destroy() {
	i.once.Do(func() {
		i.lib.DestroyInstance(i.handle)
	})
}
