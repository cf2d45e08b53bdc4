/*
Package daxa exposes the device object model of the Daxa GPU abstraction library to Go.
Daxa sits atop Vulkan and manages memory, descriptor indexing, synchronization and
pipeline compilation itself; this package does none of that. It loads the native
library, forwards every call to it and turns raw handles and status codes into Go
values.

Every creation call follows the same contract: a descriptor goes in, the native
library writes a handle into a zeroed output parameter and returns a status code.
ResultSuccess yields a wrapper holding that handle and a pointer to the Device that
created it; any other code is returned unchanged as the error, and no wrapper is
returned. Descriptors are never validated here.

Native Daxa terms
	Instance	the library instance devices are created from
	Device		a logical device, the target of almost every call
	BufferID	a versioned id of a buffer in the device's resource tables
	ImageID		a versioned id of an image
	ImageViewID	a versioned id of a view describing how an image is read
	SamplerID	a versioned id of a sampler
	MemoryBlock	a raw memory allocation buffers can be placed into
	Pipeline	a compiled raster or compute program
	Swapchain	the presentable images bound to a native window
	CommandRecorder	records commands into executable command lists
	Semaphore	binary or timeline GPU synchronization primitive

Ids stay valid until destroyed; the native library defers actual destruction until
the GPU stops using a resource and performs it during CollectGarbage. Use the
IsXValid queries instead of assuming an id is alive.

A typical setup

	lib, err := daxa.Open()
	instance, err := daxa.NewInstance(lib, daxa.DefaultInstanceInfo())
	device, err := instance.CreateDevice(daxa.DefaultDeviceInfo())
	defer device.Destroy()

	buffer, err := device.CreateBuffer(daxa.BufferInfo{Size: 1 << 20, Name: "staging"})
	if errors.Is(err, daxa.ResultErrorOutOfDeviceMemory) {
		...
	}

Library is an interface, so a test double can stand in for the native library.
*/
package daxa
