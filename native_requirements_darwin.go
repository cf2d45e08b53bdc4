package daxa

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

type memoryRequirementsFunc func(device DeviceHandle, info unsafe.Pointer) MemoryRequirements

func newMemoryRequirementsFunc(addr uintptr) (memoryRequirementsFunc, error) {
	var fn func(device DeviceHandle, info unsafe.Pointer) MemoryRequirements
	purego.RegisterFunc(&fn, addr)
	return fn, nil
}
