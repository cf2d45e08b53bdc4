//go:build linux && !cgo

package daxa

import (
	"fmt"
	"unsafe"
)

type memoryRequirementsFunc func(device DeviceHandle, info unsafe.Pointer) MemoryRequirements

func newMemoryRequirementsFunc(addr uintptr) (memoryRequirementsFunc, error) {
	return nil, fmt.Errorf("memory requirement queries need cgo on linux: %w", ErrNativeUnsupported)
}
