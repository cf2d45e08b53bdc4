//go:build linux && cgo

package daxa

/*
#include <stdint.h>

typedef struct {
	uint64_t size;
	uint64_t alignment;
	uint32_t memory_type_bits;
} daxa_go_memory_requirements;

typedef daxa_go_memory_requirements (*daxa_go_memory_requirements_fn)(uintptr_t device, void const *info);

static daxa_go_memory_requirements daxa_go_call_memory_requirements(uintptr_t fn, uintptr_t device, void const *info) {
	return ((daxa_go_memory_requirements_fn)fn)(device, info);
}
*/
import "C"

import "unsafe"

type memoryRequirementsFunc func(device DeviceHandle, info unsafe.Pointer) MemoryRequirements

// newMemoryRequirementsFunc calls through a C trampoline since purego cannot
// return structs on linux. info must not contain Go pointers.
func newMemoryRequirementsFunc(addr uintptr) (memoryRequirementsFunc, error) {
	return func(device DeviceHandle, info unsafe.Pointer) MemoryRequirements {
		r := C.daxa_go_call_memory_requirements(C.uintptr_t(addr), C.uintptr_t(device), info)
		return MemoryRequirements{
			Size:           uint64(r.size),
			Alignment:      uint64(r.alignment),
			MemoryTypeBits: uint32(r.memory_type_bits),
		}
	}, nil
}
