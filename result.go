package daxa

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Result is a status code returned by the native library. It is the Vulkan
// VkResult range extended with Daxa specific codes. Any Result other than
// ResultSuccess is an error and is returned to callers unchanged.
type Result int32

const (
	ResultSuccess                   = Result(vk.Success)
	ResultNotReady                  = Result(vk.NotReady)
	ResultTimeout                   = Result(vk.Timeout)
	ResultEventSet                  = Result(vk.EventSet)
	ResultEventReset                = Result(vk.EventReset)
	ResultIncomplete                = Result(vk.Incomplete)
	ResultErrorOutOfHostMemory      = Result(vk.ErrorOutOfHostMemory)
	ResultErrorOutOfDeviceMemory    = Result(vk.ErrorOutOfDeviceMemory)
	ResultErrorInitializationFailed = Result(vk.ErrorInitializationFailed)
	ResultErrorDeviceLost           = Result(vk.ErrorDeviceLost)
	ResultErrorMemoryMapFailed      = Result(vk.ErrorMemoryMapFailed)
	ResultErrorLayerNotPresent      = Result(vk.ErrorLayerNotPresent)
	ResultErrorExtensionNotPresent  = Result(vk.ErrorExtensionNotPresent)
	ResultErrorFeatureNotPresent    = Result(vk.ErrorFeatureNotPresent)
	ResultErrorIncompatibleDriver   = Result(vk.ErrorIncompatibleDriver)
	ResultErrorTooManyObjects       = Result(vk.ErrorTooManyObjects)
	ResultErrorFormatNotSupported   = Result(vk.ErrorFormatNotSupported)
	ResultErrorFragmentedPool       = Result(vk.ErrorFragmentedPool)
	ResultErrorUnknown              = Result(-13)
	ResultErrorOutOfPoolMemory      = Result(vk.ErrorOutOfPoolMemory)
	ResultErrorSurfaceLost          = Result(vk.ErrorSurfaceLost)
	ResultErrorNativeWindowInUse    = Result(vk.ErrorNativeWindowInUse)
	ResultSuboptimal                = Result(vk.Suboptimal)
	ResultErrorOutOfDate            = Result(vk.ErrorOutOfDate)
)

// Daxa specific codes live above 1<<30.
const (
	ResultMissingExtension Result = (1 << 30) + iota
	ResultInvalidBufferID
	ResultInvalidImageID
	ResultInvalidImageViewID
	ResultInvalidSamplerID
	ResultBufferDoubleFree
	ResultImageDoubleFree
	ResultImageViewDoubleFree
	ResultSamplerDoubleFree
	ResultInvalidBufferInfo
	ResultInvalidImageInfo
	ResultInvalidImageViewInfo
	ResultInvalidSamplerInfo
	ResultNoSuitableFormatFound
	ResultNoSuitableDeviceFound
	ResultDeviceSurfaceUnsupportedPresentMode
	ResultExceededMaxBuffers
	ResultExceededMaxImages
	ResultExceededMaxImageViews
	ResultExceededMaxSamplers
)

var resultNames = map[Result]string{
	ResultSuccess:                   "success",
	ResultNotReady:                  "not ready",
	ResultTimeout:                   "timeout",
	ResultEventSet:                  "event set",
	ResultEventReset:                "event reset",
	ResultIncomplete:                "incomplete",
	ResultErrorOutOfHostMemory:      "out of host memory",
	ResultErrorOutOfDeviceMemory:    "out of device memory",
	ResultErrorInitializationFailed: "initialization failed",
	ResultErrorDeviceLost:           "device lost",
	ResultErrorMemoryMapFailed:      "memory map failed",
	ResultErrorLayerNotPresent:      "layer not present",
	ResultErrorExtensionNotPresent:  "extension not present",
	ResultErrorFeatureNotPresent:    "feature not present",
	ResultErrorIncompatibleDriver:   "incompatible driver",
	ResultErrorTooManyObjects:       "too many objects",
	ResultErrorFormatNotSupported:   "format not supported",
	ResultErrorFragmentedPool:       "fragmented pool",
	ResultErrorUnknown:              "unknown error",
	ResultErrorOutOfPoolMemory:      "out of pool memory",
	ResultErrorSurfaceLost:          "surface lost",
	ResultErrorNativeWindowInUse:    "native window in use",
	ResultSuboptimal:                "suboptimal",
	ResultErrorOutOfDate:            "out of date",

	ResultMissingExtension:                    "missing extension",
	ResultInvalidBufferID:                     "invalid buffer id",
	ResultInvalidImageID:                      "invalid image id",
	ResultInvalidImageViewID:                  "invalid image view id",
	ResultInvalidSamplerID:                    "invalid sampler id",
	ResultBufferDoubleFree:                    "buffer double free",
	ResultImageDoubleFree:                     "image double free",
	ResultImageViewDoubleFree:                 "image view double free",
	ResultSamplerDoubleFree:                   "sampler double free",
	ResultInvalidBufferInfo:                   "invalid buffer info",
	ResultInvalidImageInfo:                    "invalid image info",
	ResultInvalidImageViewInfo:                "invalid image view info",
	ResultInvalidSamplerInfo:                  "invalid sampler info",
	ResultNoSuitableFormatFound:               "no suitable format found",
	ResultNoSuitableDeviceFound:               "no suitable device found",
	ResultDeviceSurfaceUnsupportedPresentMode: "device surface unsupported present mode",
	ResultExceededMaxBuffers:                  "exceeded max buffers",
	ResultExceededMaxImages:                   "exceeded max images",
	ResultExceededMaxImageViews:               "exceeded max image views",
	ResultExceededMaxSamplers:                 "exceeded max samplers",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("result %d", int32(r))
}

func (r Result) Error() string {
	return fmt.Sprintf("daxa: %s (%d)", r.String(), int32(r))
}

// Error converts a native status code into a Go error: nil for ResultSuccess,
// the Result itself otherwise.
func Error(r Result) error {
	if r == ResultSuccess {
		return nil
	}
	return r
}
