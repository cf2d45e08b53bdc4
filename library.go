package daxa

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrNativeUnsupported is returned by Load on platforms where the native
// library cannot be loaded dynamically.
var ErrNativeUnsupported = errors.New("daxa: native library loading is not supported on this platform")

// ObjectKind names the reference counted native objects released through
// Library.Release.
type ObjectKind int

const (
	ObjectMemoryBlock ObjectKind = iota
	ObjectRasterPipeline
	ObjectComputePipeline
	ObjectSwapchain
	ObjectCommandRecorder
	ObjectExecutableCommandList
	ObjectBinarySemaphore
	ObjectTimelineSemaphore
	ObjectEvent
	ObjectTimelineQueryPool
)

var objectKindNames = [...]string{
	ObjectMemoryBlock:           "memory block",
	ObjectRasterPipeline:        "raster pipeline",
	ObjectComputePipeline:       "compute pipeline",
	ObjectSwapchain:             "swapchain",
	ObjectCommandRecorder:       "command recorder",
	ObjectExecutableCommandList: "executable command list",
	ObjectBinarySemaphore:       "binary semaphore",
	ObjectTimelineSemaphore:     "timeline semaphore",
	ObjectEvent:                 "event",
	ObjectTimelineQueryPool:     "timeline query pool",
}

func (k ObjectKind) String() string {
	if int(k) >= 0 && int(k) < len(objectKindNames) {
		return objectKindNames[k]
	}
	return fmt.Sprintf("object kind %d", int(k))
}

// TimelinePair is a timeline semaphore handle with the value to wait for or signal.
type TimelinePair struct {
	Semaphore Handle
	Value     uint64
}

// NativeSubmitInfo is the handle level form of CommandSubmitInfo.
type NativeSubmitInfo struct {
	WaitStages               PipelineStageFlags
	CommandLists             []Handle
	WaitBinarySemaphores     []Handle
	SignalBinarySemaphores   []Handle
	WaitTimelineSemaphores   []TimelinePair
	SignalTimelineSemaphores []TimelinePair
}

// NativePresentInfo is the handle level form of PresentInfo.
type NativePresentInfo struct {
	WaitBinarySemaphores []Handle
	Swapchain            Handle
}

// Library is the C ABI of the native Daxa library. Every method maps to one
// native entry point: descriptors are passed by pointer, created handles are
// written to out, and the native status code is returned untouched.
//
// Load returns the dynamically loaded implementation. Anything else that
// satisfies the interface, such as a test double, can back a Device.
type Library interface {
	CreateInstance(info *InstanceInfo, out *InstanceHandle) Result
	DestroyInstance(instance InstanceHandle)
	CreateDevice(instance InstanceHandle, info *DeviceInfo, out *DeviceHandle) Result
	DestroyDevice(device DeviceHandle)

	DeviceInfo(device DeviceHandle) DeviceInfo
	DeviceProperties(device DeviceHandle) DeviceProperties

	BufferMemoryRequirements(device DeviceHandle, info *BufferInfo) MemoryRequirements
	ImageMemoryRequirements(device DeviceHandle, info *ImageInfo) MemoryRequirements
	CreateMemory(device DeviceHandle, info *MemoryBlockInfo, out *Handle) Result

	CreateBuffer(device DeviceHandle, info *BufferInfo, out *BufferID) Result
	CreateBufferFromMemoryBlock(device DeviceHandle, info *MemoryBlockBufferInfo, out *BufferID) Result
	CreateImage(device DeviceHandle, info *ImageInfo, out *ImageID) Result
	CreateImageView(device DeviceHandle, info *ImageViewInfo, out *ImageViewID) Result
	CreateSampler(device DeviceHandle, info *SamplerInfo, out *SamplerID) Result

	DestroyBuffer(device DeviceHandle, id BufferID) Result
	DestroyImage(device DeviceHandle, id ImageID) Result
	DestroyImageView(device DeviceHandle, id ImageViewID) Result
	DestroySampler(device DeviceHandle, id SamplerID) Result

	IsBufferValid(device DeviceHandle, id BufferID) bool
	IsImageValid(device DeviceHandle, id ImageID) bool
	IsImageViewValid(device DeviceHandle, id ImageViewID) bool
	IsSamplerValid(device DeviceHandle, id SamplerID) bool

	BufferDeviceAddress(device DeviceHandle, id BufferID, out *BufferDeviceAddress) Result
	BufferHostAddress(device DeviceHandle, id BufferID, out *unsafe.Pointer) Result

	CreateRasterPipeline(device DeviceHandle, info *RasterPipelineInfo, out *Handle) Result
	CreateComputePipeline(device DeviceHandle, info *ComputePipelineInfo, out *Handle) Result
	CreateSwapchain(device DeviceHandle, info *SwapchainInfo, out *Handle) Result
	CreateCommandRecorder(device DeviceHandle, info *CommandRecorderInfo, out *Handle) Result
	CreateBinarySemaphore(device DeviceHandle, info *BinarySemaphoreInfo, out *Handle) Result
	CreateTimelineSemaphore(device DeviceHandle, info *TimelineSemaphoreInfo, out *Handle) Result
	CreateEvent(device DeviceHandle, info *EventInfo, out *Handle) Result
	CreateTimelineQueryPool(device DeviceHandle, info *TimelineQueryPoolInfo, out *Handle) Result

	Submit(device DeviceHandle, info *NativeSubmitInfo) Result
	Present(device DeviceHandle, info *NativePresentInfo) Result
	WaitIdle(device DeviceHandle) Result
	CollectGarbage(device DeviceHandle) Result

	// Release drops one reference of a reference counted object.
	Release(kind ObjectKind, object Handle)

	SwapchainAcquireNextImage(swapchain Handle, out *ImageID) Result
	SwapchainAcquireSemaphore(swapchain Handle) Handle
	SwapchainPresentSemaphore(swapchain Handle) Handle
	TimelineSemaphoreValue(semaphore Handle, out *uint64) Result
	TimelineSemaphoreWait(semaphore Handle, value uint64, timeoutNanos uint64) Result
	TimelineQueryResults(pool Handle, start, count uint32, out []uint64) Result
	CompleteCommands(recorder Handle, out *Handle) Result
}
