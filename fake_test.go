package daxa

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// fakeLibrary is an in-memory Library. Every creation call writes the canned
// handle or id and returns the configured result for its op name.
type fakeLibrary struct {
	mu      sync.Mutex
	results map[string]Result
	valid   map[GPUResourceID]bool
	calls   map[string]int

	released []releaseCall

	destroyDevice   atomic.Int32
	destroyInstance atomic.Int32

	cannedID     GPUResourceID
	cannedHandle Handle
	deviceHandle DeviceHandle

	info         DeviceInfo
	properties   DeviceProperties
	requirements MemoryRequirements

	deviceAddress BufferDeviceAddress
	hostAddress   unsafe.Pointer

	timelineValue uint64
	queryWords    []uint64
	lastSubmit    NativeSubmitInfo
	lastPresent   NativePresentInfo
	lastWait      struct{ value, timeout uint64 }
	lastPlacement MemoryBlockBufferInfo
	lastImageView ImageViewInfo
	lastRaster    RasterPipelineInfo
	acquireSem    Handle
	presentSem    Handle
}

type releaseCall struct {
	kind   ObjectKind
	handle Handle
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		results:      map[string]Result{},
		valid:        map[GPUResourceID]bool{},
		calls:        map[string]int{},
		cannedID:     GPUResourceID(1<<gpuResourceIndexBits | 7),
		cannedHandle: Handle(0xbeef),
		deviceHandle: DeviceHandle(0xd0d0),
	}
}

func (f *fakeLibrary) fail(op string, r Result) {
	f.mu.Lock()
	f.results[op] = r
	f.mu.Unlock()
}

func (f *fakeLibrary) result(op string) Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.results[op]
}

func (f *fakeLibrary) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeLibrary) releases() []releaseCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]releaseCall(nil), f.released...)
}

func (f *fakeLibrary) device() *Device {
	return NewDevice(f, f.deviceHandle)
}

func (f *fakeLibrary) CreateInstance(info *InstanceInfo, out *InstanceHandle) Result {
	r := f.result("create instance")
	if r == ResultSuccess {
		*out = InstanceHandle(0x1a)
	}
	return r
}

func (f *fakeLibrary) DestroyInstance(instance InstanceHandle) {
	f.destroyInstance.Add(1)
}

func (f *fakeLibrary) CreateDevice(instance InstanceHandle, info *DeviceInfo, out *DeviceHandle) Result {
	r := f.result("create device")
	if r == ResultSuccess {
		f.mu.Lock()
		f.info = *info
		f.mu.Unlock()
		*out = f.deviceHandle
	}
	return r
}

func (f *fakeLibrary) DestroyDevice(device DeviceHandle) {
	f.destroyDevice.Add(1)
}

func (f *fakeLibrary) DeviceInfo(device DeviceHandle) DeviceInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info
}

func (f *fakeLibrary) DeviceProperties(device DeviceHandle) DeviceProperties {
	return f.properties
}

// BufferMemoryRequirements rounds the size up to 256 bytes unless fixed
// requirements were configured.
func (f *fakeLibrary) BufferMemoryRequirements(device DeviceHandle, info *BufferInfo) MemoryRequirements {
	if f.requirements.Size != 0 {
		return f.requirements
	}
	return MemoryRequirements{Size: (info.Size + 255) &^ 255, Alignment: 256, MemoryTypeBits: 1}
}

func (f *fakeLibrary) ImageMemoryRequirements(device DeviceHandle, info *ImageInfo) MemoryRequirements {
	return f.requirements
}

func (f *fakeLibrary) createHandle(op string, out *Handle) Result {
	r := f.result(op)
	if r == ResultSuccess {
		*out = f.cannedHandle
	}
	return r
}

func (f *fakeLibrary) createID(op string, out *GPUResourceID) Result {
	r := f.result(op)
	if r == ResultSuccess {
		*out = f.cannedID
		f.mu.Lock()
		f.valid[f.cannedID] = true
		f.mu.Unlock()
	}
	return r
}

func (f *fakeLibrary) destroyID(op string, id GPUResourceID) Result {
	r := f.result(op)
	if r == ResultSuccess {
		f.mu.Lock()
		delete(f.valid, id)
		f.mu.Unlock()
	}
	return r
}

func (f *fakeLibrary) isValid(id GPUResourceID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid[id]
}

func (f *fakeLibrary) CreateMemory(device DeviceHandle, info *MemoryBlockInfo, out *Handle) Result {
	return f.createHandle("create memory", out)
}

func (f *fakeLibrary) CreateBuffer(device DeviceHandle, info *BufferInfo, out *BufferID) Result {
	return f.createID("create buffer", &out.GPUResourceID)
}

func (f *fakeLibrary) CreateBufferFromMemoryBlock(device DeviceHandle, info *MemoryBlockBufferInfo, out *BufferID) Result {
	f.mu.Lock()
	f.lastPlacement = *info
	f.mu.Unlock()
	return f.createID("create buffer from memory block", &out.GPUResourceID)
}

func (f *fakeLibrary) CreateImage(device DeviceHandle, info *ImageInfo, out *ImageID) Result {
	return f.createID("create image", &out.GPUResourceID)
}

func (f *fakeLibrary) CreateImageView(device DeviceHandle, info *ImageViewInfo, out *ImageViewID) Result {
	f.mu.Lock()
	f.lastImageView = *info
	f.mu.Unlock()
	return f.createID("create image view", &out.GPUResourceID)
}

func (f *fakeLibrary) CreateSampler(device DeviceHandle, info *SamplerInfo, out *SamplerID) Result {
	return f.createID("create sampler", &out.GPUResourceID)
}

func (f *fakeLibrary) DestroyBuffer(device DeviceHandle, id BufferID) Result {
	return f.destroyID("destroy buffer", id.GPUResourceID)
}

func (f *fakeLibrary) DestroyImage(device DeviceHandle, id ImageID) Result {
	return f.destroyID("destroy image", id.GPUResourceID)
}

func (f *fakeLibrary) DestroyImageView(device DeviceHandle, id ImageViewID) Result {
	return f.destroyID("destroy image view", id.GPUResourceID)
}

func (f *fakeLibrary) DestroySampler(device DeviceHandle, id SamplerID) Result {
	return f.destroyID("destroy sampler", id.GPUResourceID)
}

func (f *fakeLibrary) IsBufferValid(device DeviceHandle, id BufferID) bool {
	return f.isValid(id.GPUResourceID)
}

func (f *fakeLibrary) IsImageValid(device DeviceHandle, id ImageID) bool {
	return f.isValid(id.GPUResourceID)
}

func (f *fakeLibrary) IsImageViewValid(device DeviceHandle, id ImageViewID) bool {
	return f.isValid(id.GPUResourceID)
}

func (f *fakeLibrary) IsSamplerValid(device DeviceHandle, id SamplerID) bool {
	return f.isValid(id.GPUResourceID)
}

func (f *fakeLibrary) BufferDeviceAddress(device DeviceHandle, id BufferID, out *BufferDeviceAddress) Result {
	r := f.result("buffer device address")
	if r == ResultSuccess {
		*out = f.deviceAddress
	}
	return r
}

func (f *fakeLibrary) BufferHostAddress(device DeviceHandle, id BufferID, out *unsafe.Pointer) Result {
	r := f.result("buffer host address")
	if r == ResultSuccess {
		*out = f.hostAddress
	}
	return r
}

func (f *fakeLibrary) CreateRasterPipeline(device DeviceHandle, info *RasterPipelineInfo, out *Handle) Result {
	f.mu.Lock()
	f.lastRaster = *info
	f.mu.Unlock()
	return f.createHandle("create raster pipeline", out)
}

func (f *fakeLibrary) CreateComputePipeline(device DeviceHandle, info *ComputePipelineInfo, out *Handle) Result {
	return f.createHandle("create compute pipeline", out)
}

func (f *fakeLibrary) CreateSwapchain(device DeviceHandle, info *SwapchainInfo, out *Handle) Result {
	return f.createHandle("create swapchain", out)
}

func (f *fakeLibrary) CreateCommandRecorder(device DeviceHandle, info *CommandRecorderInfo, out *Handle) Result {
	return f.createHandle("create command recorder", out)
}

func (f *fakeLibrary) CreateBinarySemaphore(device DeviceHandle, info *BinarySemaphoreInfo, out *Handle) Result {
	return f.createHandle("create binary semaphore", out)
}

func (f *fakeLibrary) CreateTimelineSemaphore(device DeviceHandle, info *TimelineSemaphoreInfo, out *Handle) Result {
	return f.createHandle("create timeline semaphore", out)
}

func (f *fakeLibrary) CreateEvent(device DeviceHandle, info *EventInfo, out *Handle) Result {
	return f.createHandle("create event", out)
}

func (f *fakeLibrary) CreateTimelineQueryPool(device DeviceHandle, info *TimelineQueryPoolInfo, out *Handle) Result {
	return f.createHandle("create timeline query pool", out)
}

func (f *fakeLibrary) Submit(device DeviceHandle, info *NativeSubmitInfo) Result {
	f.mu.Lock()
	f.lastSubmit = *info
	f.mu.Unlock()
	return f.result("submit")
}

func (f *fakeLibrary) Present(device DeviceHandle, info *NativePresentInfo) Result {
	f.mu.Lock()
	f.lastPresent = *info
	f.mu.Unlock()
	return f.result("present")
}

func (f *fakeLibrary) WaitIdle(device DeviceHandle) Result {
	return f.result("wait idle")
}

func (f *fakeLibrary) CollectGarbage(device DeviceHandle) Result {
	return f.result("collect garbage")
}

func (f *fakeLibrary) Release(kind ObjectKind, object Handle) {
	f.mu.Lock()
	f.released = append(f.released, releaseCall{kind: kind, handle: object})
	f.mu.Unlock()
}

func (f *fakeLibrary) SwapchainAcquireNextImage(swapchain Handle, out *ImageID) Result {
	return f.createID("swapchain acquire next image", &out.GPUResourceID)
}

func (f *fakeLibrary) SwapchainAcquireSemaphore(swapchain Handle) Handle {
	return f.acquireSem
}

func (f *fakeLibrary) SwapchainPresentSemaphore(swapchain Handle) Handle {
	return f.presentSem
}

func (f *fakeLibrary) TimelineSemaphoreValue(semaphore Handle, out *uint64) Result {
	r := f.result("timeline semaphore value")
	if r == ResultSuccess {
		*out = f.timelineValue
	}
	return r
}

func (f *fakeLibrary) TimelineSemaphoreWait(semaphore Handle, value uint64, timeoutNanos uint64) Result {
	f.mu.Lock()
	f.lastWait.value = value
	f.lastWait.timeout = timeoutNanos
	f.mu.Unlock()
	return f.result("timeline semaphore wait")
}

func (f *fakeLibrary) TimelineQueryResults(pool Handle, start, count uint32, out []uint64) Result {
	r := f.result("timeline query results")
	if r == ResultSuccess {
		copy(out, f.queryWords)
	}
	return r
}

func (f *fakeLibrary) CompleteCommands(recorder Handle, out *Handle) Result {
	return f.createHandle("complete current commands", out)
}
