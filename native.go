//go:build darwin || linux

package daxa

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// DefaultLibraryName is the file name Open loads.
func DefaultLibraryName() string {
	if runtime.GOOS == "darwin" {
		return "libdaxa.dylib"
	}
	return "libdaxa.so"
}

// Open loads the native library from the default search path.
func Open() (Library, error) {
	return Load(DefaultLibraryName())
}

// Load dlopens the native library at path and binds every entry point.
func Load(path string) (Library, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("daxa: load %s: %w", path, err)
	}

	l := &nativeLibrary{handle: h}
	if err := l.bind(); err != nil {
		purego.Dlclose(h)
		return nil, err
	}

	Logger().Debug("daxa: native library loaded", "path", path)
	return l, nil
}

type nativeLibrary struct {
	handle uintptr

	defaultDeviceScore uintptr
	defaultFormatScore uintptr

	createInstance       func(info *cInstanceInfo, out *InstanceHandle) Result
	instanceDecRefcnt    func(instance InstanceHandle) uint64
	instanceCreateDevice func(instance InstanceHandle, info *cDeviceInfo, out *DeviceHandle) Result
	dvcDecRefcnt         func(device DeviceHandle) uint64
	dvcInfo              func(device DeviceHandle) unsafe.Pointer
	dvcProperties        func(device DeviceHandle) unsafe.Pointer

	bufferMemoryRequirements memoryRequirementsFunc
	imageMemoryRequirements  memoryRequirementsFunc
	createMemory             func(device DeviceHandle, info *cMemoryBlockInfo, out *Handle) Result

	createBuffer                func(device DeviceHandle, info *cBufferInfo, out *BufferID) Result
	createBufferFromMemoryBlock func(device DeviceHandle, info *cMemoryBlockBufferInfo, out *BufferID) Result
	createImage                 func(device DeviceHandle, info *cImageInfo, out *ImageID) Result
	createImageView             func(device DeviceHandle, info *cImageViewInfo, out *ImageViewID) Result
	createSampler               func(device DeviceHandle, info *cSamplerInfo, out *SamplerID) Result

	destroyBuffer    func(device DeviceHandle, id uint64) Result
	destroyImage     func(device DeviceHandle, id uint64) Result
	destroyImageView func(device DeviceHandle, id uint64) Result
	destroySampler   func(device DeviceHandle, id uint64) Result

	isBufferValid    func(device DeviceHandle, id uint64) uint8
	isImageValid     func(device DeviceHandle, id uint64) uint8
	isImageViewValid func(device DeviceHandle, id uint64) uint8
	isSamplerValid   func(device DeviceHandle, id uint64) uint8

	bufferDeviceAddress func(device DeviceHandle, id uint64, out *BufferDeviceAddress) Result
	bufferHostAddress   func(device DeviceHandle, id uint64, out *unsafe.Pointer) Result

	createRasterPipeline    func(device DeviceHandle, info *cRasterPipelineInfo, out *Handle) Result
	createComputePipeline   func(device DeviceHandle, info *cComputePipelineInfo, out *Handle) Result
	createSwapchain         func(device DeviceHandle, info *cSwapchainInfo, out *Handle) Result
	createCommandRecorder   func(device DeviceHandle, info *cNamedInfo, out *Handle) Result
	createBinarySemaphore   func(device DeviceHandle, info *cNamedInfo, out *Handle) Result
	createTimelineSemaphore func(device DeviceHandle, info *cTimelineSemaphoreInfo, out *Handle) Result
	createEvent             func(device DeviceHandle, info *cNamedInfo, out *Handle) Result
	createTimelineQueryPool func(device DeviceHandle, info *cTimelineQueryPoolInfo, out *Handle) Result

	submit         func(device DeviceHandle, info *cSubmitInfo) Result
	present        func(device DeviceHandle, info *cPresentInfo) Result
	waitIdle       func(device DeviceHandle) Result
	collectGarbage func(device DeviceHandle) Result

	release [ObjectTimelineQueryPool + 1]func(object Handle) uint64

	swpAcquireNextImage     func(swapchain Handle, out *ImageID) Result
	swpAcquireSemaphore     func(swapchain Handle) unsafe.Pointer
	swpPresentSemaphore     func(swapchain Handle) unsafe.Pointer
	timelineSemaphoreValue  func(semaphore Handle, out *uint64) Result
	timelineSemaphoreWait   func(semaphore Handle, value uint64, timeout uint64) Result
	timelineQueryResults    func(pool Handle, start, count uint32, out *uint64) Result
	completeCurrentCommands func(recorder Handle, out *Handle) Result
}

type nativeSymbol struct {
	fptr any
	name string
}

func (l *nativeLibrary) symbols() []nativeSymbol {
	return []nativeSymbol{
		{&l.createInstance, "daxa_create_instance"},
		{&l.instanceDecRefcnt, "daxa_instance_dec_refcnt"},
		{&l.instanceCreateDevice, "daxa_instance_create_device"},
		{&l.dvcDecRefcnt, "daxa_dvc_dec_refcnt"},
		{&l.dvcInfo, "daxa_dvc_info"},
		{&l.dvcProperties, "daxa_dvc_properties"},
		{&l.createMemory, "daxa_dvc_create_memory"},
		{&l.createBuffer, "daxa_dvc_create_buffer"},
		{&l.createBufferFromMemoryBlock, "daxa_dvc_create_buffer_from_memory_block"},
		{&l.createImage, "daxa_dvc_create_image"},
		{&l.createImageView, "daxa_dvc_create_image_view"},
		{&l.createSampler, "daxa_dvc_create_sampler"},
		{&l.destroyBuffer, "daxa_dvc_destroy_buffer"},
		{&l.destroyImage, "daxa_dvc_destroy_image"},
		{&l.destroyImageView, "daxa_dvc_destroy_image_view"},
		{&l.destroySampler, "daxa_dvc_destroy_sampler"},
		{&l.isBufferValid, "daxa_dvc_is_buffer_valid"},
		{&l.isImageValid, "daxa_dvc_is_image_valid"},
		{&l.isImageViewValid, "daxa_dvc_is_image_view_valid"},
		{&l.isSamplerValid, "daxa_dvc_is_sampler_valid"},
		{&l.bufferDeviceAddress, "daxa_dvc_buffer_device_address"},
		{&l.bufferHostAddress, "daxa_dvc_buffer_host_address"},
		{&l.createRasterPipeline, "daxa_dvc_create_raster_pipeline"},
		{&l.createComputePipeline, "daxa_dvc_create_compute_pipeline"},
		{&l.createSwapchain, "daxa_dvc_create_swapchain"},
		{&l.createCommandRecorder, "daxa_dvc_create_command_recorder"},
		{&l.createBinarySemaphore, "daxa_dvc_create_binary_semaphore"},
		{&l.createTimelineSemaphore, "daxa_dvc_create_timeline_semaphore"},
		{&l.createEvent, "daxa_dvc_create_event"},
		{&l.createTimelineQueryPool, "daxa_dvc_create_timeline_query_pool"},
		{&l.submit, "daxa_dvc_submit"},
		{&l.present, "daxa_dvc_present"},
		{&l.waitIdle, "daxa_dvc_wait_idle"},
		{&l.collectGarbage, "daxa_dvc_collect_garbage"},
		{&l.release[ObjectMemoryBlock], "daxa_memory_block_dec_refcnt"},
		{&l.release[ObjectRasterPipeline], "daxa_raster_pipeline_dec_refcnt"},
		{&l.release[ObjectComputePipeline], "daxa_compute_pipeline_dec_refcnt"},
		{&l.release[ObjectSwapchain], "daxa_swp_dec_refcnt"},
		{&l.release[ObjectCommandRecorder], "daxa_cmd_dec_refcnt"},
		{&l.release[ObjectExecutableCommandList], "daxa_executable_commands_dec_refcnt"},
		{&l.release[ObjectBinarySemaphore], "daxa_binary_semaphore_dec_refcnt"},
		{&l.release[ObjectTimelineSemaphore], "daxa_timeline_semaphore_dec_refcnt"},
		{&l.release[ObjectEvent], "daxa_event_dec_refcnt"},
		{&l.release[ObjectTimelineQueryPool], "daxa_timeline_query_pool_dec_refcnt"},
		{&l.swpAcquireNextImage, "daxa_swp_acquire_next_image"},
		{&l.swpAcquireSemaphore, "daxa_swp_current_acquire_semaphore"},
		{&l.swpPresentSemaphore, "daxa_swp_current_present_semaphore"},
		{&l.timelineSemaphoreValue, "daxa_timeline_semaphore_get_value"},
		{&l.timelineSemaphoreWait, "daxa_timeline_semaphore_wait_for_value"},
		{&l.timelineQueryResults, "daxa_timeline_query_pool_query_results"},
		{&l.completeCurrentCommands, "daxa_cmd_complete_current_commands"},
	}
}

func (l *nativeLibrary) bind() error {
	for _, s := range l.symbols() {
		addr, err := purego.Dlsym(l.handle, s.name)
		if err != nil {
			return fmt.Errorf("daxa: resolve %s: %w", s.name, err)
		}
		purego.RegisterFunc(s.fptr, addr)
	}

	var err error
	if l.bufferMemoryRequirements, err = l.bindMemoryRequirements("daxa_dvc_buffer_memory_requirements"); err != nil {
		return err
	}
	if l.imageMemoryRequirements, err = l.bindMemoryRequirements("daxa_dvc_image_memory_requirements"); err != nil {
		return err
	}
	if l.defaultDeviceScore, err = purego.Dlsym(l.handle, "daxa_default_device_score"); err != nil {
		return fmt.Errorf("daxa: resolve daxa_default_device_score: %w", err)
	}
	if l.defaultFormatScore, err = purego.Dlsym(l.handle, "daxa_default_format_score"); err != nil {
		return fmt.Errorf("daxa: resolve daxa_default_format_score: %w", err)
	}
	return nil
}

// The memory requirement entry points return a struct by value, which purego
// can only register on darwin. They are called through memoryRequirementsFunc.
func (l *nativeLibrary) bindMemoryRequirements(name string) (memoryRequirementsFunc, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return nil, fmt.Errorf("daxa: resolve %s: %w", name, err)
	}
	fn, err := newMemoryRequirementsFunc(addr)
	if err != nil {
		return nil, fmt.Errorf("daxa: bind %s: %w", name, err)
	}
	return fn, nil
}

func (l *nativeLibrary) CreateInstance(info *InstanceInfo, out *InstanceHandle) Result {
	c := toCInstanceInfo(info)
	return l.createInstance(&c, out)
}

func (l *nativeLibrary) DestroyInstance(instance InstanceHandle) {
	l.instanceDecRefcnt(instance)
}

func (l *nativeLibrary) CreateDevice(instance InstanceHandle, info *DeviceInfo, out *DeviceHandle) Result {
	c := toCDeviceInfo(info, l.defaultDeviceScore)
	return l.instanceCreateDevice(instance, &c, out)
}

func (l *nativeLibrary) DestroyDevice(device DeviceHandle) {
	l.dvcDecRefcnt(device)
}

func (l *nativeLibrary) DeviceInfo(device DeviceHandle) DeviceInfo {
	return fromCDeviceInfo((*cDeviceInfo)(l.dvcInfo(device)))
}

func (l *nativeLibrary) DeviceProperties(device DeviceHandle) DeviceProperties {
	return fromCDeviceProperties((*cDeviceProperties)(l.dvcProperties(device)))
}

func (l *nativeLibrary) BufferMemoryRequirements(device DeviceHandle, info *BufferInfo) MemoryRequirements {
	c := toCBufferInfo(info)
	return l.bufferMemoryRequirements(device, unsafe.Pointer(&c))
}

func (l *nativeLibrary) ImageMemoryRequirements(device DeviceHandle, info *ImageInfo) MemoryRequirements {
	c := toCImageInfo(info)
	return l.imageMemoryRequirements(device, unsafe.Pointer(&c))
}

func (l *nativeLibrary) CreateMemory(device DeviceHandle, info *MemoryBlockInfo, out *Handle) Result {
	c := toCMemoryBlockInfo(info)
	return l.createMemory(device, &c, out)
}

func (l *nativeLibrary) CreateBuffer(device DeviceHandle, info *BufferInfo, out *BufferID) Result {
	c := toCBufferInfo(info)
	return l.createBuffer(device, &c, out)
}

func (l *nativeLibrary) CreateBufferFromMemoryBlock(device DeviceHandle, info *MemoryBlockBufferInfo, out *BufferID) Result {
	c := toCMemoryBlockBufferInfo(info)
	return l.createBufferFromMemoryBlock(device, &c, out)
}

func (l *nativeLibrary) CreateImage(device DeviceHandle, info *ImageInfo, out *ImageID) Result {
	c := toCImageInfo(info)
	return l.createImage(device, &c, out)
}

func (l *nativeLibrary) CreateImageView(device DeviceHandle, info *ImageViewInfo, out *ImageViewID) Result {
	c := toCImageViewInfo(info)
	return l.createImageView(device, &c, out)
}

func (l *nativeLibrary) CreateSampler(device DeviceHandle, info *SamplerInfo, out *SamplerID) Result {
	c := toCSamplerInfo(info)
	return l.createSampler(device, &c, out)
}

func (l *nativeLibrary) DestroyBuffer(device DeviceHandle, id BufferID) Result {
	return l.destroyBuffer(device, uint64(id.GPUResourceID))
}

func (l *nativeLibrary) DestroyImage(device DeviceHandle, id ImageID) Result {
	return l.destroyImage(device, uint64(id.GPUResourceID))
}

func (l *nativeLibrary) DestroyImageView(device DeviceHandle, id ImageViewID) Result {
	return l.destroyImageView(device, uint64(id.GPUResourceID))
}

func (l *nativeLibrary) DestroySampler(device DeviceHandle, id SamplerID) Result {
	return l.destroySampler(device, uint64(id.GPUResourceID))
}

func (l *nativeLibrary) IsBufferValid(device DeviceHandle, id BufferID) bool {
	return l.isBufferValid(device, uint64(id.GPUResourceID)) != 0
}

func (l *nativeLibrary) IsImageValid(device DeviceHandle, id ImageID) bool {
	return l.isImageValid(device, uint64(id.GPUResourceID)) != 0
}

func (l *nativeLibrary) IsImageViewValid(device DeviceHandle, id ImageViewID) bool {
	return l.isImageViewValid(device, uint64(id.GPUResourceID)) != 0
}

func (l *nativeLibrary) IsSamplerValid(device DeviceHandle, id SamplerID) bool {
	return l.isSamplerValid(device, uint64(id.GPUResourceID)) != 0
}

func (l *nativeLibrary) BufferDeviceAddress(device DeviceHandle, id BufferID, out *BufferDeviceAddress) Result {
	return l.bufferDeviceAddress(device, uint64(id.GPUResourceID), out)
}

func (l *nativeLibrary) BufferHostAddress(device DeviceHandle, id BufferID, out *unsafe.Pointer) Result {
	return l.bufferHostAddress(device, uint64(id.GPUResourceID), out)
}

func (l *nativeLibrary) CreateRasterPipeline(device DeviceHandle, info *RasterPipelineInfo, out *Handle) Result {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	c := toCRasterPipelineInfo(info, &pinner)
	return l.createRasterPipeline(device, &c, out)
}

func (l *nativeLibrary) CreateComputePipeline(device DeviceHandle, info *ComputePipelineInfo, out *Handle) Result {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	c := toCComputePipelineInfo(info, &pinner)
	return l.createComputePipeline(device, &c, out)
}

func (l *nativeLibrary) CreateSwapchain(device DeviceHandle, info *SwapchainInfo, out *Handle) Result {
	c := toCSwapchainInfo(info, l.defaultFormatScore)
	return l.createSwapchain(device, &c, out)
}

func (l *nativeLibrary) CreateCommandRecorder(device DeviceHandle, info *CommandRecorderInfo, out *Handle) Result {
	c := cNamedInfo{name: newSmallString(info.Name)}
	return l.createCommandRecorder(device, &c, out)
}

func (l *nativeLibrary) CreateBinarySemaphore(device DeviceHandle, info *BinarySemaphoreInfo, out *Handle) Result {
	c := cNamedInfo{name: newSmallString(info.Name)}
	return l.createBinarySemaphore(device, &c, out)
}

func (l *nativeLibrary) CreateTimelineSemaphore(device DeviceHandle, info *TimelineSemaphoreInfo, out *Handle) Result {
	c := cTimelineSemaphoreInfo{initialValue: info.InitialValue, name: newSmallString(info.Name)}
	return l.createTimelineSemaphore(device, &c, out)
}

func (l *nativeLibrary) CreateEvent(device DeviceHandle, info *EventInfo, out *Handle) Result {
	c := cNamedInfo{name: newSmallString(info.Name)}
	return l.createEvent(device, &c, out)
}

func (l *nativeLibrary) CreateTimelineQueryPool(device DeviceHandle, info *TimelineQueryPoolInfo, out *Handle) Result {
	c := cTimelineQueryPoolInfo{queryCount: info.QueryCount, name: newSmallString(info.Name)}
	return l.createTimelineQueryPool(device, &c, out)
}

func (l *nativeLibrary) Submit(device DeviceHandle, info *NativeSubmitInfo) Result {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	c := toCSubmitInfo(info, &pinner)
	return l.submit(device, &c)
}

func (l *nativeLibrary) Present(device DeviceHandle, info *NativePresentInfo) Result {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	c := toCPresentInfo(info, &pinner)
	return l.present(device, &c)
}

func (l *nativeLibrary) WaitIdle(device DeviceHandle) Result {
	return l.waitIdle(device)
}

func (l *nativeLibrary) CollectGarbage(device DeviceHandle) Result {
	return l.collectGarbage(device)
}

func (l *nativeLibrary) Release(kind ObjectKind, object Handle) {
	if int(kind) < 0 || int(kind) >= len(l.release) {
		return
	}
	l.release[kind](object)
}

func (l *nativeLibrary) SwapchainAcquireNextImage(swapchain Handle, out *ImageID) Result {
	return l.swpAcquireNextImage(swapchain, out)
}

func (l *nativeLibrary) SwapchainAcquireSemaphore(swapchain Handle) Handle {
	return handleAt(l.swpAcquireSemaphore(swapchain))
}

func (l *nativeLibrary) SwapchainPresentSemaphore(swapchain Handle) Handle {
	return handleAt(l.swpPresentSemaphore(swapchain))
}

func (l *nativeLibrary) TimelineSemaphoreValue(semaphore Handle, out *uint64) Result {
	return l.timelineSemaphoreValue(semaphore, out)
}

func (l *nativeLibrary) TimelineSemaphoreWait(semaphore Handle, value uint64, timeoutNanos uint64) Result {
	return l.timelineSemaphoreWait(semaphore, value, timeoutNanos)
}

func (l *nativeLibrary) TimelineQueryResults(pool Handle, start, count uint32, out []uint64) Result {
	var p *uint64
	if len(out) > 0 {
		p = &out[0]
	}
	return l.timelineQueryResults(pool, start, count, p)
}

func (l *nativeLibrary) CompleteCommands(recorder Handle, out *Handle) Result {
	return l.completeCurrentCommands(recorder, out)
}
