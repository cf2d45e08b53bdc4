package daxa

import (
	"runtime"
	"unicode/utf8"
	"unsafe"
)

// C layout mirrors of the native descriptors. Field order and widths follow
// the daxa C headers; bools are daxa_Bool8 and names are daxa_SmallString.

const smallStringCapacity = 63

type cSmallString struct {
	data [smallStringCapacity]byte
	size uint8
}

// newSmallString copies s, truncating it to the small string capacity on a
// rune boundary.
func newSmallString(s string) cSmallString {
	if len(s) > smallStringCapacity {
		n := smallStringCapacity
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	var c cSmallString
	n := copy(c.data[:], s)
	c.size = uint8(n)
	return c
}

func (c *cSmallString) String() string {
	n := int(c.size)
	if n > smallStringCapacity {
		n = smallStringCapacity
	}
	return string(c.data[:n])
}

type cOptionalSmallString struct {
	value    cSmallString
	hasValue uint8
}

func cBool(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

type cInstanceInfo struct {
	flags      uint64
	engineName cSmallString
	appName    cSmallString
}

func toCInstanceInfo(info *InstanceInfo) cInstanceInfo {
	return cInstanceInfo{
		flags:      uint64(info.Flags),
		engineName: newSmallString(info.EngineName),
		appName:    newSmallString(info.AppName),
	}
}

type cDeviceInfo struct {
	selector           uintptr
	flags              uint64
	maxAllowedImages   uint32
	maxAllowedBuffers  uint32
	maxAllowedSamplers uint32
	name               cSmallString
}

func toCDeviceInfo(info *DeviceInfo, selector uintptr) cDeviceInfo {
	return cDeviceInfo{
		selector:           selector,
		flags:              uint64(info.Flags),
		maxAllowedImages:   info.MaxAllowedImages,
		maxAllowedBuffers:  info.MaxAllowedBuffers,
		maxAllowedSamplers: info.MaxAllowedSamplers,
		name:               newSmallString(info.Name),
	}
}

func fromCDeviceInfo(c *cDeviceInfo) DeviceInfo {
	if c == nil {
		return DeviceInfo{}
	}
	return DeviceInfo{
		Flags:              DeviceFlags(c.flags),
		MaxAllowedImages:   c.maxAllowedImages,
		MaxAllowedBuffers:  c.maxAllowedBuffers,
		MaxAllowedSamplers: c.maxAllowedSamplers,
		Name:               c.name.String(),
	}
}

// cDeviceProperties covers the leading VkPhysicalDeviceProperties fields of
// daxa_DeviceProperties; the limits that follow are never read.
type cDeviceProperties struct {
	apiVersion        uint32
	driverVersion     uint32
	vendorID          uint32
	deviceID          uint32
	deviceType        int32
	deviceName        [256]byte
	pipelineCacheUUID [UUIDSize]byte
}

func fromCDeviceProperties(c *cDeviceProperties) DeviceProperties {
	if c == nil {
		return DeviceProperties{}
	}
	n := 0
	for n < len(c.deviceName) && c.deviceName[n] != 0 {
		n++
	}
	return DeviceProperties{
		APIVersion:        c.apiVersion,
		DriverVersion:     c.driverVersion,
		VendorID:          c.vendorID,
		DeviceID:          c.deviceID,
		Type:              DeviceType(c.deviceType),
		Name:              string(c.deviceName[:n]),
		PipelineCacheUUID: c.pipelineCacheUUID,
	}
}

type cBufferInfo struct {
	size         uint64
	allocateInfo uint32
	name         cSmallString
}

func toCBufferInfo(info *BufferInfo) cBufferInfo {
	return cBufferInfo{
		size:         info.Size,
		allocateInfo: uint32(info.AllocateInfo),
		name:         newSmallString(info.Name),
	}
}

type cMemoryBlockBufferInfo struct {
	bufferInfo  cBufferInfo
	memoryBlock uintptr
	offset      uint64
}

func toCMemoryBlockBufferInfo(info *MemoryBlockBufferInfo) cMemoryBlockBufferInfo {
	return cMemoryBlockBufferInfo{
		bufferInfo:  toCBufferInfo(&info.Buffer),
		memoryBlock: uintptr(info.Memory),
		offset:      info.Offset,
	}
}

type cImageInfo struct {
	flags           uint32
	dimensions      uint32
	format          int32
	size            Extent3D
	mipLevelCount   uint32
	arrayLayerCount uint32
	sampleCount     uint32
	usage           uint32
	sharingMode     int32
	allocateInfo    uint32
	name            cSmallString
}

func toCImageInfo(info *ImageInfo) cImageInfo {
	return cImageInfo{
		flags:           uint32(info.Flags),
		dimensions:      info.Dimensions,
		format:          int32(info.Format),
		size:            info.Size,
		mipLevelCount:   info.MipLevelCount,
		arrayLayerCount: info.ArrayLayerCount,
		sampleCount:     info.SampleCount,
		usage:           uint32(info.Usage),
		sharingMode:     int32(info.SharingMode),
		allocateInfo:    uint32(info.AllocateInfo),
		name:            newSmallString(info.Name),
	}
}

type cImageViewInfo struct {
	viewType int32
	format   int32
	image    uint64
	slice    ImageMipArraySlice
	name     cSmallString
}

func toCImageViewInfo(info *ImageViewInfo) cImageViewInfo {
	return cImageViewInfo{
		viewType: int32(info.Type),
		format:   int32(info.Format),
		image:    uint64(info.Image.GPUResourceID),
		slice:    info.Slice,
		name:     newSmallString(info.Name),
	}
}

type cSamplerInfo struct {
	magnificationFilter           int32
	minificationFilter            int32
	mipmapFilter                  int32
	reductionMode                 int32
	addressModeU                  int32
	addressModeV                  int32
	addressModeW                  int32
	mipLODBias                    float32
	enableAnisotropy              uint8
	maxAnisotropy                 float32
	enableCompare                 uint8
	compareOp                     int32
	minLOD                        float32
	maxLOD                        float32
	borderColor                   int32
	enableUnnormalizedCoordinates uint8
	name                          cSmallString
}

func toCSamplerInfo(info *SamplerInfo) cSamplerInfo {
	return cSamplerInfo{
		magnificationFilter:           int32(info.MagnificationFilter),
		minificationFilter:            int32(info.MinificationFilter),
		mipmapFilter:                  int32(info.MipmapFilter),
		addressModeU:                  int32(info.AddressModeU),
		addressModeV:                  int32(info.AddressModeV),
		addressModeW:                  int32(info.AddressModeW),
		mipLODBias:                    info.MipLODBias,
		enableAnisotropy:              cBool(info.EnableAnisotropy),
		maxAnisotropy:                 info.MaxAnisotropy,
		enableCompare:                 cBool(info.EnableCompare),
		compareOp:                     int32(info.CompareOp),
		minLOD:                        info.MinLOD,
		maxLOD:                        info.MaxLOD,
		borderColor:                   int32(info.BorderColor),
		enableUnnormalizedCoordinates: cBool(info.EnableUnnormalizedCoordinates),
		name:                          newSmallString(info.Name),
	}
}

type cMemoryBlockInfo struct {
	requirements MemoryRequirements
	flags        uint32
}

func toCMemoryBlockInfo(info *MemoryBlockInfo) cMemoryBlockInfo {
	return cMemoryBlockInfo{requirements: info.Requirements, flags: uint32(info.Flags)}
}

type cShaderInfo struct {
	byteCode     *uint32
	byteCodeSize uint32
	entryPoint   cOptionalSmallString
}

// toCShaderInfo pins the byte code for the duration of the native call.
func toCShaderInfo(info *ShaderInfo, pinner *runtime.Pinner) cShaderInfo {
	var c cShaderInfo
	if len(info.ByteCode) > 0 {
		pinner.Pin(&info.ByteCode[0])
		c.byteCode = &info.ByteCode[0]
		c.byteCodeSize = uint32(len(info.ByteCode))
	}
	if info.EntryPoint != "" {
		c.entryPoint = cOptionalSmallString{value: newSmallString(info.EntryPoint), hasValue: 1}
	}
	return c
}

type cOptionalShaderInfo struct {
	value    cShaderInfo
	hasValue uint8
}

const maxColorAttachments = 8

type cRenderAttachment struct {
	format   int32
	blend    [7]uint32
	hasBlend uint8
}

type cDepthTestInfo struct {
	depthAttachmentFormat int32
	enableDepthWrite      uint8
	depthTestCompareOp    int32
	minDepthBounds        float32
	maxDepthBounds        float32
}

type cOptionalDepthTestInfo struct {
	value    cDepthTestInfo
	hasValue uint8
}

type cRasterizerInfo struct {
	primitiveTopology       int32
	primitiveRestartEnable  uint8
	polygonMode             int32
	faceCulling             uint32
	frontFaceWinding        int32
	depthClampEnable        uint8
	rasterizerDiscardEnable uint8
	depthBiasEnable         uint8
	depthBiasConstantFactor float32
	depthBiasClamp          float32
	depthBiasSlopeFactor    float32
	lineWidth               float32
}

type cRasterPipelineInfo struct {
	vertexShader     cOptionalShaderInfo
	fragmentShader   cOptionalShaderInfo
	colorAttachments [maxColorAttachments]cRenderAttachment
	colorCount       uint8
	depthTest        cOptionalDepthTestInfo
	raster           cRasterizerInfo
	pushConstantSize uint32
	name             cSmallString
}

// toCRasterPipelineInfo keeps at most eight color attachments, the fixed
// capacity of the native descriptor.
func toCRasterPipelineInfo(info *RasterPipelineInfo, pinner *runtime.Pinner) cRasterPipelineInfo {
	var c cRasterPipelineInfo
	if info.VertexShader != nil {
		c.vertexShader = cOptionalShaderInfo{value: toCShaderInfo(info.VertexShader, pinner), hasValue: 1}
	}
	if info.FragmentShader != nil {
		c.fragmentShader = cOptionalShaderInfo{value: toCShaderInfo(info.FragmentShader, pinner), hasValue: 1}
	}
	for i, a := range info.ColorAttachments {
		if i == maxColorAttachments {
			break
		}
		c.colorAttachments[i].format = int32(a.Format)
		c.colorCount++
	}
	if info.DepthTest != nil {
		c.depthTest = cOptionalDepthTestInfo{
			value: cDepthTestInfo{
				depthAttachmentFormat: int32(info.DepthTest.DepthAttachmentFormat),
				enableDepthWrite:      cBool(info.DepthTest.EnableDepthWrite),
				depthTestCompareOp:    int32(info.DepthTest.DepthTestCompareOp),
				minDepthBounds:        info.DepthTest.MinDepthBounds,
				maxDepthBounds:        info.DepthTest.MaxDepthBounds,
			},
			hasValue: 1,
		}
	}
	r := &info.Raster
	c.raster = cRasterizerInfo{
		primitiveTopology:       int32(r.PrimitiveTopology),
		primitiveRestartEnable:  cBool(r.PrimitiveRestartEnable),
		polygonMode:             int32(r.PolygonMode),
		faceCulling:             uint32(r.FaceCulling),
		frontFaceWinding:        int32(r.FrontFaceWinding),
		depthClampEnable:        cBool(r.DepthClampEnable),
		rasterizerDiscardEnable: cBool(r.RasterizerDiscardEnable),
		depthBiasEnable:         cBool(r.DepthBiasEnable),
		depthBiasConstantFactor: r.DepthBiasConstantFactor,
		depthBiasClamp:          r.DepthBiasClamp,
		depthBiasSlopeFactor:    r.DepthBiasSlopeFactor,
		lineWidth:               r.LineWidth,
	}
	c.pushConstantSize = info.PushConstantSize
	c.name = newSmallString(info.Name)
	return c
}

type cComputePipelineInfo struct {
	shader           cShaderInfo
	pushConstantSize uint32
	name             cSmallString
}

func toCComputePipelineInfo(info *ComputePipelineInfo, pinner *runtime.Pinner) cComputePipelineInfo {
	return cComputePipelineInfo{
		shader:           toCShaderInfo(&info.Shader, pinner),
		pushConstantSize: info.PushConstantSize,
		name:             newSmallString(info.Name),
	}
}

type cSwapchainInfo struct {
	nativeWindow             uintptr
	nativeWindowPlatform     int32
	surfaceFormatSelector    uintptr
	presentMode              int32
	presentOperation         int32
	imageUsage               uint32
	maxAllowedFramesInFlight uint64
	name                     cSmallString
}

func toCSwapchainInfo(info *SwapchainInfo, formatSelector uintptr) cSwapchainInfo {
	return cSwapchainInfo{
		nativeWindow:             info.NativeWindow,
		nativeWindowPlatform:     int32(info.NativeWindowPlatform),
		surfaceFormatSelector:    formatSelector,
		presentMode:              int32(info.PresentMode),
		presentOperation:         int32(info.PresentOperation),
		imageUsage:               uint32(info.ImageUsage),
		maxAllowedFramesInFlight: info.MaxAllowedFramesInFlight,
		name:                     newSmallString(info.Name),
	}
}

type cNamedInfo struct {
	name cSmallString
}

type cTimelineSemaphoreInfo struct {
	initialValue uint64
	name         cSmallString
}

type cTimelineQueryPoolInfo struct {
	queryCount uint32
	name       cSmallString
}

type cTimelinePair struct {
	semaphore uintptr
	value     uint64
}

type cSubmitInfo struct {
	waitStages               uint64
	commandLists             *Handle
	commandListCount         uint64
	waitBinarySemaphores     *Handle
	waitBinaryCount          uint64
	signalBinarySemaphores   *Handle
	signalBinaryCount        uint64
	waitTimelineSemaphores   *cTimelinePair
	waitTimelineCount        uint64
	signalTimelineSemaphores *cTimelinePair
	signalTimelineCount      uint64
}

// pinHandles returns a pinned pointer to the first handle and the count.
func pinHandles(h []Handle, pinner *runtime.Pinner) (*Handle, uint64) {
	if len(h) == 0 {
		return nil, 0
	}
	pinner.Pin(&h[0])
	return &h[0], uint64(len(h))
}

func pinTimelinePairs(p []TimelinePair, pinner *runtime.Pinner) (*cTimelinePair, uint64) {
	if len(p) == 0 {
		return nil, 0
	}
	c := make([]cTimelinePair, len(p))
	for i := range p {
		c[i] = cTimelinePair{semaphore: uintptr(p[i].Semaphore), value: p[i].Value}
	}
	pinner.Pin(&c[0])
	return &c[0], uint64(len(c))
}

func toCSubmitInfo(info *NativeSubmitInfo, pinner *runtime.Pinner) cSubmitInfo {
	var c cSubmitInfo
	c.waitStages = uint64(info.WaitStages)
	c.commandLists, c.commandListCount = pinHandles(info.CommandLists, pinner)
	c.waitBinarySemaphores, c.waitBinaryCount = pinHandles(info.WaitBinarySemaphores, pinner)
	c.signalBinarySemaphores, c.signalBinaryCount = pinHandles(info.SignalBinarySemaphores, pinner)
	c.waitTimelineSemaphores, c.waitTimelineCount = pinTimelinePairs(info.WaitTimelineSemaphores, pinner)
	c.signalTimelineSemaphores, c.signalTimelineCount = pinTimelinePairs(info.SignalTimelineSemaphores, pinner)
	return c
}

type cPresentInfo struct {
	waitBinarySemaphores *Handle
	waitBinaryCount      uint64
	swapchain            uintptr
}

func toCPresentInfo(info *NativePresentInfo, pinner *runtime.Pinner) cPresentInfo {
	var c cPresentInfo
	c.waitBinarySemaphores, c.waitBinaryCount = pinHandles(info.WaitBinarySemaphores, pinner)
	c.swapchain = uintptr(info.Swapchain)
	return c
}

// handleAt reads a native handle through a pointer returned by the library.
func handleAt(p unsafe.Pointer) Handle {
	if p == nil {
		return 0
	}
	return *(*Handle)(p)
}
