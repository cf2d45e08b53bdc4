package daxa

// Descriptors are plain values handed to creation calls. They carry no state
// beyond the call and are never validated by this package.

// InstanceInfo describes the native instance.
type InstanceInfo struct {
	Flags      InstanceFlags
	EngineName string
	AppName    string
}

// DefaultInstanceInfo matches the native library defaults.
func DefaultInstanceInfo() InstanceInfo {
	return InstanceInfo{
		Flags:      InstanceFlagDebugUtils,
		EngineName: "daxa",
		AppName:    "daxa app",
	}
}

// DeviceInfo describes a logical device. Devices are selected with the
// native library's default scoring function.
type DeviceInfo struct {
	Flags              DeviceFlags
	MaxAllowedImages   uint32
	MaxAllowedBuffers  uint32
	MaxAllowedSamplers uint32
	Name               string
}

// DefaultDeviceInfo returns the descriptor used when nothing is configured.
func DefaultDeviceInfo() DeviceInfo {
	return DeviceInfo{
		Flags:              DeviceFlagBufferDeviceAddressCaptureReplay,
		MaxAllowedImages:   10000,
		MaxAllowedBuffers:  10000,
		MaxAllowedSamplers: 10000,
	}
}

type BufferInfo struct {
	Size         uint64
	AllocateInfo MemoryFlags
	Name         string
}

type ImageInfo struct {
	Flags           ImageFlags
	Dimensions      uint32
	Format          Format
	Size            Extent3D
	MipLevelCount   uint32
	ArrayLayerCount uint32
	SampleCount     uint32
	Usage           ImageUsageFlags
	SharingMode     SharingMode
	AllocateInfo    MemoryFlags
	Name            string
}

type ImageViewInfo struct {
	Type   ImageViewType
	Format Format
	Image  ImageID
	Slice  ImageMipArraySlice
	Name   string
}

type SamplerInfo struct {
	MagnificationFilter           Filter
	MinificationFilter            Filter
	MipmapFilter                  Filter
	AddressModeU                  SamplerAddressMode
	AddressModeV                  SamplerAddressMode
	AddressModeW                  SamplerAddressMode
	MipLODBias                    float32
	EnableAnisotropy              bool
	MaxAnisotropy                 float32
	EnableCompare                 bool
	CompareOp                     CompareOp
	MinLOD                        float32
	MaxLOD                        float32
	BorderColor                   BorderColor
	EnableUnnormalizedCoordinates bool
	Name                          string
}

// DefaultSamplerInfo is a linear, clamp-to-edge sampler covering every mip.
func DefaultSamplerInfo() SamplerInfo {
	return SamplerInfo{
		MagnificationFilter: FilterLinear,
		MinificationFilter:  FilterLinear,
		MipmapFilter:        FilterLinear,
		AddressModeU:        SamplerAddressModeClampToEdge,
		AddressModeV:        SamplerAddressModeClampToEdge,
		AddressModeW:        SamplerAddressModeClampToEdge,
		MaxLOD:              1000,
		CompareOp:           CompareOpAlways,
		BorderColor:         BorderColorFloatTransparentBlack,
	}
}

type MemoryBlockInfo struct {
	Requirements MemoryRequirements
	Flags        MemoryFlags
}

// MemoryBlockBufferInfo places a buffer at Offset inside an existing memory block.
type MemoryBlockBufferInfo struct {
	Buffer BufferInfo
	Memory Handle
	Offset uint64
}

// ShaderInfo carries SPIR-V words and an optional entry point (default "main").
type ShaderInfo struct {
	ByteCode   []uint32
	EntryPoint string
}

type ColorAttachment struct {
	Format Format
}

type DepthTestInfo struct {
	DepthAttachmentFormat Format
	EnableDepthWrite      bool
	DepthTestCompareOp    CompareOp
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type RasterizerInfo struct {
	PrimitiveTopology       PrimitiveTopology
	PrimitiveRestartEnable  bool
	PolygonMode             PolygonMode
	FaceCulling             CullModeFlags
	FrontFaceWinding        FrontFace
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type RasterPipelineInfo struct {
	VertexShader     *ShaderInfo
	FragmentShader   *ShaderInfo
	ColorAttachments []ColorAttachment
	DepthTest        *DepthTestInfo
	Raster           RasterizerInfo
	PushConstantSize uint32
	Name             string
}

type ComputePipelineInfo struct {
	Shader           ShaderInfo
	PushConstantSize uint32
	Name             string
}

// NativeWindowPlatform identifies the windowing system NativeWindow belongs to.
type NativeWindowPlatform int32

const (
	NativeWindowPlatformUnknown NativeWindowPlatform = iota
	NativeWindowPlatformWin32
	NativeWindowPlatformXlib
	NativeWindowPlatformWayland
)

type SwapchainInfo struct {
	NativeWindow             uintptr
	NativeWindowPlatform     NativeWindowPlatform
	PresentMode              PresentMode
	PresentOperation         SurfaceTransform
	ImageUsage               ImageUsageFlags
	MaxAllowedFramesInFlight uint64
	Name                     string
}

type CommandRecorderInfo struct {
	Name string
}

type BinarySemaphoreInfo struct {
	Name string
}

type TimelineSemaphoreInfo struct {
	InitialValue uint64
	Name         string
}

type EventInfo struct {
	Name string
}

type TimelineQueryPoolInfo struct {
	QueryCount uint32
	Name       string
}
