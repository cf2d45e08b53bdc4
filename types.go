package daxa

import (
	vk "github.com/vulkan-go/vulkan"
)

// Vulkan enums used by descriptors are shared verbatim with the native library.
type (
	Format             = vk.Format
	ImageViewType      = vk.ImageViewType
	DeviceType         = vk.PhysicalDeviceType
	Filter             = vk.Filter
	SamplerAddressMode = vk.SamplerAddressMode
	CompareOp          = vk.CompareOp
	BorderColor        = vk.BorderColor
	PresentMode        = vk.PresentMode
	PrimitiveTopology  = vk.PrimitiveTopology
	PolygonMode        = vk.PolygonMode
	FrontFace          = vk.FrontFace
	CullModeFlags      = vk.CullModeFlags
	SharingMode        = vk.SharingMode
	SurfaceTransform   = vk.SurfaceTransformFlagBits
)

const (
	ImageViewType1D        = vk.ImageViewType1d
	ImageViewType2D        = vk.ImageViewType2d
	ImageViewType3D        = vk.ImageViewType3d
	ImageViewTypeCube      = vk.ImageViewTypeCube
	ImageViewType1DArray   = vk.ImageViewType1dArray
	ImageViewType2DArray   = vk.ImageViewType2dArray
	ImageViewTypeCubeArray = vk.ImageViewTypeCubeArray
)

const (
	FilterNearest = vk.FilterNearest
	FilterLinear  = vk.FilterLinear

	SamplerAddressModeRepeat         = vk.SamplerAddressModeRepeat
	SamplerAddressModeMirroredRepeat = vk.SamplerAddressModeMirroredRepeat
	SamplerAddressModeClampToEdge    = vk.SamplerAddressModeClampToEdge
	SamplerAddressModeClampToBorder  = vk.SamplerAddressModeClampToBorder

	CompareOpNever          = vk.CompareOpNever
	CompareOpLess           = vk.CompareOpLess
	CompareOpLessOrEqual    = vk.CompareOpLessOrEqual
	CompareOpGreater        = vk.CompareOpGreater
	CompareOpGreaterOrEqual = vk.CompareOpGreaterOrEqual
	CompareOpAlways         = vk.CompareOpAlways

	BorderColorFloatTransparentBlack = vk.BorderColorFloatTransparentBlack
	BorderColorFloatOpaqueBlack      = vk.BorderColorFloatOpaqueBlack
	BorderColorFloatOpaqueWhite      = vk.BorderColorFloatOpaqueWhite

	PresentModeImmediate = vk.PresentModeImmediate
	PresentModeMailbox   = vk.PresentModeMailbox
	PresentModeFifo      = vk.PresentModeFifo
)

const (
	DeviceTypeOther         = vk.PhysicalDeviceTypeOther
	DeviceTypeIntegratedGPU = vk.PhysicalDeviceTypeIntegratedGpu
	DeviceTypeDiscreteGPU   = vk.PhysicalDeviceTypeDiscreteGpu
	DeviceTypeVirtualGPU    = vk.PhysicalDeviceTypeVirtualGpu
	DeviceTypeCPU           = vk.PhysicalDeviceTypeCpu
)

// DeviceFlags enable optional device features at creation time.
type DeviceFlags uint64

const (
	DeviceFlagBufferDeviceAddressCaptureReplay DeviceFlags = 1 << iota
	DeviceFlagConservativeRasterization
	DeviceFlagMeshShader
	DeviceFlagShaderAtomic64
	DeviceFlagImageAtomic64
	DeviceFlagVKMemoryModel
)

// InstanceFlags control instance creation.
type InstanceFlags uint64

const (
	InstanceFlagDebugUtils InstanceFlags = 1 << iota
	InstanceFlagParentMustOutliveChild
)

// MemoryFlags mirror VmaAllocationCreateFlags.
type MemoryFlags uint32

const (
	MemoryFlagNone                      MemoryFlags = 0
	MemoryFlagDedicatedMemory           MemoryFlags = 0x00000001
	MemoryFlagCanAlias                  MemoryFlags = 0x00000200
	MemoryFlagHostAccessSequentialWrite MemoryFlags = 0x00000400
	MemoryFlagHostAccessRandom          MemoryFlags = 0x00000800
	MemoryFlagStrategyMinMemory         MemoryFlags = 0x00010000
	MemoryFlagStrategyMinTime           MemoryFlags = 0x00020000
)

// ImageFlags mirror VkImageCreateFlags.
type ImageFlags uint32

const (
	ImageFlagAllowMutableFormat ImageFlags = 0x00000008
	ImageFlagCompatibleCube     ImageFlags = 0x00000010
	ImageFlagCompatible2DArray  ImageFlags = 0x00000020
	ImageFlagAllowAlias         ImageFlags = 0x00000400
)

// ImageUsageFlags mirror VkImageUsageFlags.
type ImageUsageFlags uint32

const (
	ImageUsageTransferSrc            = ImageUsageFlags(vk.ImageUsageTransferSrcBit)
	ImageUsageTransferDst            = ImageUsageFlags(vk.ImageUsageTransferDstBit)
	ImageUsageShaderSampled          = ImageUsageFlags(vk.ImageUsageSampledBit)
	ImageUsageShaderStorage          = ImageUsageFlags(vk.ImageUsageStorageBit)
	ImageUsageColorAttachment        = ImageUsageFlags(vk.ImageUsageColorAttachmentBit)
	ImageUsageDepthStencilAttachment = ImageUsageFlags(vk.ImageUsageDepthStencilAttachmentBit)
)

// PipelineStageFlags are the 64 bit synchronization2 stage bits.
type PipelineStageFlags uint64

const (
	PipelineStageNone                         PipelineStageFlags = 0
	PipelineStageTopOfPipe                    PipelineStageFlags = 0x00000001
	PipelineStageDrawIndirect                 PipelineStageFlags = 0x00000002
	PipelineStageVertexInput                  PipelineStageFlags = 0x00000004
	PipelineStageVertexShader                 PipelineStageFlags = 0x00000008
	PipelineStageTessellationControlShader    PipelineStageFlags = 0x00000010
	PipelineStageTessellationEvaluationShader PipelineStageFlags = 0x00000020
	PipelineStageGeometryShader               PipelineStageFlags = 0x00000040
	PipelineStageFragmentShader               PipelineStageFlags = 0x00000080
	PipelineStageEarlyFragmentTests           PipelineStageFlags = 0x00000100
	PipelineStageLateFragmentTests            PipelineStageFlags = 0x00000200
	PipelineStageColorAttachmentOutput        PipelineStageFlags = 0x00000400
	PipelineStageComputeShader                PipelineStageFlags = 0x00000800
	PipelineStageTransfer                     PipelineStageFlags = 0x00001000
	PipelineStageBottomOfPipe                 PipelineStageFlags = 0x00002000
	PipelineStageHost                         PipelineStageFlags = 0x00004000
	PipelineStageAllGraphics                  PipelineStageFlags = 0x00008000
	PipelineStageAllCommands                  PipelineStageFlags = 0x00010000
	PipelineStageConditionalRendering         PipelineStageFlags = 0x00040000
	PipelineStageTransformFeedback            PipelineStageFlags = 0x01000000
	PipelineStageAccelerationStructureBuild   PipelineStageFlags = 0x02000000
	PipelineStageRayTracingShader             PipelineStageFlags = 0x00200000
	PipelineStageFragmentDensityProcess       PipelineStageFlags = 0x00800000
	PipelineStageFragmentShadingRate          PipelineStageFlags = 0x00400000
	PipelineStageCommandPreprocess            PipelineStageFlags = 0x00020000
	PipelineStageTaskShader                   PipelineStageFlags = 0x00080000
	PipelineStageMeshShader                   PipelineStageFlags = 0x00100000
)

const (
	gpuResourceIndexBits = 20
	gpuResourceIndexMask = 1<<gpuResourceIndexBits - 1
)

// GPUResourceID packs a 20 bit slot index and a 44 bit version.
type GPUResourceID uint64

func (id GPUResourceID) Index() uint32 {
	return uint32(uint64(id) & gpuResourceIndexMask)
}

func (id GPUResourceID) Version() uint64 {
	return uint64(id) >> gpuResourceIndexBits
}

// IsEmpty reports whether the id is the zero id, which never names a live resource.
func (id GPUResourceID) IsEmpty() bool {
	return id == 0
}

type (
	BufferID    struct{ GPUResourceID }
	ImageID     struct{ GPUResourceID }
	ImageViewID struct{ GPUResourceID }
	SamplerID   struct{ GPUResourceID }
)

// BufferDeviceAddress is a GPU virtual address of a buffer.
type BufferDeviceAddress uint64

// Opaque native handles.
type (
	InstanceHandle uintptr
	DeviceHandle   uintptr
	Handle         uintptr
)

// Extent3D is a three dimensional size in texels.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// ImageMipArraySlice selects a range of mips and array layers of an image.
type ImageMipArraySlice struct {
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// MemoryRequirements mirrors VkMemoryRequirements.
type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}
