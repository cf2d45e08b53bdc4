package daxa

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// ShaderStage selects which raster pipeline stage a shader is attached to.
type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

// RasterPipelineConfig is a utility object to ease construction of raster
// pipelines.
type RasterPipelineConfig struct {
	Device *Device
	Name   string

	VertexShader   *ShaderInfo
	FragmentShader *ShaderInfo

	// PrimitiveTopology defaults to a triangle list
	PrimitiveTopology PrimitiveTopology

	// PrimitiveRestartEnable defaults to false
	PrimitiveRestartEnable bool

	// PolygonMode defaults to fill
	PolygonMode PolygonMode

	// LineWidth of rasterized lines, defaults to 1.0
	LineWidth float32

	// CullMode specifies which triangles will be culled, defaults to back faces
	CullMode CullModeFlags

	// FrontFace defaults to counter clockwise
	FrontFace FrontFace

	ColorAttachments []ColorAttachment

	// DepthTestEnable defaults to true
	DepthTestEnable bool

	// DepthWriteEnable defaults to true
	DepthWriteEnable bool

	DepthFormat  Format
	DepthCompare CompareOp

	PushConstantSize uint32
}

// CreateRasterPipelineConfig creates a new config object
func (d *Device) CreateRasterPipelineConfig(name string) *RasterPipelineConfig {
	return &RasterPipelineConfig{
		Device:            d,
		Name:              name,
		PrimitiveTopology: vk.PrimitiveTopologyTriangleList,
		PolygonMode:       vk.PolygonModeFill,
		LineWidth:         1.0,
		CullMode:          CullModeFlags(vk.CullModeBackBit),
		FrontFace:         vk.FrontFaceCounterClockwise,
		DepthTestEnable:   true,
		DepthWriteEnable:  true,
		DepthFormat:       vk.FormatD32Sfloat,
		DepthCompare:      vk.CompareOpLessOrEqual,
	}
}

// AddColorAttachment adds a color attachment of the given format
func (g *RasterPipelineConfig) AddColorAttachment(format Format) *RasterPipelineConfig {
	g.ColorAttachments = append(g.ColorAttachments, ColorAttachment{Format: format})
	return g
}

// SetCullMode sets the cull mode
func (g *RasterPipelineConfig) SetCullMode(mode CullModeFlags) *RasterPipelineConfig {
	g.CullMode = mode
	return g
}

// SetShaderStage sets the shader of a stage directly
func (g *RasterPipelineConfig) SetShaderStage(stage ShaderStage, shader ShaderInfo) *RasterPipelineConfig {
	switch stage {
	case ShaderStageVertex:
		g.VertexShader = &shader
	case ShaderStageFragment:
		g.FragmentShader = &shader
	}
	return g
}

// AddShaderStageFromFile adds a SPIR-V shader from a specified file
func (g *RasterPipelineConfig) AddShaderStageFromFile(file, entryPoint string, stage ShaderStage) error {
	shader, err := LoadSPIRV(file, entryPoint)
	if err != nil {
		return err
	}
	g.SetShaderStage(stage, shader)
	return nil
}

// AddShaderStageFromWGSL compiles WGSL source for a stage
func (g *RasterPipelineConfig) AddShaderStageFromWGSL(source, entryPoint string, stage ShaderStage) error {
	shader, err := CompileWGSL(source, entryPoint)
	if err != nil {
		return err
	}
	g.SetShaderStage(stage, shader)
	return nil
}

// RasterPipelineInfo uses the provided config information to create the
// pipeline descriptor.
func (g *RasterPipelineConfig) RasterPipelineInfo() (RasterPipelineInfo, error) {
	if g.VertexShader == nil {
		return RasterPipelineInfo{}, fmt.Errorf("daxa: raster pipeline %q has no vertex shader", g.Name)
	}
	if len(g.ColorAttachments) > maxColorAttachments {
		return RasterPipelineInfo{}, fmt.Errorf("daxa: raster pipeline %q has %d color attachments, at most %d are supported", g.Name, len(g.ColorAttachments), maxColorAttachments)
	}

	info := RasterPipelineInfo{
		VertexShader:     g.VertexShader,
		FragmentShader:   g.FragmentShader,
		ColorAttachments: g.ColorAttachments,
		Raster: RasterizerInfo{
			PrimitiveTopology:      g.PrimitiveTopology,
			PrimitiveRestartEnable: g.PrimitiveRestartEnable,
			PolygonMode:            g.PolygonMode,
			FaceCulling:            g.CullMode,
			FrontFaceWinding:       g.FrontFace,
			LineWidth:              g.LineWidth,
		},
		PushConstantSize: g.PushConstantSize,
		Name:             g.Name,
	}
	if g.DepthTestEnable {
		info.DepthTest = &DepthTestInfo{
			DepthAttachmentFormat: g.DepthFormat,
			EnableDepthWrite:      g.DepthWriteEnable,
			DepthTestCompareOp:    g.DepthCompare,
			MaxDepthBounds:        1.0,
		}
	}
	return info, nil
}

// CreatePipeline builds the descriptor and creates the pipeline.
func (g *RasterPipelineConfig) CreatePipeline() (*RasterPipeline, error) {
	info, err := g.RasterPipelineInfo()
	if err != nil {
		return nil, err
	}
	return g.Device.CreateRasterPipeline(info)
}
