package daxa

type RasterPipeline struct {
	object
	Name string
}

type ComputePipeline struct {
	object
	Name string
}

// CreateRasterPipeline compiles a graphics pipeline from SPIR-V shaders.
func (d *Device) CreateRasterPipeline(info RasterPipelineInfo) (*RasterPipeline, error) {
	h, err := d.create("create raster pipeline", func(out *Handle) Result {
		return d.lib.CreateRasterPipeline(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &RasterPipeline{
		object: object{Device: d, Handle: h, kind: ObjectRasterPipeline},
		Name:   info.Name,
	}, nil
}

// CreateComputePipeline compiles a compute pipeline from a SPIR-V shader.
func (d *Device) CreateComputePipeline(info ComputePipelineInfo) (*ComputePipeline, error) {
	h, err := d.create("create compute pipeline", func(out *Handle) Result {
		return d.lib.CreateComputePipeline(d.handle, &info, out)
	})
	if err != nil {
		return nil, err
	}

	return &ComputePipeline{
		object: object{Device: d, Handle: h, kind: ObjectComputePipeline},
		Name:   info.Name,
	}, nil
}
