package daxa

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the formats textures are commonly shipped in.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	vk "github.com/vulkan-go/vulkan"
)

// StagedTexture is an RGBA8 image together with a host buffer holding its
// pixels. Recording the copy from Staging into Image is left to the caller's
// command recorder.
type StagedTexture struct {
	Image   *Image
	Staging *Buffer
	Extent  Extent3D

	pool *BufferPool
}

// ReleaseStaging frees the staging buffer once the copy has completed.
func (t *StagedTexture) ReleaseStaging() error {
	if t.Staging == nil {
		return nil
	}
	var err error
	if t.pool != nil {
		err = t.pool.Free(t.Staging)
	} else {
		err = t.Staging.Destroy()
	}
	t.Staging = nil
	return err
}

func (t *StagedTexture) Destroy() error {
	err := t.ReleaseStaging()
	if ierr := t.Image.Destroy(); err == nil {
		err = ierr
	}
	return err
}

// StageTextureFromDisk decodes an image file and stages it. Images larger than
// maxDimension on either side are scaled down to fit; zero disables scaling.
func (r *ResourceManager) StageTextureFromDisk(filename string, maxDimension int) (*StagedTexture, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	src, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("daxa: decode %s: %w", filename, err)
	}

	return r.StageTextureFromImage(toRGBA(src, maxDimension), filename)
}

// StageTextureFromImage creates the image and fills a staging buffer with
// the pixels of src. The staging buffer comes from the staging pool when one
// has been allocated.
func (r *ResourceManager) StageTextureFromImage(src *image.RGBA, name string) (*StagedTexture, error) {
	b := src.Bounds()
	extent := Extent3D{Width: uint32(b.Dx()), Height: uint32(b.Dy()), Depth: 1}

	img, err := r.Device.CreateImage(ImageInfo{
		Dimensions:      2,
		Format:          vk.FormatR8g8b8a8Unorm,
		Size:            extent,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
		SampleCount:     1,
		Usage:           ImageUsageTransferDst | ImageUsageShaderSampled,
		Name:            name,
	})
	if err != nil {
		return nil, err
	}

	t := &StagedTexture{Image: img, Extent: extent}
	pixels := Bytes(src.Pix)
	if pool := r.GetStagingPool(); pool != nil {
		t.pool = pool
		t.Staging, err = pool.AllocateFor(pixels, name)
	} else {
		t.Staging, err = r.Device.CreateHostBuffer(pixels, name)
	}
	if err != nil {
		img.Destroy()
		return nil, err
	}

	return t, nil
}

func toRGBA(src image.Image, maxDimension int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDimension > 0 && (w > maxDimension || h > maxDimension) {
		if w >= h {
			h = max(1, h*maxDimension/w)
			w = maxDimension
		} else {
			w = max(1, w*maxDimension/h)
			h = maxDimension
		}
		m := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(m, m.Bounds(), src, b, draw.Src, nil)
		return m
	}

	if m, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) && m.Stride == 4*w {
		return m
	}
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)
	return m
}
