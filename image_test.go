package daxa

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestCreateImage(t *testing.T) {
	lib := newFakeLibrary()
	d := lib.device()
	defer d.Destroy()

	img, err := d.CreateImage(ImageInfo{
		Dimensions:      2,
		Format:          vk.FormatR8g8b8a8Unorm,
		Size:            Extent3D{Width: 64, Height: 64, Depth: 1},
		MipLevelCount:   1,
		ArrayLayerCount: 1,
		SampleCount:     1,
		Usage:           ImageUsageShaderSampled | ImageUsageTransferDst,
	})
	if err != nil {
		t.Fatal(err)
	}
	if img.ID.GPUResourceID != lib.cannedID || img.Device != d {
		t.Errorf("unexpected image %+v", img)
	}
	if !img.IsValid() {
		t.Error("fresh image reported invalid")
	}

	view, err := img.CreateImageView()
	if err != nil {
		t.Fatal(err)
	}
	if lib.lastImageView.Image != img.ID || lib.lastImageView.Format != vk.FormatR8g8b8a8Unorm {
		t.Errorf("view descriptor %+v", lib.lastImageView)
	}
	if lib.lastImageView.Slice.LevelCount != 1 || lib.lastImageView.Slice.LayerCount != 1 {
		t.Errorf("view slice %+v", lib.lastImageView.Slice)
	}
	if !view.IsValid() {
		t.Error("fresh view reported invalid")
	}

	if err := view.Destroy(); err != nil {
		t.Fatal(err)
	}
	if d.IsImageViewValid(view.ID) {
		t.Error("destroyed view reported valid")
	}
}

func TestCreateImageFailure(t *testing.T) {
	lib := newFakeLibrary()
	lib.fail("create image", ResultExceededMaxImages)
	d := lib.device()
	defer d.Destroy()

	img, err := d.CreateImage(ImageInfo{})
	if img != nil || err != ResultExceededMaxImages {
		t.Errorf("got %v, %v", img, err)
	}
}

func TestCreateImageViewFailure(t *testing.T) {
	lib := newFakeLibrary()
	lib.fail("create image view", ResultInvalidImageID)
	d := lib.device()
	defer d.Destroy()

	view, err := d.CreateImageView(ImageViewInfo{Type: ImageViewType2D})
	if view != nil || err != ResultInvalidImageID {
		t.Errorf("got %v, %v", view, err)
	}
}

func TestDestroyImageResult(t *testing.T) {
	lib := newFakeLibrary()
	d := lib.device()
	defer d.Destroy()

	lib.fail("destroy image", ResultImageDoubleFree)
	if err := d.DestroyImage(ImageID{lib.cannedID}); err != ResultImageDoubleFree {
		t.Errorf("got %v", err)
	}
}

func TestCreateSampler(t *testing.T) {
	lib := newFakeLibrary()
	d := lib.device()
	defer d.Destroy()

	s, err := d.CreateSampler(DefaultSamplerInfo())
	if err != nil {
		t.Fatal(err)
	}
	if s.ID.GPUResourceID != lib.cannedID || s.Device != d {
		t.Errorf("unexpected sampler %+v", s)
	}
	if !s.IsValid() {
		t.Error("fresh sampler reported invalid")
	}
	if err := s.Destroy(); err != nil {
		t.Fatal(err)
	}
	if s.IsValid() {
		t.Error("destroyed sampler reported valid")
	}

	lib.fail("create sampler", ResultExceededMaxSamplers)
	if s, err := d.CreateSampler(SamplerInfo{}); s != nil || err != ResultExceededMaxSamplers {
		t.Errorf("got %v, %v", s, err)
	}
}
