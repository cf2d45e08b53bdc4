package daxa

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"unsafe"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestStageTextureFromDisk(t *testing.T) {
	lib := newFakeLibrary()
	backing := make([]byte, 4096)
	lib.hostAddress = unsafe.Pointer(&backing[0])
	d := lib.device()
	defer d.Destroy()

	path := filepath.Join(t.TempDir(), "checker.png")
	writePNG(t, path, 8, 4)

	r := d.CreateResourceManager()
	tex, err := r.StageTextureFromDisk(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Extent != (Extent3D{Width: 8, Height: 4, Depth: 1}) {
		t.Errorf("extent %+v", tex.Extent)
	}
	if tex.Staging.Size != 8*4*4 {
		t.Errorf("staging size %d", tex.Staging.Size)
	}
	// pixel (1, 2)
	if px := backing[(2*8+1)*4:]; px[0] != 1 || px[1] != 2 || px[2] != 0x80 || px[3] != 0xff {
		t.Errorf("pixel % x", px[:4])
	}

	if err := tex.ReleaseStaging(); err != nil {
		t.Fatal(err)
	}
	if tex.Staging != nil {
		t.Error("staging kept")
	}
	if err := tex.Destroy(); err != nil {
		t.Fatal(err)
	}
	if n := lib.count("destroy image"); n != 1 {
		t.Errorf("image destroyed %d times", n)
	}
}

func TestStageTextureUsesStagingPool(t *testing.T) {
	lib := newFakeLibrary()
	backing := make([]byte, 4096)
	lib.hostAddress = unsafe.Pointer(&backing[0])
	d := lib.device()
	defer d.Destroy()

	r := d.CreateResourceManager()
	pool, err := r.AllocateStagingPool(1 << 12)
	if err != nil {
		t.Fatal(err)
	}

	tex, err := r.StageTextureFromImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), "blank")
	if err != nil {
		t.Fatal(err)
	}
	if pool.Used() == 0 {
		t.Error("staging buffer not taken from the pool")
	}
	if err := tex.Destroy(); err != nil {
		t.Fatal(err)
	}
	if pool.Used() != 0 {
		t.Errorf("pool still uses %d bytes", pool.Used())
	}
}

func TestStageTextureMissingFile(t *testing.T) {
	lib := newFakeLibrary()
	d := lib.device()
	defer d.Destroy()

	if _, err := d.CreateResourceManager().StageTextureFromDisk(filepath.Join(t.TempDir(), "none.png"), 0); err == nil {
		t.Error("missing file staged")
	}
}

func TestToRGBAScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	m := toRGBA(src, 100)
	if b := m.Bounds(); b.Dx() != 100 || b.Dy() != 25 {
		t.Errorf("scaled to %v", b)
	}

	if toRGBA(src, 0) != src {
		t.Error("tight RGBA image copied")
	}

	sub := src.SubImage(image.Rect(10, 10, 20, 20))
	if b := toRGBA(sub, 0).Bounds(); b.Min != (image.Point{}) || b.Dx() != 10 {
		t.Errorf("sub image bounds %v", b)
	}
}
