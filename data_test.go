package daxa

import (
	"encoding/binary"
	"testing"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

func TestIndexSlices(t *testing.T) {
	i16 := IndexSliceUint16{1, 2, 3}
	if len(i16.Bytes()) != 6 || i16.IndexType() != vk.IndexTypeUint16 {
		t.Errorf("uint16 indices: %d bytes", len(i16.Bytes()))
	}

	i32 := IndexSliceUint32{1, 2, 0x01020304}
	b := i32.Bytes()
	if len(b) != 12 || i32.IndexType() != vk.IndexTypeUint32 {
		t.Fatalf("uint32 indices: %d bytes", len(b))
	}
	if binary.NativeEndian.Uint32(b[8:]) != 0x01020304 {
		t.Error("bytes do not alias the slice")
	}

	if SliceBytes([]float32{}) != nil {
		t.Error("empty slice mapped")
	}
}

func TestCreateHostBuffer(t *testing.T) {
	lib := newFakeLibrary()
	backing := make([]byte, 64)
	lib.hostAddress = unsafe.Pointer(&backing[0])
	d := lib.device()
	defer d.Destroy()

	b, err := d.CreateHostBuffer(IndexSliceUint16{7, 8}, "indices")
	if err != nil {
		t.Fatal(err)
	}
	if b.Size != 4 || binary.NativeEndian.Uint16(backing[2:]) != 8 {
		t.Errorf("size %d data % x", b.Size, backing[:4])
	}

	if err := b.Write(2, []byte{1, 2, 3}); err == nil {
		t.Error("overflowing write accepted")
	}

	if err := b.Write(^uint64(0), []byte{1, 2}); err == nil {
		t.Error("write at a wrapping offset accepted")
	}
	if err := b.Write(b.Size, nil); err != nil {
		t.Errorf("empty write at end: %v", err)
	}

	if _, err := d.CreateHostBuffer(Bytes(nil), "empty"); err == nil {
		t.Error("empty buffer created")
	}

	lib.fail("buffer host address", ResultErrorMemoryMapFailed)
	if _, err := d.CreateHostBuffer(Bytes{1}, "unmapped"); err != ResultErrorMemoryMapFailed {
		t.Errorf("got %v", err)
	}
	if n := lib.count("destroy buffer"); n != 1 {
		t.Errorf("failed upload left buffer alive, %d destroys", n)
	}
}
