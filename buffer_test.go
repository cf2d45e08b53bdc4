package daxa

import (
	"testing"
	"unsafe"
)

func TestCreateBuffer(t *testing.T) {
	lib := newFakeLibrary()
	d := lib.device()
	defer d.Destroy()

	b, err := d.CreateBuffer(BufferInfo{Size: 1024, Name: "vertices"})
	if err != nil {
		t.Fatal(err)
	}
	if b.ID.GPUResourceID != lib.cannedID {
		t.Errorf("id %#x, want %#x", uint64(b.ID.GPUResourceID), uint64(lib.cannedID))
	}
	if b.Device != d {
		t.Error("buffer does not point at its device")
	}
	if b.Size != 1024 {
		t.Errorf("size %d", b.Size)
	}
	if b.ID.Index() != 7 || b.ID.Version() != 1 {
		t.Errorf("index %d version %d", b.ID.Index(), b.ID.Version())
	}
}

func TestCreateBufferOutOfMemory(t *testing.T) {
	lib := newFakeLibrary()
	lib.fail("create buffer", ResultErrorOutOfDeviceMemory)
	d := lib.device()
	defer d.Destroy()

	b, err := d.CreateBuffer(BufferInfo{Size: 1 << 40})
	if b != nil {
		t.Error("got a buffer on failure")
	}
	if err != ResultErrorOutOfDeviceMemory {
		t.Errorf("got %v", err)
	}
}

func TestCreateBufferUnknownCode(t *testing.T) {
	lib := newFakeLibrary()
	lib.fail("create buffer", Result(12345))
	d := lib.device()
	defer d.Destroy()

	_, err := d.CreateBuffer(BufferInfo{Size: 4})
	if r, ok := err.(Result); !ok || r != 12345 {
		t.Errorf("code not passed through: %v", err)
	}
}

func TestBufferValidity(t *testing.T) {
	lib := newFakeLibrary()
	d := lib.device()
	defer d.Destroy()

	b, err := d.CreateBuffer(BufferInfo{Size: 8})
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsValid() || !d.IsBufferValid(b.ID) {
		t.Error("fresh buffer reported invalid")
	}

	if err := b.Destroy(); err != nil {
		t.Fatal(err)
	}
	if b.IsValid() {
		t.Error("destroyed buffer reported valid")
	}

	lib.fail("destroy buffer", ResultBufferDoubleFree)
	if err := b.Destroy(); err != ResultBufferDoubleFree {
		t.Errorf("second destroy: %v", err)
	}
}

func TestBufferBytes(t *testing.T) {
	lib := newFakeLibrary()
	backing := make([]byte, 16)
	lib.hostAddress = unsafe.Pointer(&backing[0])
	d := lib.device()
	defer d.Destroy()

	b, err := d.CreateBuffer(BufferInfo{Size: uint64(len(backing)), AllocateInfo: MemoryFlagHostAccessRandom})
	if err != nil {
		t.Fatal(err)
	}

	mapped, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(mapped) != len(backing) {
		t.Fatalf("mapped %d bytes", len(mapped))
	}
	mapped[3] = 0xff
	if backing[3] != 0xff {
		t.Error("mapping does not alias host memory")
	}
}

func TestToBytes(t *testing.T) {
	if ToBytes(nil, 4) != nil {
		t.Error("nil pointer mapped")
	}
	v := uint32(0x01020304)
	if len(ToBytes(unsafe.Pointer(&v), 4)) != 4 {
		t.Error("wrong length")
	}
}
