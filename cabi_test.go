package daxa

import (
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"
	"unsafe"
)

func TestSmallString(t *testing.T) {
	s := newSmallString("staging buffer")
	if s.String() != "staging buffer" || s.size != 14 {
		t.Errorf("got %q size %d", s.String(), s.size)
	}

	long := strings.Repeat("x", 100)
	s = newSmallString(long)
	if s.String() != long[:smallStringCapacity] {
		t.Errorf("long name not truncated: %d bytes", len(s.String()))
	}

	accented := strings.Repeat("é", 40)
	s = newSmallString(accented)
	if got := s.String(); !utf8.ValidString(got) || got != strings.Repeat("é", 31) {
		t.Errorf("rune split by truncation: %q", got)
	}

	if unsafe.Sizeof(cSmallString{}) != 64 {
		t.Errorf("small string is %d bytes", unsafe.Sizeof(cSmallString{}))
	}
}

func TestDeviceInfoRoundTrip(t *testing.T) {
	info := DeviceInfo{
		Flags:              DeviceFlagMeshShader | DeviceFlagShaderAtomic64,
		MaxAllowedImages:   1,
		MaxAllowedBuffers:  2,
		MaxAllowedSamplers: 3,
		Name:               "gpu",
	}
	c := toCDeviceInfo(&info, 0xf00)
	if c.selector != 0xf00 {
		t.Errorf("selector %#x", c.selector)
	}
	if got := fromCDeviceInfo(&c); got != info {
		t.Errorf("got %+v", got)
	}
	if got := fromCDeviceInfo(nil); got != (DeviceInfo{}) {
		t.Errorf("nil info decoded as %+v", got)
	}
}

func TestDevicePropertiesName(t *testing.T) {
	var c cDeviceProperties
	copy(c.deviceName[:], "Fake GPU\x00garbage")
	c.vendorID = 0x10de

	p := fromCDeviceProperties(&c)
	if p.Name != "Fake GPU" || p.VendorID != 0x10de {
		t.Errorf("got %+v", p)
	}
}

func TestSubmitInfoPinning(t *testing.T) {
	var pinner runtime.Pinner
	defer pinner.Unpin()

	info := NativeSubmitInfo{
		CommandLists:             []Handle{1, 2},
		SignalTimelineSemaphores: []TimelinePair{{Semaphore: 9, Value: 4}},
	}
	c := toCSubmitInfo(&info, &pinner)
	if c.commandListCount != 2 || *c.commandLists != 1 {
		t.Errorf("command lists %v %d", c.commandLists, c.commandListCount)
	}
	if c.waitBinarySemaphores != nil || c.waitBinaryCount != 0 {
		t.Error("empty slice not passed as null")
	}
	if c.signalTimelineCount != 1 || c.signalTimelineSemaphores.semaphore != 9 || c.signalTimelineSemaphores.value != 4 {
		t.Errorf("timeline pair %+v", c.signalTimelineSemaphores)
	}
}

func TestShaderInfoEntryPoint(t *testing.T) {
	var pinner runtime.Pinner
	defer pinner.Unpin()

	code := []uint32{spirvMagic, 0x10000}
	c := toCShaderInfo(&ShaderInfo{ByteCode: code}, &pinner)
	if c.byteCode != &code[0] || c.byteCodeSize != 2 {
		t.Errorf("byte code %p %d", c.byteCode, c.byteCodeSize)
	}
	if c.entryPoint.hasValue != 0 {
		t.Error("empty entry point sent as set")
	}

	c = toCShaderInfo(&ShaderInfo{ByteCode: code, EntryPoint: "vs_main"}, &pinner)
	if c.entryPoint.hasValue != 1 || c.entryPoint.value.String() != "vs_main" {
		t.Errorf("entry point %+v", c.entryPoint)
	}
}

func TestHandleAt(t *testing.T) {
	if handleAt(nil) != 0 {
		t.Error("nil pointer read")
	}
	h := Handle(0x42)
	if handleAt(unsafe.Pointer(&h)) != 0x42 {
		t.Error("handle not read")
	}
}

func TestRasterPipelineAttachmentCap(t *testing.T) {
	var pinner runtime.Pinner
	defer pinner.Unpin()

	info := RasterPipelineInfo{
		ColorAttachments: make([]ColorAttachment, 10),
		DepthTest:        &DepthTestInfo{EnableDepthWrite: true},
		Name:             "opaque",
	}
	c := toCRasterPipelineInfo(&info, &pinner)
	if c.colorCount != maxColorAttachments {
		t.Errorf("color count %d", c.colorCount)
	}
	if c.vertexShader.hasValue != 0 || c.depthTest.hasValue != 1 || c.depthTest.value.enableDepthWrite != 1 {
		t.Error("optional fields not encoded")
	}
	if c.name.String() != "opaque" {
		t.Errorf("name %q", c.name.String())
	}
}
