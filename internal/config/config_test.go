package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/voxelphile/daxa-go"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Library != daxa.DefaultLibraryName() {
		t.Errorf("library %q", cfg.Library)
	}
	info := cfg.DeviceInfo()
	if info.Flags != daxa.DeviceFlagBufferDeviceAddressCaptureReplay {
		t.Errorf("flags %#x", uint64(info.Flags))
	}
	if info.MaxAllowedBuffers != 10000 || info.Name != "daxainfo" {
		t.Errorf("device info %+v", info)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daxainfo.yaml")
	data := []byte(`
library: /opt/daxa/libdaxa.so
device:
  name: probe
  max_buffers: 32
  flags: [mesh_shader, shader_atomic64]
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Library != "/opt/daxa/libdaxa.so" || cfg.Logging.Level != "debug" {
		t.Errorf("config %+v", cfg)
	}
	info := cfg.DeviceInfo()
	if info.Flags != daxa.DeviceFlagMeshShader|daxa.DeviceFlagShaderAtomic64 {
		t.Errorf("flags %#x", uint64(info.Flags))
	}
	if info.MaxAllowedBuffers != 32 || info.MaxAllowedImages != 10000 {
		t.Errorf("limits %+v", info)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("DAXA_DEVICE_NAME", "from-env")

	cfg, err := LoadWith(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Device.Name != "from-env" {
		t.Errorf("device name %q", cfg.Device.Name)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Device.Flags = []string{"warp_drive"}
	if err := cfg.Validate(); err == nil {
		t.Error("unknown flag accepted")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown level accepted")
	}

	cfg = DefaultConfig()
	cfg.Library = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty library accepted")
	}
}
