package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/voxelphile/daxa-go"
)

// Config is the daxainfo configuration.
type Config struct {
	Library string        `mapstructure:"library"`
	Device  DeviceConfig  `mapstructure:"device"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type DeviceConfig struct {
	Name        string   `mapstructure:"name"`
	MaxBuffers  uint32   `mapstructure:"max_buffers"`
	MaxImages   uint32   `mapstructure:"max_images"`
	MaxSamplers uint32   `mapstructure:"max_samplers"`
	Flags       []string `mapstructure:"flags"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var deviceFlagNames = map[string]daxa.DeviceFlags{
	"buffer_device_address_capture_replay": daxa.DeviceFlagBufferDeviceAddressCaptureReplay,
	"conservative_rasterization":           daxa.DeviceFlagConservativeRasterization,
	"mesh_shader":                          daxa.DeviceFlagMeshShader,
	"shader_atomic64":                      daxa.DeviceFlagShaderAtomic64,
	"image_atomic64":                       daxa.DeviceFlagImageAtomic64,
	"vk_memory_model":                      daxa.DeviceFlagVKMemoryModel,
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	d := daxa.DefaultDeviceInfo()
	return &Config{
		Library: daxa.DefaultLibraryName(),
		Device: DeviceConfig{
			Name:        "daxainfo",
			MaxBuffers:  d.MaxAllowedBuffers,
			MaxImages:   d.MaxAllowedImages,
			MaxSamplers: d.MaxAllowedSamplers,
			Flags:       []string{"buffer_device_address_capture_replay"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from file, environment and defaults. A missing
// config file is not an error.
func Load(cfgFile string) (*Config, error) {
	return LoadWith(viper.New(), cfgFile)
}

// LoadWith is Load on a caller supplied viper instance, so flags bound to it
// take part.
func LoadWith(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".daxa"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("daxainfo")
	}

	v.SetEnvPrefix("DAXA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Library == "" {
		return errors.New("library must be set")
	}

	if _, err := c.Device.DeviceFlags(); err != nil {
		return err
	}

	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

// DeviceFlags converts the configured flag names.
func (d DeviceConfig) DeviceFlags() (daxa.DeviceFlags, error) {
	var flags daxa.DeviceFlags
	for _, name := range d.Flags {
		f, ok := deviceFlagNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown device flag %q", name)
		}
		flags |= f
	}
	return flags, nil
}

// DeviceInfo builds the descriptor daxainfo creates its device with.
func (c *Config) DeviceInfo() daxa.DeviceInfo {
	flags, _ := c.Device.DeviceFlags()
	return daxa.DeviceInfo{
		Flags:              flags,
		MaxAllowedImages:   c.Device.MaxImages,
		MaxAllowedBuffers:  c.Device.MaxBuffers,
		MaxAllowedSamplers: c.Device.MaxSamplers,
		Name:               c.Device.Name,
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("library", cfg.Library)

	v.SetDefault("device.name", cfg.Device.Name)
	v.SetDefault("device.max_buffers", cfg.Device.MaxBuffers)
	v.SetDefault("device.max_images", cfg.Device.MaxImages)
	v.SetDefault("device.max_samplers", cfg.Device.MaxSamplers)
	v.SetDefault("device.flags", cfg.Device.Flags)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
}
