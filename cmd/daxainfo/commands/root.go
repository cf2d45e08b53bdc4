package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxelphile/daxa-go"
	"github.com/voxelphile/daxa-go/internal/config"
	"github.com/voxelphile/daxa-go/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "daxainfo",
	Short: "Inspect a Daxa device",
	Long: `daxainfo loads the native Daxa library, creates a device with the
configured limits and reports what it finds.

Settings come from flags, DAXA_ environment variables and an optional
daxainfo.yaml in $HOME/.daxa or the working directory.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.daxa/daxainfo.yaml)")
	rootCmd.PersistentFlags().String("library", daxa.DefaultLibraryName(), "path of the native daxa library")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("device-name", "daxainfo", "debug name of the created device")

	v.BindPFlag("library", rootCmd.PersistentFlags().Lookup("library"))
	v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("device.name", rootCmd.PersistentFlags().Lookup("device-name"))
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.LoadWith(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	if err := logging.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	daxa.SetLogger(logging.Slog())

	if used := v.ConfigFileUsed(); used != "" {
		logging.Debugf("using config file %s", used)
	}
	return nil
}

// openDevice loads the configured library and creates an instance and a
// device from it. The returned func destroys both.
func openDevice() (*daxa.Device, func(), error) {
	lib, err := daxa.Load(cfg.Library)
	if err != nil {
		return nil, nil, err
	}

	instance, err := daxa.NewInstance(lib, daxa.DefaultInstanceInfo())
	if err != nil {
		return nil, nil, fmt.Errorf("create instance: %w", err)
	}

	device, err := instance.CreateDevice(cfg.DeviceInfo())
	if err != nil {
		instance.Destroy()
		return nil, nil, fmt.Errorf("create device: %w", err)
	}

	return device, func() {
		if err := device.WaitIdle(); err != nil {
			logging.Warnf("wait idle: %v", err)
		}
		if err := device.CollectGarbage(); err != nil {
			logging.Warnf("collect garbage: %v", err)
		}
		device.Destroy()
		instance.Destroy()
	}, nil
}
