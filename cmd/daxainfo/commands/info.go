package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxelphile/daxa-go"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device information",
	Long: `Create a device with the configured descriptor and print the
descriptor the native library reports back along with the physical
device properties.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	device, done, err := openDevice()
	if err != nil {
		return err
	}
	defer done()

	printDevice(cmd.OutOrStdout(), device.Info(), device.Properties())
	return nil
}

var deviceFlagLabels = []struct {
	flag  daxa.DeviceFlags
	label string
}{
	{daxa.DeviceFlagBufferDeviceAddressCaptureReplay, "buffer device address capture replay"},
	{daxa.DeviceFlagConservativeRasterization, "conservative rasterization"},
	{daxa.DeviceFlagMeshShader, "mesh shader"},
	{daxa.DeviceFlagShaderAtomic64, "shader atomic64"},
	{daxa.DeviceFlagImageAtomic64, "image atomic64"},
	{daxa.DeviceFlagVKMemoryModel, "vulkan memory model"},
}

func deviceFlagsString(f daxa.DeviceFlags) string {
	var s []string
	for _, l := range deviceFlagLabels {
		if f&l.flag != 0 {
			s = append(s, l.label)
		}
	}
	if len(s) == 0 {
		return fmt.Sprintf("none (%#x)", uint64(f))
	}
	return fmt.Sprintf("%s (%#x)", strings.Join(s, "|"), uint64(f))
}

func printDevice(w io.Writer, info daxa.DeviceInfo, p daxa.DeviceProperties) {
	fmt.Fprintf(w, "\n%s\n", p.Name)
	fmt.Fprintf(w, "-----------------------------\n")
	fmt.Fprintf(w, "\tType\t\t%s\n", daxa.DeviceTypeName(p.Type))
	fmt.Fprintf(w, "\tVendor\t\t%#04x\n", p.VendorID)
	fmt.Fprintf(w, "\tDevice\t\t%#04x\n", p.DeviceID)
	fmt.Fprintf(w, "\tAPI\t\t%s\n", daxa.DecodeVersion(p.APIVersion))
	fmt.Fprintf(w, "\tDriver\t\t%#x\n", p.DriverVersion)
	fmt.Fprintf(w, "\tCache UUID\t%x\n", p.PipelineCacheUUID)

	fmt.Fprintf(w, "\n\tDevice %q\n", info.Name)
	fmt.Fprintf(w, "\t\tFlags\t\t%s\n", deviceFlagsString(info.Flags))
	fmt.Fprintf(w, "\t\tMax buffers\t%d\n", info.MaxAllowedBuffers)
	fmt.Fprintf(w, "\t\tMax images\t%d\n", info.MaxAllowedImages)
	fmt.Fprintf(w, "\t\tMax samplers\t%d\n", info.MaxAllowedSamplers)
}
