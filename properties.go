package daxa

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// UUIDSize is the length of a pipeline cache UUID.
const UUIDSize = vk.UuidSize

// DeviceProperties are the identifying properties of the physical device
// behind a Device.
type DeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	Type              DeviceType
	Name              string
	PipelineCacheUUID [UUIDSize]byte
}

// Version is a decoded Vulkan version number.
type Version struct {
	Major int
	Minor int
	Patch int
}

// DecodeVersion splits a packed Vulkan version.
func DecodeVersion(v uint32) Version {
	return Version{
		Major: int(v >> 22),
		Minor: int((v >> 12) & 0x3ff),
		Patch: int(v & 0xfff),
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// DeviceTypeName returns a readable name for a device type.
func DeviceTypeName(t DeviceType) string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated gpu"
	case DeviceTypeDiscreteGPU:
		return "discrete gpu"
	case DeviceTypeVirtualGPU:
		return "virtual gpu"
	case DeviceTypeCPU:
		return "cpu"
	default:
		return "other"
	}
}

func (p DeviceProperties) String() string {
	return fmt.Sprintf("{ Name: %s Type: %s Vendor: %#04x Device: %#04x API: %s }",
		p.Name, DeviceTypeName(p.Type), p.VendorID, p.DeviceID, DecodeVersion(p.APIVersion))
}
