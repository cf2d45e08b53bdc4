package daxa

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/gogpu/naga"
)

// CompileWGSL compiles WGSL source to SPIR-V and returns it ready to be used
// in a pipeline descriptor.
func CompileWGSL(source string, entryPoint string) (ShaderInfo, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return ShaderInfo{}, fmt.Errorf("daxa: compile wgsl: %w", err)
	}
	return shaderFromSPIRV(spirv, entryPoint)
}

// LoadSPIRV reads a SPIR-V binary from disk.
func LoadSPIRV(file string, entryPoint string) (ShaderInfo, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return ShaderInfo{}, err
	}
	return shaderFromSPIRV(data, entryPoint)
}

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

func shaderFromSPIRV(data []byte, entryPoint string) (ShaderInfo, error) {
	if len(data) < 4 || len(data)%4 != 0 {
		return ShaderInfo{}, fmt.Errorf("daxa: spir-v size %d is not a positive multiple of 4", len(data))
	}

	// SPIR-V words are little-endian
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	if words[0] != spirvMagic {
		return ShaderInfo{}, fmt.Errorf("daxa: bad spir-v magic %#x", words[0])
	}

	return ShaderInfo{ByteCode: words, EntryPoint: entryPoint}, nil
}
