package commands

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gu "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/voxelphile/daxa-go"
)

var (
	compileOutput string
	compileEntry  string
)

var compileCmd = &cobra.Command{
	Use:   "compile <shader.wgsl>",
	Short: "Compile a WGSL shader to SPIR-V",
	Long: `Compile a WGSL shader to the SPIR-V binary pipelines are created from.
The output defaults to the input path with a .spv extension. No device
is needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file")
	compileCmd.Flags().StringVar(&compileEntry, "entry", "main", "entry point")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	shader, err := daxa.CompileWGSL(string(src), compileEntry)
	if err != nil {
		return err
	}

	out := compileOutput
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".spv"
	}

	data := make([]byte, 4*len(shader.ByteCode))
	for i, w := range shader.ByteCode {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", args[0], out, gu.HumanSize(float64(len(data))))
	return nil
}
