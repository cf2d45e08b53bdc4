package commands

import (
	"fmt"
	"io"

	gu "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/voxelphile/daxa-go"
)

var (
	probeSize  string
	probeCount int
	probeBlock bool
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Create and destroy test buffers",
	Long: `Create buffers of the given size, report their memory requirements,
device addresses and validity, then destroy them and collect garbage.

With --block the buffers are placed inside a single memory block sized
to hold all of them.`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeSize, "size", "64MiB", "size of each buffer")
	probeCmd.Flags().IntVar(&probeCount, "count", 4, "number of buffers")
	probeCmd.Flags().BoolVar(&probeBlock, "block", false, "place buffers in one memory block")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	size, err := gu.RAMInBytes(probeSize)
	if err != nil {
		return fmt.Errorf("bad --size: %w", err)
	}
	if size <= 0 || probeCount <= 0 {
		return fmt.Errorf("size and count must be positive")
	}

	device, done, err := openDevice()
	if err != nil {
		return err
	}
	defer done()

	return probe(cmd.OutOrStdout(), device, uint64(size), probeCount, probeBlock)
}

func probe(w io.Writer, device *daxa.Device, size uint64, count int, useBlock bool) error {
	info := daxa.BufferInfo{Size: size, Name: "probe"}
	req := device.BufferMemoryRequirements(info)
	fmt.Fprintf(w, "Buffer of %s needs %s aligned to %d (memory types %#x)\n",
		gu.BytesSize(float64(size)), gu.BytesSize(float64(req.Size)), req.Alignment, req.MemoryTypeBits)

	create := device.CreateBuffer
	if useBlock {
		blockSize := uint64(count) * alignUp(req.Size, req.Alignment)
		block, err := device.CreateMemory(daxa.MemoryBlockInfo{
			Requirements: daxa.MemoryRequirements{
				Size:           blockSize,
				Alignment:      req.Alignment,
				MemoryTypeBits: req.MemoryTypeBits,
			},
		})
		if err != nil {
			return fmt.Errorf("create memory block of %s: %w", gu.BytesSize(float64(blockSize)), err)
		}
		defer block.Destroy()
		fmt.Fprintf(w, "Memory block of %s\n", gu.BytesSize(float64(blockSize)))
		create = block.CreateBuffer
	}

	var buffers []*daxa.Buffer
	for i := 0; i < count; i++ {
		b, err := create(info)
		if err != nil {
			fmt.Fprintf(w, "\tbuffer %d: %v\n", i, err)
			break
		}
		buffers = append(buffers, b)

		addr, err := b.DeviceAddress()
		if err != nil {
			fmt.Fprintf(w, "\tbuffer %d: id %d/%d valid=%v address error %v\n", i, b.ID.Index(), b.ID.Version(), b.IsValid(), err)
			continue
		}
		fmt.Fprintf(w, "\tbuffer %d: id %d/%d valid=%v address %#x\n", i, b.ID.Index(), b.ID.Version(), b.IsValid(), uint64(addr))
	}

	for _, b := range buffers {
		if err := b.Destroy(); err != nil {
			return fmt.Errorf("destroy buffer %d: %w", b.ID.Index(), err)
		}
	}
	if err := device.CollectGarbage(); err != nil {
		return err
	}

	alive := 0
	for _, b := range buffers {
		if b.IsValid() {
			alive++
		}
	}
	fmt.Fprintf(w, "Created %d of %d buffers, %d still valid after collection\n", len(buffers), count, alive)
	return nil
}

func alignUp(v, align uint64) uint64 {
	if align <= 1 {
		return v
	}
	return (v + align - 1) / align * align
}
