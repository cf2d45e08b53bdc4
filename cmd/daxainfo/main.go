package main

import (
	"os"

	"github.com/voxelphile/daxa-go/cmd/daxainfo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
