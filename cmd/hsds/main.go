package main

import (
	"os"

	"github.com/hdf-forge/hsds-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
