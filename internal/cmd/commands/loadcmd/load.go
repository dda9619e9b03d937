// Package loadcmd implements the bulk HDF5 upload command.
package loadcmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/config"
	"github.com/hdf-forge/hsds-go/pkg/h5load"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Upload a local HDF5 file into a domain"
}

func (c *Command) Help() string {
	return `Usage: hsds load -config=<path> <file.h5> <domain>

  This command creates the domain and mirrors the file's groups,
  datasets, and attributes into it. Items that cannot be copied are
  skipped with a warning.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("load", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to config file",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagConfig == "" {
		ui.Error("config flag is required")
		return 1
	}
	if len(flags.Args()) != 2 {
		ui.Error("file path and domain path arguments are required")
		return 1
	}
	filePath, domain := flags.Args()[0], flags.Args()[1]

	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}
	client, err := cfg.NewClient(c.Log)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	loader := &h5load.Loader{Client: client, Logger: c.Log}
	stats, err := loader.Load(context.Background(), filePath, domain)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading file: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf(
		"loaded %s into %s: %d groups, %d datasets, %d attributes, %d chunks written",
		filePath, domain, stats.Groups, stats.Datasets, stats.Attributes, stats.ChunksWritten,
	))
	if stats.Warnings != nil {
		ui.Warn(fmt.Sprintf("completed with warnings: %v", stats.Warnings))
	}
	return 0
}
