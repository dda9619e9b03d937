// Package getcmd implements the dataset value read command.
package getcmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/config"
	"github.com/hdf-forge/hsds-go/pkg/hsds"
)

type Command struct {
	*base.Command

	flagConfig string
	flagSelect string
	flagQuery  string
}

func (c *Command) Synopsis() string {
	return "Read dataset values"
}

func (c *Command) Help() string {
	return `Usage: hsds get -config=<path> <domain> <dataset-id>

  This command reads a dataset's values and prints them as JSON.
  Use -select to read a hyperslab, e.g. -select="[0:100,2:4]".` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to config file",
	)
	f.StringVar(
		&c.flagSelect, "select", "", "Hyperslab selection expression.",
	)
	f.StringVar(
		&c.flagQuery, "query", "", "Field query expression for compound datasets.",
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
		ui.Error("domain path and dataset id arguments are required")
		return 1
	}
	domain, datasetID := flags.Args()[0], flags.Args()[1]

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

	var opts *hsds.ReadOptions
	if c.flagSelect != "" || c.flagQuery != "" {
		opts = &hsds.ReadOptions{Select: c.flagSelect, Query: c.flagQuery}
	}

	resp, err := client.Datasets.ReadValuesJSON(context.Background(), domain, datasetID, opts)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading values: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(resp.Value, "", "  ")
	if err != nil {
		ui.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	ui.Output(string(out))
	return 0
}
