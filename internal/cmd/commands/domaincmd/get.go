package domaincmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/config"
)

type GetCommand struct {
	*base.Command

	flagConfig string
}

func (c *GetCommand) Synopsis() string {
	return "Show information about a domain"
}

func (c *GetCommand) Help() string {
	return `Usage: hsds domain get -config=<path> <domain>

  This command prints a domain's metadata as JSON.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to config file",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
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
	if len(flags.Args()) != 1 {
		ui.Error("exactly one domain path argument is required")
		return 1
	}

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

	dom, err := client.Domains.Get(context.Background(), flags.Args()[0])
	if err != nil {
		ui.Error(fmt.Sprintf("error getting domain: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(dom, "", "  ")
	if err != nil {
		ui.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	ui.Output(string(out))
	return 0
}
