package domaincmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/config"
)

type ListCommand struct {
	*base.Command

	flagConfig string
}

func (c *ListCommand) Synopsis() string {
	return "List domains"
}

func (c *ListCommand) Help() string {
	return `Usage: hsds domain list -config=<path>

  This command lists the domains visible to the caller.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to config file",
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
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

	list, err := client.Domains.List(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error listing domains: %v", err))
		return 1
	}

	for _, d := range list.Domains {
		ui.Output(fmt.Sprintf("%s\t%s", d.Name, d.Class))
	}
	return 0
}
