package domaincmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/config"
)

type DeleteCommand struct {
	*base.Command

	flagConfig string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a domain"
}

func (c *DeleteCommand) Help() string {
	return `Usage: hsds domain delete -config=<path> <domain>

  This command deletes a domain and everything in it.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to config file",
	)

	return f
}

func (c *DeleteCommand) Run(args []string) int {
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
	domain := flags.Args()[0]

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

	if err := client.Domains.Delete(context.Background(), domain); err != nil {
		ui.Error(fmt.Sprintf("error deleting domain: %v", err))
		return 1
	}
	ui.Info(fmt.Sprintf("deleted domain %s", domain))
	return 0
}
