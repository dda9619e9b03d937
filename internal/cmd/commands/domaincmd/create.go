package domaincmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/config"
)

type CreateCommand struct {
	*base.Command

	flagConfig string
	flagFolder bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a domain or folder"
}

func (c *CreateCommand) Help() string {
	return `Usage: hsds domain create -config=<path> <domain>

  This command creates a new domain, or a folder with -folder.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to config file",
	)
	f.BoolVar(
		&c.flagFolder, "folder", false, "Create a folder instead of a domain.",
	)

	return f
}

func (c *CreateCommand) Run(args []string) int {
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

	ctx := context.Background()
	if c.flagFolder {
		if _, err := client.Domains.CreateFolder(ctx, domain); err != nil {
			ui.Error(fmt.Sprintf("error creating folder: %v", err))
			return 1
		}
		ui.Info(fmt.Sprintf("created folder %s", domain))
		return 0
	}

	dom, err := client.Domains.Create(ctx, domain, nil)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating domain: %v", err))
		return 1
	}
	ui.Info(fmt.Sprintf("created domain %s (root %s)", domain, dom.Root))
	return 0
}
