// Package domaincmd implements the domain subcommands.
package domaincmd

import (
	"github.com/mitchellh/cli"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage HSDS domains"
}

func (c *Command) Help() string {
	return `Usage: hsds domain <subcommand> [options] [args]

  This command groups subcommands for working with HSDS domains.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
