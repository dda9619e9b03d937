package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hdf-forge/hsds-go/internal/cmd/base"
	"github.com/hdf-forge/hsds-go/internal/cmd/commands/domaincmd"
	"github.com/hdf-forge/hsds-go/internal/cmd/commands/getcmd"
	"github.com/hdf-forge/hsds-go/internal/cmd/commands/loadcmd"
	"github.com/hdf-forge/hsds-go/internal/cmd/commands/versioncmd"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		UI:  ui,
		Log: log,
	}

	Commands = map[string]cli.CommandFactory{
		"domain": func() (cli.Command, error) {
			return &domaincmd.Command{Command: baseCommand}, nil
		},
		"domain create": func() (cli.Command, error) {
			return &domaincmd.CreateCommand{Command: baseCommand}, nil
		},
		"domain get": func() (cli.Command, error) {
			return &domaincmd.GetCommand{Command: baseCommand}, nil
		},
		"domain delete": func() (cli.Command, error) {
			return &domaincmd.DeleteCommand{Command: baseCommand}, nil
		},
		"domain list": func() (cli.Command, error) {
			return &domaincmd.ListCommand{Command: baseCommand}, nil
		},
		"get": func() (cli.Command, error) {
			return &getcmd.Command{Command: baseCommand}, nil
		},
		"load": func() (cli.Command, error) {
			return &loadcmd.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
