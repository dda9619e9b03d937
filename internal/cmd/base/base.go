// Package base carries the pieces shared by all CLI commands.
package base

import (
	"flag"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every CLI command.
type Command struct {
	// UI is the command line UI.
	UI cli.Ui

	// Log is the logger to use.
	Log hclog.Logger
}

// FlagSet wraps flag.FlagSet so command help can include flag usage.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a new wrapped flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the rendered flag usage, for appending to a command's
// help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	f.SetOutput(&b)
	f.PrintDefaults()
	out := b.String()
	if out == "" {
		return ""
	}
	return "\n\nOptions:\n\n" + out
}
