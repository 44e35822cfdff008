package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/cli"
	"github.com/nic1611/furnctl/internal/printer"
	"github.com/nic1611/furnctl/pkg/furniture"
)

// CLIOptions configures the CLI behavior
type CLIOptions struct {
	// Factories adds furniture families next to the built-in ones, keyed by
	// variant name. A name matching a built-in variant replaces it.
	Factories map[string]furniture.Factory
}

var cliOptions CLIOptions

// Configure applies options to the root command
func Configure(opts CLIOptions) {
	cliOptions = opts
}

func Execute() {
	if err := execute(Root(), os.Stderr); err != nil {
		os.Exit(1)
	}
}

func execute(root *cobra.Command, stderr io.Writer) error {
	err := root.Execute()
	if err != nil {
		printer.WriteError(stderr, err.Error())
	}
	return err
}

// Root returns a new furnctl command tree built from the configured options
func Root() *cobra.Command {
	return cli.NewRootCmd(cliOptions.Factories)
}
