package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/config"
	"github.com/nic1611/furnctl/internal/printer"
)

// addOutputFlag registers -o/--output. The flag falls back to FURNCTL_OUTPUT
// when it is not set on the command line.
func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "table", "Output format (table, wide, json, yaml)")
}

func newPrinter(cmd *cobra.Command, rt *Runtime, output string) (*printer.Printer, error) {
	if !cmd.Flags().Changed("output") {
		output = rt.Config.Output
	}
	if !slices.Contains(config.Outputs, output) {
		return nil, fmt.Errorf("%w %q, must be one of %v", config.ErrInvalidOutput, output, config.Outputs)
	}
	p := printer.New(printer.OutputType(output))
	p.SetOutput(cmd.OutOrStdout())
	return p, nil
}

// boolFlagOrConfig returns the flag value when it was set explicitly and the
// configured default otherwise.
func boolFlagOrConfig(cmd *cobra.Command, name string, flag, configured bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}
