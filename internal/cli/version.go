package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Displays the version of furnctl.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "furnctl version %s\n", version.Version)
			fmt.Fprintf(out, "Git commit: %s\n", version.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", version.BuildDate)
			return nil
		},
	}
}
