package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/client"
	"github.com/nic1611/furnctl/internal/models"
	"github.com/nic1611/furnctl/internal/printer"
)

type demoReport struct {
	Lines []models.DemoLine     `json:"lines" yaml:"lines"`
	Stats []models.CreationStat `json:"stats,omitempty" yaml:"stats,omitempty"`
}

func NewDemoCmd(rt *Runtime) *cobra.Command {
	var (
		narrate bool
		stats   bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "demo [variant...]",
		Short: "Run the client code against one or more factories",
		Long: `Runs the same client code against each factory in turn. For every factory
the client creates a chair and a table, prints what the table does and then
what it does together with the chair.

Without arguments the variants from FURNCTL_VARIANTS are used (modern, victorian).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = rt.Config.Variants
			}
			factories, err := rt.Catalog.Factories(names...)
			if err != nil {
				return err
			}
			log.Printf("running client against %d factories", len(factories))

			p, err := newPrinter(cmd, rt, output)
			if err != nil {
				return err
			}

			if p.Structured() {
				var report demoReport
				for _, f := range factories {
					report.Lines = append(report.Lines, client.Lines(f)...)
				}
				if stats {
					if report.Stats, err = rt.Metrics.Snapshot(); err != nil {
						return err
					}
				}
				return p.Print(report)
			}

			var opts []client.Option
			if boolFlagOrConfig(cmd, "narrate", narrate, rt.Config.Narrate) {
				opts = append(opts, client.WithNarration())
			}
			client.New(cmd.OutOrStdout(), opts...).Demo(factories...)

			if stats {
				return printStats(cmd, rt, p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&narrate, "narrate", false, "Print a header before each factory")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print how many products each factory created")
	addOutputFlag(cmd, &output)
	return cmd
}

func printStats(cmd *cobra.Command, rt *Runtime, p *printer.Printer) error {
	snapshot, err := rt.Metrics.Snapshot()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	printer.WriteInfo(cmd.OutOrStdout(), "Products created:")
	t := p.Table()
	t.SetHeaders("Variant", "Product", "Created")
	for _, s := range snapshot {
		t.AddRow(s.Variant, s.Product, s.Count)
	}
	if err := t.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
