package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/catalog"
	"github.com/nic1611/furnctl/internal/models"
	"github.com/nic1611/furnctl/internal/printer"
	"github.com/nic1611/furnctl/pkg/furniture"
)

func NewListCmd(rt *Runtime) *cobra.Command {
	var (
		output    string
		noHeaders bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available furniture variants",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, rt, output)
			if err != nil {
				return err
			}

			details := make([]models.VariantDetail, 0, len(rt.Catalog.Variants()))
			for _, v := range rt.Catalog.Variants() {
				d, err := rt.Catalog.Describe(string(v))
				if err != nil {
					return err
				}
				details = append(details, d)
			}

			if p.Structured() {
				return p.Print(details)
			}

			var opts []printer.Option
			if noHeaders {
				opts = append(opts, printer.WithNoHeaders())
			}
			t := p.Table(opts...)
			t.SetHeaders("Variant", "Name", "Factory", "Chair", "Table")
			for _, d := range details {
				t.AddRow(d.Variant, catalog.DisplayName(furniture.Variant(d.Variant)), d.Factory, d.Chair.ID, d.Table.ID)
			}
			if err := t.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Don't print column headers")
	addOutputFlag(cmd, &output)
	return cmd
}
