package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewShowCmd(rt *Runtime) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <variant>",
		Short: "Show the products of one variant",
		Long:  `Shows the factory, both products and their collaboration for a furniture variant.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, rt, output)
			if err != nil {
				return err
			}

			d, err := rt.Catalog.Describe(args[0])
			if err != nil {
				return err
			}

			if p.Structured() {
				return p.Print(d)
			}

			t := p.Table()
			t.SetHeaders("Property", "Value")
			t.AddRow("Variant", d.Variant)
			t.AddRow("Factory", d.Factory)
			t.AddRow("Chair", d.Chair.ID)
			t.AddRow("Chair Description", d.Chair.Description)
			t.AddRow("Table", d.Table.ID)
			t.AddRow("Table Description", d.Table.Description)
			t.AddRow("Collaboration", d.Collaboration)
			if err := t.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
