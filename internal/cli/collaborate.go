package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nic1611/furnctl/internal/printer"
	"github.com/nic1611/furnctl/pkg/furniture"
)

type collaboration struct {
	Table string `json:"table" yaml:"table"`
	Chair string `json:"chair" yaml:"chair"`
	Text  string `json:"text" yaml:"text"`
}

func NewCollaborateCmd(rt *Runtime) *cobra.Command {
	var (
		tableName string
		chairName string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "collaborate --table <variant> --chair <variant>",
		Short: "Put a chair next to a table",
		Long: `Creates a table and a chair, possibly from different variants, and prints
what the table does together with the chair. Mixing variants is allowed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tableFactory, err := rt.Catalog.Lookup(tableName)
			if err != nil {
				return fmt.Errorf("table: %w", err)
			}
			chairFactory, err := rt.Catalog.Lookup(chairName)
			if err != nil {
				return fmt.Errorf("chair: %w", err)
			}
			p, err := newPrinter(cmd, rt, output)
			if err != nil {
				return err
			}

			table := tableFactory.CreateTable()
			chair := chairFactory.CreateChair()
			tv := variantOf(tableFactory, table, tableName)
			cv := variantOf(chairFactory, chair, chairName)
			if tv != cv {
				printer.WriteWarning(cmd.ErrOrStderr(), fmt.Sprintf("mixing variants: %s table with %s chair", tv, cv))
			}

			result := collaboration{Table: string(tv), Chair: string(cv), Text: table.Collaborate(chair)}
			if p.Structured() {
				return p.Print(result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&tableName, "table", "", "Variant of the table")
	cmd.Flags().StringVar(&chairName, "chair", "", "Variant of the chair")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("chair")
	addOutputFlag(cmd, &output)
	return cmd
}

// variantOf names the family a product came from. The catalog's factories
// carry the registered name; the product and the requested name are fallbacks.
func variantOf(f furniture.Factory, product any, requested string) furniture.Variant {
	if v, ok := furniture.VariantOf(f); ok {
		return v
	}
	if v, ok := furniture.VariantOf(product); ok {
		return v
	}
	return furniture.Variant(requested)
}
