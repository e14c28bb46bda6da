package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var autoID bool

	cmd := &cobra.Command{
		Use:   "add <id> <name> <quantity> <price>",
		Short: "Add a product",
		Long: `Add stores a new product. The ID must not be in use; an existing
product is never overwritten. With --auto-id the ID argument is omitted
and a UUID v7 is generated.

Example:
  stockroom add P001 "Lapicero azul" 100 0.50
  stockroom add --auto-id "Cuaderno A4" 50 2.75`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if autoID && len(args) != 3 {
				return fmt.Errorf("--auto-id takes <name> <quantity> <price>, got %d args", len(args))
			}
			if !autoID && len(args) != 4 {
				return fmt.Errorf("accepts <id> <name> <quantity> <price>, got %d args", len(args))
			}

			var id string
			if autoID {
				generated, err := uuid.NewV7()
				if err != nil {
					return systemError(fmt.Errorf("generating ID: %w", err))
				}
				id = generated.String()
			} else {
				id, args = args[0], args[1:]
			}

			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			price, err := parsePrice(args[2])
			if err != nil {
				return err
			}
			p, err := types.NewProduct(id, args[0], quantity, price)
			if err != nil {
				return err
			}

			if _, err := a.mutate(func(s *store.Store) error { return s.Add(p) }); err != nil {
				return fmt.Errorf("add %s: %w", p.ID(), err)
			}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added product %s\n", p.ID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoID, "auto-id", false, "generate a UUID v7 product ID")
	return cmd
}
