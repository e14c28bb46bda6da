package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newUpdateCmd(a *app) *cobra.Command {
	var (
		name     string
		quantity string
		price    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a product's name, quantity or price",
		Long: `Update changes the given fields of an existing product. Fields not
passed are left as they are. Either every field is applied or none is.

Example:
  stockroom update P001 --quantity 80
  stockroom update P002 --price 3.10 --name "Cuaderno A4 rayado"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var u types.ProductUpdate

			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("quantity") {
				q, err := parseQuantity(quantity)
				if err != nil {
					return err
				}
				u.Quantity = &q
			}
			if cmd.Flags().Changed("price") {
				p, err := parsePrice(price)
				if err != nil {
					return err
				}
				u.Price = &p
			}
			if u.IsEmpty() {
				return errors.New("nothing to update: pass --name, --quantity or --price")
			}

			s, err := a.mutate(func(s *store.Store) error { return s.Update(id, u) })
			if err != nil {
				return fmt.Errorf("update %s: %w", id, err)
			}
			p, _ := s.Get(id)
			return a.writeProduct(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new product name")
	cmd.Flags().StringVar(&quantity, "quantity", "", "new quantity (integer, not negative)")
	cmd.Flags().StringVar(&price, "price", "", "new unit price (not negative)")
	return cmd
}
