package cli

import (
	"github.com/spf13/cobra"
)

func newRangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range <min> <max>",
		Short: "List products priced between min and max, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minPrice, err := parsePrice(args[0])
			if err != nil {
				return err
			}
			maxPrice, err := parsePrice(args[1])
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			products, err := s.ByPriceRange(minPrice, maxPrice)
			if err != nil {
				return err
			}
			return a.writeProducts(cmd.OutOrStdout(), products, "No products in that price range.")
		},
	}
}
