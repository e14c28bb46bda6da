package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			p, ok := s.Get(args[0])
			if !ok {
				return fmt.Errorf("get %s: %w", args[0], types.ErrNotFound)
			}
			return a.writeProduct(cmd.OutOrStdout(), p)
		},
	}
}
