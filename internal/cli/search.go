package cli

import (
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find products whose name contains a term",
		Long: `Search lists products whose name contains the term, ignoring case.

Example:
  stockroom search rojo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			return a.writeProducts(cmd.OutOrStdout(), s.SearchByName(args[0]), "No matching products.")
		},
	}
}
