package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// statsOutput is the JSON shape of the stats command.
type statsOutput struct {
	types.Stats
	Names []string `json:"names"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show product count, total units, stock value and distinct names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			out := statsOutput{Stats: s.Stats(), Names: s.DistinctNames()}

			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Products:       %d\n", out.Products)
			fmt.Fprintf(w, "Total units:    %d\n", out.Units)
			fmt.Fprintf(w, "Stock value:    %.2f\n", out.Value)
			fmt.Fprintf(w, "Distinct names: %d\n", out.DistinctNames)
			if len(out.Names) > 0 {
				fmt.Fprintf(w, "Names:          %s\n", strings.Join(out.Names, ", "))
			}
			return nil
		},
	}
}
