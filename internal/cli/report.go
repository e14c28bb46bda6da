package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// reportOutput is the JSON shape of the report command.
type reportOutput struct {
	Threshold int                  `json:"low_stock_threshold"`
	ByName    []sqlite.NameSummary `json:"by_name"`
	LowStock  []types.Product      `json:"low_stock"`
}

func newReportCmd(a *app) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize stock value by name and list low-stock products",
		Long: `Report loads the inventory into an in-memory SQLite mirror and prints
the stock grouped by case-insensitive name, highest value first, followed
by every product at or below the low-stock threshold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("low-stock") {
				threshold = a.cfg.LowStockThreshold
			}
			if threshold < 0 {
				return fmt.Errorf("report: %w", types.ErrThresholdInvalid)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			m, err := sqlite.Open(sqlite.MemoryPath)
			if err != nil {
				return systemError(fmt.Errorf("report: %w", err))
			}
			defer m.Close()

			if err := m.Sync(s.List()); err != nil {
				return systemError(fmt.Errorf("report: %w", err))
			}
			byName, err := m.SummaryByName()
			if err != nil {
				return systemError(fmt.Errorf("report: %w", err))
			}
			low, err := m.LowStock(threshold)
			if err != nil {
				return systemError(fmt.Errorf("report: %w", err))
			}

			out := reportOutput{Threshold: threshold, ByName: byName, LowStock: low}
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPRODUCTS\tUNITS\tVALUE")
			for _, n := range byName {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", n.Name, n.Products, n.Units, n.Value)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(w, "\nLow stock (quantity <= %d):\n", threshold)
			return a.writeProducts(w, low, "None.")
		},
	}

	cmd.Flags().IntVar(&threshold, "low-stock", types.DefaultLowStockThreshold, "low-stock quantity threshold (default from config)")
	return cmd
}
