package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/sqlite"
)

func newExportCmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export --db <file>",
		Short: "Write the inventory to a SQLite database",
		Long: `Export copies every product into the products table of a new SQLite
database for use with external SQL tools. An existing file at the
destination is replaced only once the new database is complete. The JSON
snapshot remains the source of truth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.New("export: --db is required")
			}
			abs, err := filepath.Abs(dbPath)
			if err != nil {
				return systemError(fmt.Errorf("resolve db path: %w", err))
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			products := s.List()

			if err := sqlite.Export(abs, products); err != nil {
				return systemError(fmt.Errorf("export: %w", err))
			}

			a.logger.Info("inventory exported", "db", abs, "products", len(products))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d products to %s\n", len(products), abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file to write")
	return cmd
}
