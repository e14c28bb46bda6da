package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/store"
)

func newInitCmd(a *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file and an empty inventory",
		Long: `Init writes a default config.yaml to the config directory and an empty
snapshot to the data file. Existing files are left untouched. With
--sample, the sample products P001 to P003 are added unless their IDs
are already in use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureConfigDir(a.configDir); err != nil {
				return systemError(fmt.Errorf("init: %w", err))
			}
			if _, err := ensureDefaultConfigFile(a.configDir); err != nil {
				return systemError(fmt.Errorf("init: %w", err))
			}

			_, err := os.Stat(a.dataFile)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				s := store.New(store.WithLogger(a.logger))
				if err := s.Save(a.dataFile); err != nil {
					return fmt.Errorf("init: %w", err)
				}
			case err != nil:
				return systemError(fmt.Errorf("init: %w", err))
			}

			added := 0
			if sample {
				if _, err := a.mutate(func(s *store.Store) error {
					n, err := s.SeedSamples()
					added = n
					return err
				}); err != nil {
					return fmt.Errorf("init: %w", err)
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Stockroom initialized")
			fmt.Fprintln(w, "  config:", filepath.Join(a.configDir, configFileExt))
			fmt.Fprintln(w, "  data:  ", a.dataFile)
			if sample {
				fmt.Fprintf(w, "  sample products added: %d\n", added)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "add the sample products")
	return cmd
}
