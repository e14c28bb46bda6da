// Package cli implements the stockroom command-line interface. Each command
// loads the snapshot, runs one inventory operation and, for mutations,
// saves the snapshot back.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and the state resolved before a command runs.
type app struct {
	configDirFlag string
	dataFileFlag  string
	logLevelFlag  string
	jsonMode      bool

	configDir string
	dataFile  string
	cfg       types.Config
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "stockroom" command with global flags
// and all subcommands registered. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "stockroom",
		Short: "Stockroom manages a product inventory",
		Long: `Stockroom keeps a product inventory in a JSON snapshot file.
Products are keyed by a caller-chosen ID and carry a name, a quantity
and a unit price.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configDirFlag, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.dataFileFlag, "data-file", "", "inventory snapshot file (default: ./inventory.json)")
	root.PersistentFlags().StringVar(&a.logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newUpdateCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newRangeCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newStatsCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newReportCmd(a))

	return root
}

// Execute runs the root command and exits with the code matching the error.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "stockroom:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup resolves the config directory, reads config.yaml, builds the logger
// and resolves the snapshot path.
func (a *app) setup(logOut io.Writer) error {
	configDir, err := paths.ResolveConfigDir(a.configDirFlag)
	if err != nil {
		return systemError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return systemError(err)
	}
	if a.logLevelFlag != "" {
		cfg.LogLevel = a.logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		return systemError(fmt.Errorf("invalid config: %w", err))
	}

	dataFile, err := paths.ResolveDataFile(a.dataFileFlag, cfg.DataFile)
	if err != nil {
		return systemError(fmt.Errorf("resolve data file: %w", err))
	}

	a.configDir = configDir
	a.dataFile = dataFile
	a.cfg = cfg
	a.logger = newLogger(cfg, logOut)
	a.logger.Debug("configuration resolved", "config_dir", configDir, "data_file", dataFile)
	return nil
}

// sysError marks failures outside the caller's control: configuration,
// file system and database errors.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// exitCode maps an error to the process exit code. Persistence failures
// are checked first because a corrupt record also wraps ErrValidation.
func exitCode(err error) int {
	var se *sysError
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrCorruptData), errors.Is(err, types.ErrIO), errors.As(err, &se):
		return exitSysError
	default:
		return exitUserError
	}
}
