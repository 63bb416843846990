package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zaibi326/crm-success-hub-sub000/internal/app"
	"github.com/zaibi326/crm-success-hub-sub000/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive lead browser
var rootCmd = &cobra.Command{
	Use:   "crmview",
	Short: "Browse, search, filter and save views over CRM leads",
	Long: `crmview loads tax-delinquent property leads from a JSON file or a
PostgreSQL table and lets you search, filter and sort them interactively.
Filter sets can be saved as named views and re-applied later.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// The interactive UI owns the terminal, so it logs to a file
		interactive := cmd == cmd.Root()
		logger, err = buildLogger(cfg, interactive)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/crmview/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(exportCmd, viewsCmd, dbCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildLogger(cfg *config.Config, toFile bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if toFile {
		dir, err := config.GetConfigPath()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, "crmview.log")
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}

	return zc.Build()
}

func runInteractive(cmd *cobra.Command) error {
	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	loader, closeLoader, err := newLoader(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeLoader()

	engine, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	model := app.New(cfg, app.Deps{
		Engine: engine,
		Store:  store,
		Loader: loader,
		Logger: logger,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
