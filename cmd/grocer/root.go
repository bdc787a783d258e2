// Root command for the grocer CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pantry-tools/grocer/pkg/grocer"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagSheetURL  string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configBackend  string
	configDataDir  string
	configSheetURL string
	configCacheTTL int
)

// logger is the process-wide structured logger, built per invocation.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "grocer",
	Short:   "Grocer manages a grocery list backed by a remote spreadsheet",
	Version: grocer.Version,
	Long: `Grocer is a single-user grocery-list manager. Items live in an
in-memory table for the session and every change is written back in full to
the configured store: a remote spreadsheet endpoint or a local SQLite file.`,
	// main prints the error with the mapped exit code.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		// Keep command output clean by default; --verbose opens the
		// firehose.
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if flagVerbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSheetURL = cfg.GetString(cfgKeySheetURL)
		configCacheTTL = cfg.GetInt(cfgKeyCacheTTL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the sqlite backend (default: $(CWD)/.grocer-db)")
	rootCmd.PersistentFlags().StringVar(&flagSheetURL, "sheet-url", "", "remote sheet URL for the sheets backend")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uncheckCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(exportCmd)
}
