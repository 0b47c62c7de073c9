package cmd

import (
	"fmt"
	"os"

	"label-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "label-sync",
	Short: "GitHub Label Sync",
	Long: `Label Sync keeps the labels of a GitHub repository in line with a manifest.
It creates missing labels, updates changed ones and, when enabled, deletes the rest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Failures are reported through the standard logger in console format.
		// The "debug" level selects the development config for ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
