package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"label-sync/core/config"
	"label-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyLimit int
	historyJSON  bool
	historyAll   bool
)

// historyCmd prints recent journaled runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent label sync runs",
	Long:  `Reads the run journal and prints the latest runs, newest first. Requires DATABASE_ENABLED=true.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		store, db, err := openJournal(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to open run journal: %w", err)
		}
		if store == nil {
			return fmt.Errorf("run journal is disabled, set DATABASE_ENABLED=true")
		}
		defer closeDB(db)

		repo := cfg.GitHub.Repository
		if historyAll {
			repo = ""
		}

		runs, err := store.Recent(ctx, repo, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to read runs: %w", err)
		}

		if historyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		for _, run := range runs {
			l.Info("Run",
				zap.String("id", run.ID),
				zap.String("repository", run.Repository),
				zap.String("status", run.Status),
				zap.Time("started_at", run.StartedAt),
				zap.Bool("delete_enabled", run.DeleteEnabled),
				zap.Int("created", run.Created),
				zap.Int("updated", run.Updated),
				zap.Int("deleted", run.Deleted),
				zap.Int("skipped", run.Skipped),
				zap.Int("failed", run.Failed),
				zap.String("error", run.Error),
			)
		}
		if len(runs) == 0 {
			l.Info("No runs recorded yet")
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print runs as JSON")
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "Show runs of every repository")

	RootCmd.AddCommand(historyCmd)
}
