package cmd

import (
	"fmt"

	"label-sync/core/config"
	"label-sync/core/logger"
	"label-sync/core/manifest"
	"label-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	deleteLabels bool
	labelsPath   string
	repository   string
)

// syncCmd reconciles the repository labels once and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync repository labels with the manifest",
	Long: `Reads the label manifest, compares it with the labels of the repository and
applies the difference. Labels missing from the manifest are only deleted with --delete.

Examples:
  # Create and update labels from .github/labels.json
  label-sync sync

  # Also delete labels that are not in the manifest
  label-sync sync --delete

  # Use a YAML manifest for another repository
  label-sync sync --labels labels.yml --repo octo/repo`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&deleteLabels, "delete", false, "Delete labels that are not in the manifest")
	syncCmd.Flags().StringVar(&labelsPath, "labels", "", "Path to the label manifest file (overrides LABELS_PATH, file source only)")
	syncCmd.Flags().StringVar(&repository, "repo", "", "Target repository as owner/repo (overrides GITHUB_REPOSITORY)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	overrides := syncOverrides{
		deleteSet:  cmd.Flags().Changed("delete"),
		delete:     deleteLabels,
		labelsPath: labelsPath,
		repository: repository,
	}
	if err := overrides.apply(cfg); err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc, cleanup, err := newLabelService(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := svc.Sync(ctx)
	if report != nil {
		printOutcomes(l, report)
	}
	return err
}

// syncOverrides holds the command line values that take precedence over config.
type syncOverrides struct {
	deleteSet  bool
	delete     bool
	labelsPath string
	repository string
}

// apply writes the overrides into cfg. --labels names a file, so it is rejected
// when the manifest is read from object storage.
func (o syncOverrides) apply(cfg *config.Config) error {
	if o.labelsPath != "" && cfg.Labels.Source == manifest.SourceStorage {
		return fmt.Errorf("--labels only applies to the %q labels source, set LABELS_OBJECT to choose the storage object", manifest.SourceFile)
	}

	if o.deleteSet {
		cfg.Input.Delete = o.delete
	}
	if o.labelsPath != "" {
		cfg.Labels.Path = o.labelsPath
	}
	if o.repository != "" {
		cfg.GitHub.Repository = o.repository
	}
	return nil
}

// printOutcomes logs the per-operation outcomes of a run.
func printOutcomes(l *zap.Logger, report *reconcile.Report) {
	for _, o := range report.Outcomes {
		fields := []zap.Field{
			zap.String("operation", string(o.Operation.Kind)),
			zap.String("label", o.Operation.TargetName()),
			zap.String("status", string(o.Status)),
		}
		if o.Error != "" {
			fields = append(fields, zap.String("error", o.Error))
		}
		l.Info("Outcome", fields...)
	}

	s := report.Summary
	l.Info("Sync report",
		zap.Int("planned", s.Planned),
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("deleted", s.Deleted),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
	)
}
