package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/helmcode/skillready/pkg/analyzer"
	"github.com/helmcode/skillready/pkg/config"
	"github.com/helmcode/skillready/pkg/taxonomy"
	"github.com/helmcode/skillready/pkg/tui"
)

var (
	formTaxonomy string
	formDelay    time.Duration
)

func NewFormCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in the assessment interactively",
		Long: `Open a terminal form for your profile, then review the assessment.

Keys:
  tab / shift+tab   move between fields
  ← / →             pick a level, experience, hours or urgency
  ctrl+s            analyze
  esc               quit`,
		Args: cobra.NoArgs,
		RunE: runForm,
	}

	cmd.Flags().StringVar(&formTaxonomy, "taxonomy", cfg.TaxonomyPath, "Custom role taxonomy file (YAML or JSON)")
	cmd.Flags().DurationVar(&formDelay, "delay", cfg.AnalyzeDelay, "Pause before showing results")

	return cmd
}

func runForm(cmd *cobra.Command, args []string) error {
	store, err := taxonomy.LoadFile(formTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tui.Start(analyzer.New(store), formDelay)
}
