package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/skillready/pkg/analyzer"
	"github.com/helmcode/skillready/pkg/config"
	"github.com/helmcode/skillready/pkg/formatter"
	"github.com/helmcode/skillready/pkg/model"
	"github.com/helmcode/skillready/pkg/parser"
	"github.com/helmcode/skillready/pkg/taxonomy"
)

var (
	assessRole         string
	assessIndustry     string
	assessSkills       string
	assessExperience   string
	assessLevel        string
	assessHours        string
	assessUrgency      string
	assessFile         string
	assessOutputFormat string
	assessTaxonomy     string
	assessDelay        time.Duration
)

// flag names per profile field, for hints on missing input
var profileFlagNames = map[string]string{
	"role":             "--role",
	"current_skills":   "--skills",
	"experience_level": "--experience",
	"hours_per_week":   "--hours",
	"target_level":     "--level",
	"urgency":          "--urgency",
}

func NewAssessCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess readiness for a target job role",
		Long: `Score how ready you are for a job role and get a week-by-week learning plan.

Examples:
  # Assess from flags
  skillready assess --role "Frontend Developer" --skills "HTML, CSS, JavaScript" \
    --experience beginner --level junior --hours 10 --urgency urgent

  # Assess from a profile file, overriding the urgency
  skillready assess -f profile.yaml --urgency exploring

  # Machine-readable output
  skillready assess -f profile.json -o json`,
		Args: cobra.NoArgs,
		RunE: runAssess,
	}

	cmd.Flags().StringVar(&assessRole, "role", "", "Target job role (free text)")
	cmd.Flags().StringVar(&assessIndustry, "industry", "", "Industry (informational)")
	cmd.Flags().StringVar(&assessSkills, "skills", "", "Current skills, comma-separated")
	cmd.Flags().StringVar(&assessExperience, "experience", "", "Experience level (beginner, intermediate, advanced)")
	cmd.Flags().StringVar(&assessLevel, "level", "", "Target level (intern, junior, mid)")
	cmd.Flags().StringVar(&assessHours, "hours", "", "Hours per week (5, 10, 15, 20)")
	cmd.Flags().StringVar(&assessUrgency, "urgency", "", "Urgency (exploring, \"3-6 months\", urgent)")
	cmd.Flags().StringVarP(&assessFile, "file", "f", "", "Profile file (JSON or YAML)")
	cmd.Flags().StringVarP(&assessOutputFormat, "output", "o", cfg.Output, "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&assessTaxonomy, "taxonomy", cfg.TaxonomyPath, "Custom role taxonomy file (YAML or JSON)")
	cmd.Flags().DurationVar(&assessDelay, "delay", cfg.AnalyzeDelay, "Pause before showing results")

	return cmd
}

func runAssess(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(assessOutputFormat); err != nil {
		return err
	}

	profile, err := loadProfile(assessFile)
	if err != nil {
		return err
	}
	profile = profile.Merge(flagProfile())

	if err := profile.Validate(); err != nil {
		var mf *model.MissingFieldsError
		if errors.As(err, &mf) {
			printWarning(missingHint(mf.Fields))
		}
		return err
	}

	store, err := taxonomy.LoadFile(assessTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	human := assessOutputFormat == "human"
	if human {
		printHeader(profile)
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Analyzing your readiness..."
	s.Start()

	if err := wait(cmd.Context(), assessDelay); err != nil {
		s.Stop()
		return err
	}
	result := analyzer.New(store).Analyze(profile)

	s.Stop()
	if human {
		printSuccess("Analysis complete")
	}

	return formatter.DisplayResults(os.Stdout, profile, result, assessOutputFormat)
}

func loadProfile(path string) (model.UserProfile, error) {
	if path == "" {
		return model.UserProfile{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	profile, err := parser.ParseProfile(data)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return profile, nil
}

func flagProfile() model.UserProfile {
	return model.UserProfile{
		Role:            strings.TrimSpace(assessRole),
		Industry:        strings.TrimSpace(assessIndustry),
		TargetLevel:     model.TargetLevel(normalizeChoice(assessLevel)),
		CurrentSkills:   strings.TrimSpace(assessSkills),
		ExperienceLevel: model.ExperienceLevel(normalizeChoice(assessExperience)),
		HoursPerWeek:    strings.TrimSuffix(strings.TrimSpace(assessHours), "+"),
		Urgency:         model.Urgency(normalizeChoice(assessUrgency)),
	}
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func missingHint(fields []string) string {
	flags := make([]string, 0, len(fields))
	for _, f := range fields {
		if name, ok := profileFlagNames[f]; ok {
			flags = append(flags, name)
		} else {
			flags = append(flags, f)
		}
	}
	return fmt.Sprintf("Profile is incomplete, provide %s", strings.Join(flags, ", "))
}

func validateOutputFormat(format string) error {
	switch format {
	case "human", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use human, json or yaml)", format)
	}
}

// wait pauses for d unless ctx is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func printHeader(profile model.UserProfile) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🎯 Skill Readiness Assessment")
	fmt.Printf("💼 Role: %s\n", profile.Role)
	if profile.Industry != "" {
		fmt.Printf("🏢 Industry: %s\n", profile.Industry)
	}
	fmt.Printf("📈 Level: %s · Experience: %s\n", profile.TargetLevel, profile.ExperienceLevel)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printWarning(msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(os.Stderr, "⚠ %s\n", msg)
}
