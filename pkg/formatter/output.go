package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/skillready/pkg/model"
)

const ruleWidth = 80

// DisplayResults formats and displays the analysis results
func DisplayResults(w io.Writer, profile model.UserProfile, result *model.AnalysisResult, format string) error {
	switch format {
	case "json":
		return displayJSON(w, result)
	case "yaml":
		return displayYAML(w, result)
	case "human":
		fallthrough
	default:
		displayHuman(w, profile, result)
	}
	return nil
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, profile model.UserProfile, result *model.AnalysisResult) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)

	// Overall score
	scoreColor := getScoreColor(result.ReadinessScore)
	white.Fprintln(w, "🎯 READINESS SCORE:")
	scoreColor.Fprintf(w, "   %d/100  %s\n", result.ReadinessScore, strings.ToUpper(model.ScoreLabel(result.ReadinessScore)))
	fmt.Fprintf(w, "   %s\n", progressBar(result.ReadinessScore, 40))
	fmt.Fprintf(w, "   Matched %d of %d required skills for %s\n\n", result.MatchedCount(), len(result.RequiredSkills), result.RoleKey)

	// Category breakdown
	cyan.Fprintln(w, "📊 SKILL BREAKDOWN:")
	for _, c := range model.Categories {
		score := result.CategoryScores.Get(c)
		fmt.Fprintf(w, "   %s %-30s %3d%%  %s\n", getCategoryIcon(c), c.Label(), score, progressBar(score, 20))
	}
	fmt.Fprintln(w)

	// Required skills
	white.Fprintln(w, "📋 REQUIRED SKILLS:")
	for _, s := range result.RequiredSkills {
		mark := color.RedString("✗")
		if s.UserHas {
			mark = color.GreenString("✓")
		}
		fmt.Fprintf(w, "   %s %s %s\n", mark, getImportanceIcon(s.Importance), s.Name)
	}
	fmt.Fprintln(w)

	// Risk
	red.Fprintln(w, "⚠️  RISK:")
	fmt.Fprintln(w, wrapText(result.RiskStatement, ruleWidth, "   "))
	fmt.Fprintln(w)

	// Weekly plan
	if len(result.WeeklyPlan) > 0 {
		green.Fprintf(w, "📅 %d-WEEK LEARNING PLAN", result.TotalWeeks)
		if profile.HoursPerWeek != "" {
			fmt.Fprintf(w, " (%s hrs/week)", profile.HoursPerWeek)
		}
		fmt.Fprintln(w)
		for _, week := range result.WeeklyPlan {
			fmt.Fprintf(w, "   Week %d · %s\n", week.Week, color.CyanString(week.Focus))
			for _, skill := range week.Skills {
				fmt.Fprintf(w, "      • %s\n", skill)
			}
			fmt.Fprintln(w, wrapText("Why: "+week.Reason, ruleWidth, "      "))
			fmt.Fprintln(w)
		}
	} else {
		green.Fprintln(w, "📅 LEARNING PLAN:")
		fmt.Fprintln(w, "   No missing skills - focus on portfolio projects and interview practice.")
		fmt.Fprintln(w)
	}

	// What not to learn
	if len(result.WhatNotToLearn) > 0 {
		yellow.Fprintln(w, "🚫 WHAT NOT TO LEARN (YET):")
		for _, item := range result.WhatNotToLearn {
			fmt.Fprintf(w, "   • %s\n", item)
		}
		fmt.Fprintln(w)
	}

	// Alternative role
	if result.AlternativeRole != nil {
		cyan.Fprintln(w, "💡 CONSIDER INSTEAD:")
		fmt.Fprintf(w, "   %s\n", color.CyanString(result.AlternativeRole.Role))
		fmt.Fprintln(w, wrapText(result.AlternativeRole.Reason, ruleWidth, "   "))
		fmt.Fprintln(w)
	}

	// Footer
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func getScoreColor(score int) *color.Color {
	switch {
	case score >= 70:
		return color.New(color.FgGreen, color.Bold)
	case score >= 40:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func getCategoryIcon(c model.Category) string {
	switch c {
	case model.CategoryCore:
		return "💻"
	case model.CategoryTools:
		return "🔧"
	case model.CategoryApplication:
		return "🧠"
	default:
		return "•"
	}
}

func getImportanceIcon(i model.Importance) string {
	switch i {
	case model.ImportanceCritical:
		return "🔴"
	case model.ImportanceHigh:
		return "🟠"
	case model.ImportanceMedium:
		return "🟡"
	default:
		return "⚪"
	}
}

func progressBar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
