package narrative

import (
	"fmt"
	"strings"
)

const (
	FocusFoundation = "Foundation"
	FocusCore       = "Core Development"
	FocusAdvanced   = "Advanced Skills"
	FocusPortfolio  = "Portfolio & Practice"
)

// riskBandWidth is the score span covered by each risk template.
const riskBandWidth = 35

var weekReasons = []string{
	"Foundation week - these skills are prerequisites for everything else and are tested in initial screenings",
	"Core competency development - employers specifically test for these in technical interviews",
	"Building on fundamentals with practical application skills that demonstrate job readiness",
	"Intermediate skills that differentiate candidates and show depth of knowledge",
	"Advanced techniques that demonstrate senior-level thinking and problem-solving",
	"Integration skills - combining multiple competencies effectively for real projects",
	"Portfolio building - creating demonstrable work samples that prove your abilities",
	"Interview preparation and final skill refinement for job applications",
}

const fallbackWeekReason = "Continued skill development and practice"

// WeekFocus labels a zero-based week index in pairs of weeks.
func WeekFocus(index int) string {
	switch {
	case index < 2:
		return FocusFoundation
	case index < 4:
		return FocusCore
	case index < 6:
		return FocusAdvanced
	default:
		return FocusPortfolio
	}
}

// WeekReason returns the rationale for a zero-based week index.
func WeekReason(index int) string {
	if index >= 0 && index < len(weekReasons) {
		return weekReasons[index]
	}
	return fallbackWeekReason
}

// RiskInput carries what the risk templates interpolate.
type RiskInput struct {
	Score           int
	CriticalMissing int
	Missing         []string
	TargetLevel     string
	ExperienceLevel string
}

// RiskTemplate selects a template index from the readiness score.
func RiskTemplate(score int) int {
	idx := score / riskBandWidth
	if idx < 0 {
		return 0
	}
	if idx > 2 {
		return 2
	}
	return idx
}

// RiskStatement renders the warning matching in.Score.
func RiskStatement(in RiskInput) string {
	switch RiskTemplate(in.Score) {
	case 0:
		plural := "s"
		if in.CriticalMissing == 1 {
			plural = ""
		}
		top := "practical experience"
		if len(in.Missing) > 0 {
			top = in.Missing[0]
		}
		return fmt.Sprintf("You're missing %d critical skill%s. At %s level, %s is non-negotiable and will filter you out in 80%% of resume screenings.",
			in.CriticalMissing, plural, in.TargetLevel, top)
	case 1:
		top := in.Missing
		if len(top) > 2 {
			top = top[:2]
		}
		return fmt.Sprintf("Without solid %s, you will struggle in technical interviews. Most %s positions require demonstrated ability in these areas.",
			strings.Join(top, " and "), in.TargetLevel)
	default:
		return fmt.Sprintf("Your %s experience level requires demonstrable projects. Listing skills without portfolio evidence reduces your callback rate by 60-70%%. Interviewers will test depth, not just breadth.",
			in.ExperienceLevel)
	}
}
