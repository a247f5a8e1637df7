package analyzer

import (
	"github.com/helmcode/skillready/pkg/matcher"
	"github.com/helmcode/skillready/pkg/model"
	"github.com/helmcode/skillready/pkg/narrative"
	"github.com/helmcode/skillready/pkg/taxonomy"
)

// alternativeThreshold is the score below which a fallback role is suggested.
const alternativeThreshold = 50

// Analyzer scores profiles against a taxonomy. It holds no mutable state and
// is safe for concurrent use.
type Analyzer struct {
	store *taxonomy.Store
}

// New returns an Analyzer over store, or over the built-in tables when store is nil.
func New(store *taxonomy.Store) *Analyzer {
	if store == nil {
		store = taxonomy.Builtin()
	}
	return &Analyzer{store: store}
}

func (a *Analyzer) Store() *taxonomy.Store {
	return a.store
}

// Analyze assesses profile. It never fails; unrecognized roles and enum values
// fall back to their documented defaults.
func (a *Analyzer) Analyze(profile model.UserProfile) *model.AnalysisResult {
	role := a.store.Lookup(profile.Role)

	assessments := make([]model.SkillAssessment, len(role.Requirements))
	for i, req := range role.Requirements {
		assessments[i] = model.SkillAssessment{
			Name:       req.Name,
			Required:   true,
			UserHas:    matcher.Matches(req.Name, profile.CurrentSkills),
			Importance: req.Importance,
			Category:   req.Category,
		}
	}

	score := readinessScore(assessments, profile.ExperienceLevel, profile.TargetLevel)
	missing := missingSkills(assessments)
	totalWeeks := planWeeks(len(missing), profile.Urgency)

	result := &model.AnalysisResult{
		RoleKey:        role.Key,
		RequiredSkills: assessments,
		ReadinessScore: score,
		CategoryScores: categoryScores(assessments),
		MissingSkills:  missing,
		WeeklyPlan:     weeklyPlan(missing, totalWeeks),
		TotalWeeks:     totalWeeks,
		RiskStatement: narrative.RiskStatement(narrative.RiskInput{
			Score:           score,
			CriticalMissing: countMissing(assessments, model.ImportanceCritical),
			Missing:         missing,
			TargetLevel:     string(profile.TargetLevel),
			ExperienceLevel: string(profile.ExperienceLevel),
		}),
		WhatNotToLearn: a.store.NotToLearn(role.Key),
	}

	if score < alternativeThreshold {
		alt := a.store.Alternative(role.Key)
		result.AlternativeRole = &alt
	}
	return result
}

var defaultAnalyzer = New(nil)

// Analyze assesses profile against the built-in tables.
func Analyze(profile model.UserProfile) *model.AnalysisResult {
	return defaultAnalyzer.Analyze(profile)
}

func countMissing(assessments []model.SkillAssessment, tier model.Importance) int {
	n := 0
	for _, s := range assessments {
		if !s.UserHas && s.Importance == tier {
			n++
		}
	}
	return n
}
