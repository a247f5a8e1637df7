package analyzer

import (
	"math"

	"github.com/helmcode/skillready/pkg/model"
)

// readinessScore is the weighted match percentage scaled by the experience and
// target-level multipliers, rounded and clamped to [0,100].
func readinessScore(assessments []model.SkillAssessment, exp model.ExperienceLevel, level model.TargetLevel) int {
	user, total := weightedTotals(assessments)
	if total == 0 {
		return 0
	}
	raw := float64(user) / float64(total) * 100 * exp.Multiplier() * level.Multiplier()
	return clampPercent(int(math.Round(raw)))
}

func categoryScores(assessments []model.SkillAssessment) model.CategoryScores {
	return model.CategoryScores{
		Core:        categoryScore(assessments, model.CategoryCore),
		Tools:       categoryScore(assessments, model.CategoryTools),
		Application: categoryScore(assessments, model.CategoryApplication),
	}
}

// categoryScore is 0 when the profile has no requirement in the category.
func categoryScore(assessments []model.SkillAssessment, category model.Category) int {
	var subset []model.SkillAssessment
	for _, s := range assessments {
		if s.Category == category {
			subset = append(subset, s)
		}
	}
	user, total := weightedTotals(subset)
	if total == 0 {
		return 0
	}
	return clampPercent(int(math.Round(float64(user) / float64(total) * 100)))
}

func weightedTotals(assessments []model.SkillAssessment) (user, total int) {
	for _, s := range assessments {
		w := s.Importance.Weight()
		total += w
		if s.UserHas {
			user += w
		}
	}
	return user, total
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
