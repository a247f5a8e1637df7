package analyzer

import (
	"math"
	"sort"

	"github.com/helmcode/skillready/pkg/model"
	"github.com/helmcode/skillready/pkg/narrative"
)

const (
	minPlanWeeks = 4
	maxPlanWeeks = 8

	// weeksPerMissingSkill bounds the plan by the size of the gap.
	weeksPerMissingSkill = 1.5
)

// missingSkills lists unmatched requirements critical first, keeping profile
// order inside each tier.
func missingSkills(assessments []model.SkillAssessment) []string {
	var gaps []model.SkillAssessment
	for _, s := range assessments {
		if !s.UserHas {
			gaps = append(gaps, s)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Importance.Rank() < gaps[j].Importance.Rank()
	})

	names := make([]string, len(gaps))
	for i, s := range gaps {
		names[i] = s.Name
	}
	return names
}

// planWeeks takes the shorter of the urgency base and the gap-sized plan,
// then clamps it to [4,8].
func planWeeks(missing int, urgency model.Urgency) int {
	weeks := urgency.BaseWeeks()
	if bySize := int(math.Ceil(float64(missing) * weeksPerMissingSkill)); bySize < weeks {
		weeks = bySize
	}
	if weeks < minPlanWeeks {
		return minPlanWeeks
	}
	if weeks > maxPlanWeeks {
		return maxPlanWeeks
	}
	return weeks
}

// weeklyPlan splits missing into equal consecutive chunks, one per week.
// Weeks left without skills are omitted, so the plan may be shorter than totalWeeks.
func weeklyPlan(missing []string, totalWeeks int) []model.WeekPlan {
	plan := []model.WeekPlan{}
	if len(missing) == 0 || totalWeeks <= 0 {
		return plan
	}
	perWeek := (len(missing) + totalWeeks - 1) / totalWeeks

	for i := 0; i < totalWeeks; i++ {
		start := i * perWeek
		if start >= len(missing) {
			break
		}
		end := start + perWeek
		if end > len(missing) {
			end = len(missing)
		}
		plan = append(plan, model.WeekPlan{
			Week:   i + 1,
			Focus:  narrative.WeekFocus(i),
			Skills: append([]string(nil), missing[start:end]...),
			Reason: narrative.WeekReason(i),
		})
	}
	return plan
}
