package model

import (
	"fmt"
	"strings"
)

// MissingFieldsError is returned when a profile lacks the fields needed
// before an assessment may run.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// MissingFields lists the blank required fields in form order. Industry is optional.
func (p UserProfile) MissingFields() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("role", p.Role)
	check("current_skills", p.CurrentSkills)
	check("experience_level", string(p.ExperienceLevel))
	check("hours_per_week", p.HoursPerWeek)
	check("target_level", string(p.TargetLevel))
	check("urgency", string(p.Urgency))
	return missing
}

func (p UserProfile) Validate() error {
	if missing := p.MissingFields(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// Merge returns p with every non-empty field of override applied on top.
func (p UserProfile) Merge(override UserProfile) UserProfile {
	if override.Role != "" {
		p.Role = override.Role
	}
	if override.Industry != "" {
		p.Industry = override.Industry
	}
	if override.TargetLevel != "" {
		p.TargetLevel = override.TargetLevel
	}
	if override.CurrentSkills != "" {
		p.CurrentSkills = override.CurrentSkills
	}
	if override.ExperienceLevel != "" {
		p.ExperienceLevel = override.ExperienceLevel
	}
	if override.HoursPerWeek != "" {
		p.HoursPerWeek = override.HoursPerWeek
	}
	if override.Urgency != "" {
		p.Urgency = override.Urgency
	}
	return p
}
