package model

// UserProfile is the form input for one assessment.
type UserProfile struct {
	Role            string          `json:"role" yaml:"role"`
	Industry        string          `json:"industry,omitempty" yaml:"industry,omitempty"`
	TargetLevel     TargetLevel     `json:"target_level" yaml:"target_level"`
	CurrentSkills   string          `json:"current_skills" yaml:"current_skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level" yaml:"experience_level"`
	HoursPerWeek    string          `json:"hours_per_week" yaml:"hours_per_week"`
	Urgency         Urgency         `json:"urgency" yaml:"urgency"`
}

type SkillAssessment struct {
	Name       string     `json:"name" yaml:"name"`
	Required   bool       `json:"required" yaml:"required"`
	UserHas    bool       `json:"user_has" yaml:"user_has"`
	Importance Importance `json:"importance" yaml:"importance"`
	Category   Category   `json:"category" yaml:"category"`
}

type CategoryScores struct {
	Core        int `json:"core" yaml:"core"`
	Tools       int `json:"tools" yaml:"tools"`
	Application int `json:"application" yaml:"application"`
}

// Get returns the score for c, or 0 for an unknown category.
func (s CategoryScores) Get(c Category) int {
	switch c {
	case CategoryCore:
		return s.Core
	case CategoryTools:
		return s.Tools
	case CategoryApplication:
		return s.Application
	default:
		return 0
	}
}

type WeekPlan struct {
	Week   int      `json:"week" yaml:"week"`
	Focus  string   `json:"focus" yaml:"focus"`
	Skills []string `json:"skills" yaml:"skills"`
	Reason string   `json:"reason" yaml:"reason"`
}

type AlternativeRole struct {
	Role   string `json:"role" yaml:"role"`
	Reason string `json:"reason" yaml:"reason"`
}

// AnalysisResult is built once by the analyzer and never mutated afterwards.
type AnalysisResult struct {
	RoleKey         string            `json:"role_key" yaml:"role_key"`
	RequiredSkills  []SkillAssessment `json:"required_skills" yaml:"required_skills"`
	ReadinessScore  int               `json:"readiness_score" yaml:"readiness_score"`
	CategoryScores  CategoryScores    `json:"category_scores" yaml:"category_scores"`
	MissingSkills   []string          `json:"missing_skills" yaml:"missing_skills"`
	WeeklyPlan      []WeekPlan        `json:"weekly_plan" yaml:"weekly_plan"`
	RiskStatement   string            `json:"risk_statement" yaml:"risk_statement"`
	TotalWeeks      int               `json:"total_weeks" yaml:"total_weeks"`
	WhatNotToLearn  []string          `json:"what_not_to_learn" yaml:"what_not_to_learn"`
	AlternativeRole *AlternativeRole  `json:"alternative_role" yaml:"alternative_role"`
}

// MatchedCount reports how many required skills the user already has.
func (r *AnalysisResult) MatchedCount() int {
	n := 0
	for _, s := range r.RequiredSkills {
		if s.UserHas {
			n++
		}
	}
	return n
}
