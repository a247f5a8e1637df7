package model

type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
)

// Weight is the scoring weight of the tier. Unknown tiers weigh nothing.
func (i Importance) Weight() int {
	switch i {
	case ImportanceCritical:
		return 3
	case ImportanceHigh:
		return 2
	case ImportanceMedium:
		return 1
	default:
		return 0
	}
}

// Rank orders tiers for missing-skill sorting: critical first.
func (i Importance) Rank() int {
	switch i {
	case ImportanceCritical:
		return 0
	case ImportanceHigh:
		return 1
	case ImportanceMedium:
		return 2
	default:
		return 3
	}
}

func (i Importance) Valid() bool {
	return i.Rank() < 3
}

type Category string

const (
	CategoryCore        Category = "core"
	CategoryTools       Category = "tools"
	CategoryApplication Category = "application"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryCore, CategoryTools, CategoryApplication}

func (c Category) Valid() bool {
	switch c {
	case CategoryCore, CategoryTools, CategoryApplication:
		return true
	default:
		return false
	}
}

// Label is the human heading for the category.
func (c Category) Label() string {
	switch c {
	case CategoryCore:
		return "Core Technical Skills"
	case CategoryTools:
		return "Tools & Workflow"
	case CategoryApplication:
		return "Problem Solving / Application"
	default:
		return string(c)
	}
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Multiplier falls back to the beginner value for anything unrecognized.
func (e ExperienceLevel) Multiplier() float64 {
	switch e {
	case ExperienceAdvanced:
		return 1.1
	case ExperienceIntermediate:
		return 1
	default:
		return 0.9
	}
}

type TargetLevel string

const (
	TargetIntern TargetLevel = "intern"
	TargetJunior TargetLevel = "junior"
	TargetMid    TargetLevel = "mid"
)

// Multiplier falls back to the mid value for anything unrecognized.
func (t TargetLevel) Multiplier() float64 {
	switch t {
	case TargetIntern:
		return 1.15
	case TargetJunior:
		return 1.05
	default:
		return 0.95
	}
}

type Urgency string

const (
	UrgencyExploring Urgency = "exploring"
	UrgencyMonths    Urgency = "3-6 months"
	UrgencyUrgent    Urgency = "urgent"
)

// BaseWeeks is the plan length before it is bounded by the gap size.
func (u Urgency) BaseWeeks() int {
	switch u {
	case UrgencyUrgent:
		return 4
	case UrgencyExploring:
		return 8
	default:
		return 6
	}
}

// Choice is a selectable value with its display label.
type Choice struct {
	Value string
	Label string
}

var (
	TargetLevelChoices = []Choice{
		{Value: string(TargetIntern), Label: "Intern"},
		{Value: string(TargetJunior), Label: "Junior"},
		{Value: string(TargetMid), Label: "Mid-Level"},
	}
	ExperienceChoices = []Choice{
		{Value: string(ExperienceBeginner), Label: "Beginner (0-1 years)"},
		{Value: string(ExperienceIntermediate), Label: "Intermediate (1-3 years)"},
		{Value: string(ExperienceAdvanced), Label: "Advanced (3+ years)"},
	}
	HoursChoices = []Choice{
		{Value: "5", Label: "5 hours/week"},
		{Value: "10", Label: "10 hours/week"},
		{Value: "15", Label: "15 hours/week"},
		{Value: "20", Label: "20+ hours/week"},
	}
	UrgencyChoices = []Choice{
		{Value: string(UrgencyExploring), Label: "Just Exploring"},
		{Value: string(UrgencyMonths), Label: "3-6 Months"},
		{Value: string(UrgencyUrgent), Label: "Urgent (ASAP)"},
	}
)

// ScoreLabel buckets a readiness score for display.
func ScoreLabel(score int) string {
	switch {
	case score >= 70:
		return "Competitive"
	case score >= 40:
		return "Developing"
	default:
		return "Not Ready"
	}
}
