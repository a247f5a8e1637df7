package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestMissingFields(t *testing.T) {
	p := UserProfile{Role: "Frontend Developer", Industry: "", HoursPerWeek: "10"}
	got := p.MissingFields()
	want := []string{"current_skills", "experience_level", "target_level", "urgency"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingFields() = %v, want %v", got, want)
	}

	err := p.Validate()
	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("Validate() error = %v, want *MissingFieldsError", err)
	}
	if err.Error() != "missing required fields: current_skills, experience_level, target_level, urgency" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidateCompleteProfile(t *testing.T) {
	p := UserProfile{
		Role:            "x",
		CurrentSkills:   "y",
		ExperienceLevel: ExperienceBeginner,
		HoursPerWeek:    "5",
		TargetLevel:     TargetJunior,
		Urgency:         UrgencyUrgent,
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestWhitespaceCountsAsMissing(t *testing.T) {
	p := UserProfile{Role: "   ", CurrentSkills: "\n"}
	got := p.MissingFields()
	if len(got) != 6 {
		t.Fatalf("MissingFields() = %v, want all six", got)
	}
}

func TestMerge(t *testing.T) {
	base := UserProfile{Role: "data scientist", CurrentSkills: "python", Urgency: UrgencyExploring}
	got := base.Merge(UserProfile{CurrentSkills: "python, sql", TargetLevel: TargetIntern})
	want := UserProfile{Role: "data scientist", CurrentSkills: "python, sql", Urgency: UrgencyExploring, TargetLevel: TargetIntern}
	if got != want {
		t.Fatalf("Merge() = %+v, want %+v", got, want)
	}
}

func TestMultiplierFallbacks(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"advanced", ExperienceAdvanced.Multiplier(), 1.1},
		{"intermediate", ExperienceIntermediate.Multiplier(), 1},
		{"beginner", ExperienceBeginner.Multiplier(), 0.9},
		{"unknown experience", ExperienceLevel("guru").Multiplier(), 0.9},
		{"intern", TargetIntern.Multiplier(), 1.15},
		{"junior", TargetJunior.Multiplier(), 1.05},
		{"mid", TargetMid.Multiplier(), 0.95},
		{"unknown level", TargetLevel("").Multiplier(), 0.95},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestUrgencyBaseWeeks(t *testing.T) {
	cases := map[Urgency]int{
		UrgencyUrgent:    4,
		UrgencyMonths:    6,
		UrgencyExploring: 8,
		"whenever":       6,
		"":               6,
	}
	for u, want := range cases {
		if got := u.BaseWeeks(); got != want {
			t.Errorf("Urgency(%q).BaseWeeks() = %d, want %d", u, got, want)
		}
	}
}

func TestImportanceOrdering(t *testing.T) {
	if ImportanceCritical.Weight() != 3 || ImportanceHigh.Weight() != 2 || ImportanceMedium.Weight() != 1 {
		t.Fatalf("unexpected weights")
	}
	if !(ImportanceCritical.Rank() < ImportanceHigh.Rank() && ImportanceHigh.Rank() < ImportanceMedium.Rank()) {
		t.Fatalf("ranks not ordered critical < high < medium")
	}
	if Importance("low").Valid() {
		t.Fatalf("Importance(low) should be invalid")
	}
}

func TestScoreLabel(t *testing.T) {
	cases := map[int]string{0: "Not Ready", 39: "Not Ready", 40: "Developing", 69: "Developing", 70: "Competitive", 100: "Competitive"}
	for score, want := range cases {
		if got := ScoreLabel(score); got != want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", score, got, want)
		}
	}
}
