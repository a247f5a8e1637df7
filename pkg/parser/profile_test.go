package parser

import (
	"errors"
	"testing"

	"github.com/helmcode/skillready/pkg/model"
)

func TestParseProfileJSONAliases(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "snake case",
			doc:  `{"role":"Frontend Developer","current_skills":"HTML, CSS","experience_level":"beginner","target_level":"junior","hours_per_week":"10","urgency":"urgent"}`,
		},
		{
			name: "camel case form names",
			doc:  `{"jobRole":"Frontend Developer","currentSkills":"HTML, CSS","experienceLevel":"Beginner","targetLevel":"JUNIOR","hoursPerWeek":10,"urgency":"Urgent"}`,
		},
		{
			name: "skills list",
			doc:  `{"role":"Frontend Developer","skills":["HTML"," CSS ",""],"experience_level":"beginner","target_level":"junior","hours_per_week":"10","urgency":"urgent"}`,
		},
	}
	want := model.UserProfile{
		Role:            "Frontend Developer",
		CurrentSkills:   "HTML, CSS",
		ExperienceLevel: model.ExperienceBeginner,
		TargetLevel:     model.TargetJunior,
		HoursPerWeek:    "10",
		Urgency:         model.UrgencyUrgent,
	}
	for _, tc := range cases {
		got, err := ParseProfile([]byte(tc.doc))
		if err != nil {
			t.Fatalf("%s: ParseProfile() error = %v", tc.name, err)
		}
		if got != want {
			t.Errorf("%s: ParseProfile() = %+v, want %+v", tc.name, got, want)
		}
	}
}

func TestParseProfileYAML(t *testing.T) {
	doc := "```yaml\n" + `role: Data Scientist
industry: Fintech
current_skills:
  - Python
  - SQL
experience_level: intermediate
target_level: intern
hours_per_week: 15
urgency: 3-6 months
` + "```"

	got, err := ParseProfile([]byte(doc))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}
	want := model.UserProfile{
		Role:            "Data Scientist",
		Industry:        "Fintech",
		CurrentSkills:   "Python, SQL",
		ExperienceLevel: model.ExperienceIntermediate,
		TargetLevel:     model.TargetIntern,
		HoursPerWeek:    "15",
		Urgency:         model.UrgencyMonths,
	}
	if got != want {
		t.Fatalf("ParseProfile() = %+v, want %+v", got, want)
	}
}

func TestParseProfileFirstAliasWins(t *testing.T) {
	got, err := ParseProfile([]byte(`{"role":"A","jobRole":"B","skills":"x","current_skills":"y"}`))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}
	if got.Role != "A" || got.CurrentSkills != "y" {
		t.Fatalf("ParseProfile() = %+v", got)
	}
}

func TestParseProfileNullFallsThrough(t *testing.T) {
	got, err := ParseProfile([]byte(`{"role":null,"jobRole":"Backend Developer"}`))
	if err != nil {
		t.Fatalf("ParseProfile() error = %v", err)
	}
	if got.Role != "Backend Developer" {
		t.Fatalf("Role = %q", got.Role)
	}
}

func TestParseProfileErrors(t *testing.T) {
	if _, err := ParseProfile([]byte("  ```json\n```  ")); !errors.Is(err, ErrEmptyProfile) {
		t.Fatalf("empty: error = %v, want ErrEmptyProfile", err)
	}
	if _, err := ParseProfile([]byte(`["role"]`)); err == nil {
		t.Fatalf("array: error = nil")
	}
	if _, err := ParseProfile([]byte("role: [unclosed")); err == nil {
		t.Fatalf("bad yaml: error = nil")
	}
	if _, err := ParseProfile([]byte("just a sentence")); err == nil {
		t.Fatalf("scalar yaml: error = nil")
	}
}

func TestParseProfileKeepsBackticksInsideDocument(t *testing.T) {
	cases := map[string]string{
		"bare":   "{\"role\":\"Technical Writer\",\"current_skills\":\"Markdown ```code``` blocks, Git\"}",
		"fenced": "```json\n{\"role\":\"Technical Writer\",\"current_skills\":\"Markdown ```code``` blocks, Git\"}\n```",
		"inline": "```{\"role\":\"Technical Writer\",\"current_skills\":\"Markdown ```code``` blocks, Git\"}```",
	}
	for name, doc := range cases {
		got, err := ParseProfile([]byte(doc))
		if err != nil {
			t.Fatalf("%s: ParseProfile() error = %v", name, err)
		}
		if got.CurrentSkills != "Markdown ```code``` blocks, Git" {
			t.Fatalf("%s: CurrentSkills = %q", name, got.CurrentSkills)
		}
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```yaml\nrole: x\n```":     "role: x",
		"  ```\nrole: x\n```  ":     "role: x",
		"role: x":                   "role: x",
		"role: ```x```":             "role: ```x```",
		"```json\n{}\n``` trailing": "```json\n{}\n``` trailing",
	}
	for in, want := range cases {
		if got := stripFences(in); got != want {
			t.Errorf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
}
