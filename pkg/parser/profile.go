package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/skillready/pkg/model"
)

var ErrEmptyProfile = errors.New("profile document is empty")

// Accepted keys per field, first match wins. Covers snake_case, camelCase and
// the names the web form used.
var (
	roleKeys        = []string{"role", "job_role", "jobRole"}
	industryKeys    = []string{"industry"}
	targetKeys      = []string{"target_level", "targetLevel"}
	skillsKeys      = []string{"current_skills", "currentSkills", "skills"}
	experienceKeys  = []string{"experience_level", "experienceLevel"}
	hoursKeys       = []string{"hours_per_week", "hoursPerWeek"}
	urgencyKeys     = []string{"urgency"}
	fenceExpression = regexp.MustCompile("(?s)^```(?:[a-zA-Z]*\n)?(.*?)```$")
)

// ParseProfile decodes a user profile from a JSON or YAML document. Skill lists
// are joined into one comma-separated text.
func ParseProfile(raw []byte) (model.UserProfile, error) {
	cleaned := stripFences(string(raw))
	if cleaned == "" {
		return model.UserProfile{}, ErrEmptyProfile
	}

	if !gjson.Valid(cleaned) {
		converted, err := yamlToJSON(cleaned)
		if err != nil {
			return model.UserProfile{}, err
		}
		cleaned = converted
	}

	doc := gjson.Parse(cleaned)
	if !doc.IsObject() {
		return model.UserProfile{}, fmt.Errorf("profile must be an object, got %s", doc.Type)
	}

	return model.UserProfile{
		Role:            lookup(doc, roleKeys),
		Industry:        lookup(doc, industryKeys),
		TargetLevel:     model.TargetLevel(strings.ToLower(lookup(doc, targetKeys))),
		CurrentSkills:   lookup(doc, skillsKeys),
		ExperienceLevel: model.ExperienceLevel(strings.ToLower(lookup(doc, experienceKeys))),
		HoursPerWeek:    lookup(doc, hoursKeys),
		Urgency:         model.Urgency(strings.ToLower(lookup(doc, urgencyKeys))),
	}, nil
}

func yamlToJSON(text string) (string, error) {
	var v map[string]interface{}
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return "", fmt.Errorf("decode profile: %w", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("decode profile: %w", err)
	}
	return string(b), nil
}

func lookup(doc gjson.Result, keys []string) string {
	for _, key := range keys {
		r := doc.Get(key)
		if !r.Exists() || r.Type == gjson.Null {
			continue
		}
		if r.IsArray() {
			var parts []string
			for _, item := range r.Array() {
				if s := strings.TrimSpace(item.String()); s != "" {
					parts = append(parts, s)
				}
			}
			return strings.Join(parts, ", ")
		}
		return strings.TrimSpace(r.String())
	}
	return ""
}

// stripFences removes a markdown code fence such as ```json ... ``` wrapping the
// whole document. Backticks inside the document are left alone.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if m := fenceExpression.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}
