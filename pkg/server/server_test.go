package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/helmcode/skillready/pkg/analyzer"
	"github.com/helmcode/skillready/pkg/config"
	"github.com/helmcode/skillready/pkg/model"
	"github.com/helmcode/skillready/pkg/taxonomy"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	DevMessage string          `json:"dev_message"`
	Meta       map[string]any  `json:"meta"`
	Details    map[string]any  `json:"details"`
	Data       json.RawMessage `json:"data"`
}

func testApp(t *testing.T, cfg config.AppConfig) *fiber.App {
	t.Helper()
	if cfg.Name == "" {
		cfg.Name = "skillready-test"
	}
	if cfg.RateMax == 0 {
		cfg.RateMax = 100
	}
	if cfg.RateWindow == 0 {
		cfg.RateWindow = time.Minute
	}
	return New(cfg, analyzer.New(taxonomy.Builtin()))
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test(%s %s) error = %v", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode body %s: %v", raw, err)
		}
	}
	return resp, env
}

const frontendProfile = `{
  "jobRole": "Frontend Developer",
  "currentSkills": "HTML, CSS, JavaScript",
  "experienceLevel": "beginner",
  "targetLevel": "junior",
  "hoursPerWeek": "10",
  "urgency": "urgent"
}`

func TestAssess(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, env := do(t, app, fiber.MethodPost, "/api/v1/assess", frontendProfile)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Fatalf("success = false: %+v", env)
	}
	rid := resp.Header.Get(fiber.HeaderXRequestID)
	if rid == "" || env.Meta["request_id"] != rid {
		t.Fatalf("request id header %q, meta %v", rid, env.Meta["request_id"])
	}
	if env.Meta["score_label"] != "Not Ready" {
		t.Fatalf("score_label = %v", env.Meta["score_label"])
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	want := analyzer.Analyze(model.UserProfile{
		Role:            "Frontend Developer",
		CurrentSkills:   "HTML, CSS, JavaScript",
		ExperienceLevel: model.ExperienceBeginner,
		TargetLevel:     model.TargetJunior,
		HoursPerWeek:    "10",
		Urgency:         model.UrgencyUrgent,
	})
	if result.ReadinessScore != want.ReadinessScore || result.TotalWeeks != want.TotalWeeks || len(result.WeeklyPlan) != len(want.WeeklyPlan) {
		t.Fatalf("result = %+v, want %+v", result, want)
	}
	if result.AlternativeRole == nil {
		t.Fatalf("alternative role missing")
	}
}

func TestAssessYAMLBody(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	body := "role: DevOps Engineer\ncurrent_skills: [docker, kubernetes, linux, git]\nexperience_level: advanced\ntarget_level: junior\nhours_per_week: 20\nurgency: exploring\n"
	resp, env := do(t, app, fiber.MethodPost, "/api/v1/assess", body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body %+v", resp.StatusCode, env)
	}
	var result model.AnalysisResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if result.RoleKey != "devops engineer" {
		t.Fatalf("RoleKey = %q", result.RoleKey)
	}
}

func TestAssessMissingFields(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, env := do(t, app, fiber.MethodPost, "/api/v1/assess", `{"role":"Data Scientist","urgency":"urgent"}`)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	fields, ok := env.Details["missing_fields"].([]any)
	if !ok {
		t.Fatalf("details = %+v", env.Details)
	}
	var got []string
	for _, f := range fields {
		got = append(got, f.(string))
	}
	want := "current_skills,experience_level,hours_per_week,target_level"
	if strings.Join(got, ",") != want {
		t.Fatalf("missing_fields = %v, want %s", got, want)
	}
	if env.DevMessage == "" {
		t.Fatalf("dev_message empty outside production")
	}
}

func TestAssessMalformedBodyHidesDevMessageInProduction(t *testing.T) {
	app := testApp(t, config.AppConfig{Env: "production"})
	resp, env := do(t, app, fiber.MethodPost, "/api/v1/assess", `["not", "an", "object"]`)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Message != "invalid profile document" {
		t.Fatalf("message = %q", env.Message)
	}
	if env.DevMessage != "" {
		t.Fatalf("dev_message leaked in production: %q", env.DevMessage)
	}
}

func TestAssessEmptyBody(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, _ := do(t, app, fiber.MethodPost, "/api/v1/assess", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRoles(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, env := do(t, app, fiber.MethodGet, "/api/v1/roles", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var roles []taxonomy.RoleProfile
	if err := json.Unmarshal(env.Data, &roles); err != nil {
		t.Fatalf("decode roles: %v", err)
	}
	if len(roles) != 8 || roles[len(roles)-1].Key != "default" {
		t.Fatalf("roles = %d, last %q", len(roles), roles[len(roles)-1].Key)
	}
}

func TestResolve(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, env := do(t, app, fiber.MethodGet, "/api/v1/roles/resolve?role=Senior%20Frontend%20Developer%20role", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var role taxonomy.RoleProfile
	if err := json.Unmarshal(env.Data, &role); err != nil {
		t.Fatalf("decode role: %v", err)
	}
	if role.Key != "frontend developer" {
		t.Fatalf("resolved %q", role.Key)
	}
}

func TestHealthcheck(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, _ := do(t, app, fiber.MethodGet, "/livez", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("livez status = %d", resp.StatusCode)
	}
}

func TestRateLimit(t *testing.T) {
	app := testApp(t, config.AppConfig{RateMax: 2, RateWindow: time.Minute})
	for i := 0; i < 2; i++ {
		resp, _ := do(t, app, fiber.MethodGet, "/api/v1/roles", "")
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d status = %d", i, resp.StatusCode)
		}
	}
	resp, env := do(t, app, fiber.MethodGet, "/api/v1/roles", "")
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", resp.StatusCode)
	}
	if env.Success {
		t.Fatalf("success = true on rate limit")
	}
}

func TestUnknownRoute(t *testing.T) {
	app := testApp(t, config.AppConfig{})
	resp, env := do(t, app, fiber.MethodGet, "/api/v1/nope", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if env.Success || env.Message == "" {
		t.Fatalf("envelope = %+v", env)
	}
}
