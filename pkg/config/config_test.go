package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"SKILLREADY_OUTPUT", "SKILLREADY_ANALYZE_DELAY", "SKILLREADY_TAXONOMY", "APP_NAME", "APP_ENV", "APP_PORT", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.Output != "human" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.AnalyzeDelay != 1500*time.Millisecond {
		t.Errorf("AnalyzeDelay = %s", cfg.AnalyzeDelay)
	}
	if cfg.TaxonomyPath != "" {
		t.Errorf("TaxonomyPath = %q", cfg.TaxonomyPath)
	}
	want := AppConfig{Name: "skillready", Env: "development", Port: ":8080", RateMax: 50, RateWindow: time.Minute}
	if cfg.App != want {
		t.Errorf("App = %+v, want %+v", cfg.App, want)
	}
	if cfg.App.IsProduction() {
		t.Errorf("IsProduction() = true for development")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SKILLREADY_OUTPUT", "json")
	t.Setenv("SKILLREADY_ANALYZE_DELAY", "0s")
	t.Setenv("SKILLREADY_TAXONOMY", "/etc/skillready/roles.yaml")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg := FromEnv()
	if cfg.Output != "json" || cfg.AnalyzeDelay != 0 || cfg.TaxonomyPath != "/etc/skillready/roles.yaml" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.App.Port != ":9000" || cfg.App.RateMax != 5 || cfg.App.RateWindow != 30*time.Second {
		t.Fatalf("App = %+v", cfg.App)
	}
	if !cfg.App.IsProduction() {
		t.Fatalf("IsProduction() = false")
	}
}

func TestFromEnvInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SKILLREADY_ANALYZE_DELAY", "soon")
	t.Setenv("RATE_LIMIT_MAX", "-3")
	t.Setenv("RATE_LIMIT_WINDOW", "-1m")

	cfg := FromEnv()
	if cfg.AnalyzeDelay != DefaultAnalyzeDelay {
		t.Errorf("AnalyzeDelay = %s", cfg.AnalyzeDelay)
	}
	if cfg.App.RateMax != DefaultRateMax {
		t.Errorf("RateMax = %d", cfg.App.RateMax)
	}
	if cfg.App.RateWindow != DefaultRateWindow {
		t.Errorf("RateWindow = %s", cfg.App.RateWindow)
	}
}

func TestNormalizePort(t *testing.T) {
	cases := map[string]string{"8080": ":8080", ":8080": ":8080", "0.0.0.0:80": "0.0.0.0:80", "": ""}
	for in, want := range cases {
		if got := NormalizePort(in); got != want {
			t.Errorf("NormalizePort(%q) = %q, want %q", in, got, want)
		}
	}
}
