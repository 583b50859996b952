package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeEnv(t, `GITLAB_BASE_URL=https://gitlab.example.com
GITLAB_PERSONAL_ACCESS_TOKEN=glpat-secret
GITLAB_PROJECT_ID=42
GANTT_START_DATE=2026-02-02
HOLIDAY_COUNTRY=US
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://gitlab.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.ProjectID != "42" {
		t.Errorf("ProjectID = %q", cfg.ProjectID)
	}
	if !cfg.SSLVerify {
		t.Errorf("expected SSL verification on by default")
	}
	if cfg.HolidayCountry != "US" {
		t.Errorf("HolidayCountry = %q, want US", cfg.HolidayCountry)
	}
	want := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	if cfg.StartDate == nil || !cfg.StartDate.Equal(want) {
		t.Errorf("StartDate = %v, want %v", cfg.StartDate, want)
	}
	if err := cfg.ValidateGitLab(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeEnv(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HolidayCountry != "JP" {
		t.Errorf("HolidayCountry = %q, want default JP", cfg.HolidayCountry)
	}
	if !cfg.SSLVerify || cfg.CABundle != "" {
		t.Errorf("expected default SSL verification, got verify=%v bundle=%q", cfg.SSLVerify, cfg.CABundle)
	}
	if cfg.StartDate != nil {
		t.Errorf("expected no StartDate, got %v", cfg.StartDate)
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.ValidateGitLab(); err == nil {
		t.Errorf("expected validation failure for empty config")
	}
}

func TestLoad_SSLVerifyVariants(t *testing.T) {
	cases := []struct {
		value      string
		wantVerify bool
		wantBundle string
	}{
		{"false", false, ""},
		{"0", false, ""},
		{"no", false, ""},
		{"TRUE", true, ""},
		{"/etc/ssl/custom-ca.pem", true, "/etc/ssl/custom-ca.pem"},
	}
	for _, c := range cases {
		cfg, err := Load(writeEnv(t, "GITLAB_SSL_VERIFY="+c.value+"\n"))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.value, err)
		}
		if cfg.SSLVerify != c.wantVerify || cfg.CABundle != c.wantBundle {
			t.Errorf("%s: verify=%v bundle=%q, want verify=%v bundle=%q",
				c.value, cfg.SSLVerify, cfg.CABundle, c.wantVerify, c.wantBundle)
		}
	}
}

func TestLoad_MalformedStartDateIgnored(t *testing.T) {
	cfg, err := Load(writeEnv(t, "GANTT_START_DATE=02/03/2026\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartDate != nil {
		t.Errorf("expected malformed start date to be ignored, got %v", cfg.StartDate)
	}
}
