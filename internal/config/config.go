// Package config loads settings from a .env file, mirroring the keys the
// chart generator has always used.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the .env-sourced settings.
type Config struct {
	BaseURL   string // GITLAB_BASE_URL
	Token     string // GITLAB_PERSONAL_ACCESS_TOKEN
	ProjectID string // GITLAB_PROJECT_ID

	// GITLAB_SSL_VERIFY: true/false style values toggle verification;
	// any other non-empty value is a CA bundle path.
	SSLVerify bool
	CABundle  string

	StartDate      *time.Time // GANTT_START_DATE, optional override start
	HolidayCountry string     // HOLIDAY_COUNTRY, default "JP"
	HolidayFile    string     // HOLIDAY_FILE, optional YAML overlay
}

// Load reads path (default ".env"). A missing file yields an empty config;
// required GitLab keys are checked later by ValidateGitLab so offline runs
// work without any .env at all.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ".env"
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			values = map[string]string{}
		} else {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg := &Config{
		BaseURL:        values["GITLAB_BASE_URL"],
		Token:          values["GITLAB_PERSONAL_ACCESS_TOKEN"],
		ProjectID:      values["GITLAB_PROJECT_ID"],
		SSLVerify:      true,
		HolidayCountry: "JP",
		HolidayFile:    values["HOLIDAY_FILE"],
	}

	if v, ok := values["HOLIDAY_COUNTRY"]; ok && v != "" {
		cfg.HolidayCountry = v
	}

	switch strings.ToLower(values["GITLAB_SSL_VERIFY"]) {
	case "", "true", "1", "yes":
		cfg.SSLVerify = true
	case "false", "0", "no":
		cfg.SSLVerify = false
	default:
		// Anything else is a certificate bundle path.
		cfg.CABundle = values["GITLAB_SSL_VERIFY"]
	}

	if raw := values["GANTT_START_DATE"]; raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			log.Printf("warning: invalid GANTT_START_DATE %q, ignoring", raw)
		} else {
			cfg.StartDate = &d
		}
	}

	return cfg, nil
}

// ValidateGitLab checks the keys required to talk to GitLab.
func (c *Config) ValidateGitLab() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "GITLAB_BASE_URL")
	}
	if c.Token == "" {
		missing = append(missing, "GITLAB_PERSONAL_ACCESS_TOKEN")
	}
	if c.ProjectID == "" {
		missing = append(missing, "GITLAB_PROJECT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing GitLab configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
