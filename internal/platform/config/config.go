package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SessionRules are the user-tunable focus session limits. The defaults match
// the stepper limits of the timer popup (5 minute steps, 5 minutes to 4 hours,
// a 5 second get-ready countdown).
type SessionRules struct {
	MinMinutes       int `yaml:"min_minutes"`
	MaxMinutes       int `yaml:"max_minutes"`
	StepMinutes      int `yaml:"step_minutes"`
	CountdownSeconds int `yaml:"countdown_seconds"`
}

type Config struct {
	DataPath     string       `yaml:"-"`
	DBPath       string       `yaml:"-"`
	CatalogPath  string       `yaml:"-"`
	EventLogPath string       `yaml:"-"`
	Session      SessionRules `yaml:"session"`
}

const configFile = "config.yaml"

func DefaultSessionRules() SessionRules {
	return SessionRules{MinMinutes: 5, MaxMinutes: 240, StepMinutes: 5, CountdownSeconds: 5}
}

// New resolves the data directory layout and applies overrides from an
// optional config.yaml inside it.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	cfg := Config{
		DataPath:     dataPath,
		DBPath:       filepath.Join(dataPath, "shiddaha.db"),
		CatalogPath:  filepath.Join(dataPath, "shop.yaml"),
		EventLogPath: filepath.Join(dataPath, "events.jsonl"),
		Session:      DefaultSessionRules(),
	}

	raw, err := os.ReadFile(filepath.Join(dataPath, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Session.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (r SessionRules) Validate() error {
	if r.MinMinutes <= 0 || r.MaxMinutes < r.MinMinutes {
		return fmt.Errorf("session duration range %d..%d is invalid", r.MinMinutes, r.MaxMinutes)
	}
	if r.StepMinutes <= 0 {
		return fmt.Errorf("session step must be positive, got %d", r.StepMinutes)
	}
	if r.CountdownSeconds < 0 {
		return fmt.Errorf("countdown seconds must be non-negative, got %d", r.CountdownSeconds)
	}
	return nil
}
