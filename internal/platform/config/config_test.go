package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"shiddaha/internal/platform/config"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "shiddaha.db") {
		t.Fatalf("db path = %s", cfg.DBPath)
	}
	if cfg.CatalogPath != filepath.Join(dir, "shop.yaml") {
		t.Fatalf("catalog path = %s", cfg.CatalogPath)
	}
	if cfg.EventLogPath != filepath.Join(dir, "events.jsonl") {
		t.Fatalf("event log path = %s", cfg.EventLogPath)
	}
	if cfg.Session != config.DefaultSessionRules() {
		t.Fatalf("session rules = %+v", cfg.Session)
	}
}

func TestConfigFileOverridesSessionRules(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	const override = `
session:
  min_minutes: 10
  max_minutes: 120
  step_minutes: 10
  countdown_seconds: 3
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := config.SessionRules{MinMinutes: 10, MaxMinutes: 120, StepMinutes: 10, CountdownSeconds: 3}
	if cfg.Session != want {
		t.Fatalf("session rules = %+v, want %+v", cfg.Session, want)
	}
}

func TestInvalidSessionRulesRejected(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	const override = `
session:
  min_minutes: 60
  max_minutes: 30
  step_minutes: 5
  countdown_seconds: 5
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatal("inverted duration range accepted")
	}
}

func TestEmptyDataPathRejected(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatal("empty data path accepted")
	}
}

func TestSessionRulesValidate(t *testing.T) {
	t.Parallel()
	bad := []config.SessionRules{
		{MinMinutes: 0, MaxMinutes: 240, StepMinutes: 5, CountdownSeconds: 5},
		{MinMinutes: 5, MaxMinutes: 240, StepMinutes: 0, CountdownSeconds: 5},
		{MinMinutes: 5, MaxMinutes: 240, StepMinutes: 5, CountdownSeconds: -1},
	}
	for _, rules := range bad {
		if err := rules.Validate(); err == nil {
			t.Errorf("rules %+v validated, want error", rules)
		}
	}
	if err := config.DefaultSessionRules().Validate(); err != nil {
		t.Fatalf("default rules: %v", err)
	}
}
