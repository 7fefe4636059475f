package config

import "testing"

func TestLoadLogDefaults(t *testing.T) {
	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "info" {
		t.Fatalf("Level = %q, want info", cfg.Level)
	}
	if cfg.File != "" || cfg.MaxMB != 10 {
		t.Fatalf("file defaults = %q/%d, want empty/10", cfg.File, cfg.MaxMB)
	}
}

func TestLoadLogParse(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/casino.log")
	t.Setenv("LOG_MAX_MB", "5")

	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("LoadLog() error = %v", err)
	}
	if cfg.Level != "debug" || cfg.File != "/tmp/casino.log" || cfg.MaxMB != 5 {
		t.Fatalf("unexpected log config: %+v", cfg)
	}
}
