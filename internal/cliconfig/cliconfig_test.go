package cliconfig

import "testing"

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/bridgebid.hcl")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Display.HandFormat != "pbn" {
		t.Fatalf("Display.HandFormat = %q, want pbn", cfg.Display.HandFormat)
	}
}
