package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.Method != "fuzzy" {
		t.Errorf("Expected default method fuzzy, got %s", cfg.Search.Method)
	}
	if cfg.Search.Limit != 9 {
		t.Errorf("Expected default limit 9, got %d", cfg.Search.Limit)
	}
	if cfg.Search.ScoreCutoff != 65 {
		t.Errorf("Expected default cutoff 65, got %v", cfg.Search.ScoreCutoff)
	}
	if cfg.Search.MaxEditDistance != 2 {
		t.Errorf("Expected default max edit distance 2, got %d", cfg.Search.MaxEditDistance)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Search.Method != "fuzzy" {
		t.Errorf("Expected defaults, got method %s", cfg.Search.Method)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Config file not created: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Search.Method = "symspell"
	cfg.Search.Compound = true
	cfg.Vocab.Lists = "english"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Search.Method != "symspell" || !loaded.Search.Compound {
		t.Errorf("Round trip lost search settings: %+v", loaded.Search)
	}
	if loaded.Vocab.Lists != "english" {
		t.Errorf("Round trip lost vocab settings: %+v", loaded.Vocab)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[search]\nmethod = \"regex\"\nscore_cutoff = 70\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Search.Method != "regex" {
		t.Errorf("Expected method regex, got %s", cfg.Search.Method)
	}
	if cfg.Search.ScoreCutoff != 70 {
		t.Errorf("Expected cutoff 70, got %v", cfg.Search.ScoreCutoff)
	}
	// untouched keys keep defaults
	if cfg.Search.MaxEditDistance != 2 {
		t.Errorf("Expected default max edit distance, got %d", cfg.Search.MaxEditDistance)
	}
}
