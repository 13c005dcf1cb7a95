/*
Package config manages TOML config for spellserve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/spellserve/spellserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Search SearchConfig `toml:"search"`
	Vocab  VocabConfig  `toml:"vocab"`
}

// SearchConfig tunes the matching pipeline.
type SearchConfig struct {
	// Method is "regex", "fuzzy" or "symspell".
	Method          string  `toml:"method"`
	Limit           int     `toml:"limit"`
	ScoreCutoff     float64 `toml:"score_cutoff"`
	MaxEditDistance int     `toml:"max_edit_distance"`
	Compound        bool    `toml:"compound"`
}

// VocabConfig points at the word list directory and the active lists.
type VocabConfig struct {
	Dir   string `toml:"dir"`
	Lists string `toml:"lists"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/spellserve
// 2. ~/Library/Application Support/spellserve (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "spellserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "spellserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Method:          "fuzzy",
			Limit:           9,
			ScoreCutoff:     65,
			MaxEditDistance: 2,
			Compound:        false,
		},
		Vocab: VocabConfig{
			Dir:   "vocabularies",
			Lists: "english,english_uk",
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever valid sections a broken TOML file
// still carries, falling back to defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if searchSection, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(searchSection, &config.Search)
	}
	if vocabSection, ok := utils.ExtractSection(tempConfig, "vocab"); ok {
		extractVocabConfig(vocabSection, &config.Vocab)
	}
	return config, nil
}

// extractSearchConfig extracts search configuration from a map
func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractString(data, "method"); ok {
		search.Method = val
	}
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		search.Limit = val
	}
	if val, ok := utils.ExtractFloat64(data, "score_cutoff"); ok {
		search.ScoreCutoff = val
	}
	if val, ok := utils.ExtractInt64(data, "max_edit_distance"); ok {
		search.MaxEditDistance = val
	}
	if val, ok := utils.ExtractBool(data, "compound"); ok {
		search.Compound = val
	}
}

// extractVocabConfig extracts vocabulary configuration from a map
func extractVocabConfig(data map[string]any, vocab *VocabConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		vocab.Dir = val
	}
	if val, ok := utils.ExtractString(data, "lists"); ok {
		vocab.Lists = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
