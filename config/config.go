// Copyright 2026 Inklab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the application configuration from a YAML file,
// falling back to defaults when no file is present.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StorageConfig configures the document store.
type StorageConfig struct {
	// Path is the on-disk location of the database. Ignored when InMemory is set.
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// IntakeConfig configures document upload handling.
type IntakeConfig struct {
	// UploadDir is where uploaded files are persisted before extraction.
	UploadDir string `yaml:"upload_dir"`
}

// LLMConfig contains connection details for an OpenAI-compatible endpoint
// used for keyword and entity extraction.
type LLMConfig struct {
	Host      string `yaml:"host"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// ExtractionConfig selects and configures the extraction provider.
type ExtractionConfig struct {
	// Provider is "local" or "llm".
	Provider    string     `yaml:"provider"`
	MaxKeywords int        `yaml:"max_keywords"`
	LLM         *LLMConfig `yaml:"llm,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Storage    StorageConfig    `yaml:"storage"`
	Intake     IntakeConfig     `yaml:"intake"`
	Extraction ExtractionConfig `yaml:"extraction"`
	LogLevel   string           `yaml:"log_level"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// APIKey resolves the LLM API key from the configured environment variable.
func (c *LLMConfig) APIKey() string {
	if c == nil || c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// Default returns the configuration used when no config file exists.
func Default() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "docstream.db"
	}
	if cfg.Intake.UploadDir == "" {
		cfg.Intake.UploadDir = "uploaded_files"
	}
	if cfg.Extraction.Provider == "" {
		cfg.Extraction.Provider = "local"
	}
	if cfg.Extraction.MaxKeywords == 0 {
		cfg.Extraction.MaxKeywords = 10
	}
	if cfg.Extraction.Provider == "llm" {
		if cfg.Extraction.LLM == nil {
			cfg.Extraction.LLM = &LLMConfig{}
		}
		if cfg.Extraction.LLM.Host == "" {
			cfg.Extraction.LLM.Host = "http://localhost:11434/v1"
		}
		if cfg.Extraction.LLM.Model == "" {
			cfg.Extraction.LLM.Model = "qwen2.5:3b"
		}
		if cfg.Extraction.LLM.APIKeyEnv == "" {
			cfg.Extraction.LLM.APIKeyEnv = "DOCSTREAM_API_KEY"
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
