package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Config struct {
	GoogleCloud   GoogleCloudConfig   `yaml:"google_cloud"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Session       SessionConfig       `yaml:"session"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Notes         NotesConfig         `yaml:"notes"`
}

type GoogleCloudConfig struct {
	ProjectID              string `yaml:"project_id"`
	ServiceAccountFilename string `yaml:"service_account_filename"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type SessionConfig struct {
	IDTokenFilename string `yaml:"id_token_filename"`
}

type NotificationsConfig struct {
	Topic string `yaml:"topic"`
}

type NotesConfig struct {
	PageSize  int  `yaml:"page_size"`
	AIEnabled bool `yaml:"ai_enabled"`
}

const (
	defaultGeminiModel = "gemini-2.5-pro"
	defaultPageSize    = 10
)

func ReadConfig(filename string) (*Config, error) {
	f, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	err = yaml.Unmarshal(f, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = defaultGeminiModel
	}
	if cfg.Notes.PageSize <= 0 {
		cfg.Notes.PageSize = defaultPageSize
	}

	return cfg, nil
}
