// Package config provides configuration loading for the shonamorph
// server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete tool configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// AllowedOrigins is the CORS origin allowlist. "*" allows all.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SegmenterConfig selects and configures the word segmenter.
type SegmenterConfig struct {
	// Backend is "onnx" (the pretrained splitting model) or "prefix"
	// (greedy longest-known-prefix fallback).
	Backend string `yaml:"backend"`
	// ModelPath is the ONNX model file (onnx backend).
	ModelPath string `yaml:"model_path"`
	// VocabPath is the character-index JSON (onnx backend).
	VocabPath string `yaml:"vocab_path"`
	// OrtLibrary is the onnxruntime shared library path; empty uses
	// the platform default.
	OrtLibrary string `yaml:"ort_library"`
	// MaxLen is the padded input length the model was trained with.
	MaxLen int `yaml:"max_len"`
	// InputName and OutputName are the model graph tensor names.
	InputName  string `yaml:"input_name"`
	OutputName string `yaml:"output_name"`
	// Threshold is the split-score cutoff.
	Threshold float32 `yaml:"threshold"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// File appends JSON logs to a file in addition to stderr.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with working defaults: prefix
// segmenter (no model assets needed), local listen address.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Segmenter: SegmenterConfig{
			Backend:   "prefix",
			MaxLen:    30,
			Threshold: 0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Segmenter.Backend {
	case "prefix":
	case "onnx":
		if c.Segmenter.ModelPath == "" {
			return fmt.Errorf("segmenter.model_path is required for the onnx backend")
		}
		if c.Segmenter.VocabPath == "" {
			return fmt.Errorf("segmenter.vocab_path is required for the onnx backend")
		}
	default:
		return fmt.Errorf("segmenter.backend must be \"onnx\" or \"prefix\", got %q", c.Segmenter.Backend)
	}
	if c.Segmenter.MaxLen <= 0 {
		return fmt.Errorf("segmenter.max_len must be positive")
	}
	if c.Segmenter.Threshold <= 0 || c.Segmenter.Threshold >= 1 {
		return fmt.Errorf("segmenter.threshold must be in (0, 1)")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
