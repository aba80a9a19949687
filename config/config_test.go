package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Segmenter.Backend != "prefix" {
		t.Errorf("expected default backend prefix, got %s", cfg.Segmenter.Backend)
	}
	if cfg.Segmenter.MaxLen != 30 {
		t.Errorf("expected default max_len 30, got %d", cfg.Segmenter.MaxLen)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid onnx config",
			modify: func(c *Config) {
				c.Segmenter.Backend = "onnx"
				c.Segmenter.ModelPath = "model.onnx"
				c.Segmenter.VocabPath = "vocab.json"
			},
			wantErr: false,
		},
		{
			name:    "missing addr",
			modify:  func(c *Config) { c.Server.Addr = "" },
			wantErr: true,
		},
		{
			name:    "unknown backend",
			modify:  func(c *Config) { c.Segmenter.Backend = "tensorflow" },
			wantErr: true,
		},
		{
			name:    "onnx without model path",
			modify:  func(c *Config) { c.Segmenter.Backend = "onnx" },
			wantErr: true,
		},
		{
			name: "onnx without vocab path",
			modify: func(c *Config) {
				c.Segmenter.Backend = "onnx"
				c.Segmenter.ModelPath = "model.onnx"
			},
			wantErr: true,
		},
		{
			name:    "non-positive max_len",
			modify:  func(c *Config) { c.Segmenter.MaxLen = 0 },
			wantErr: true,
		},
		{
			name:    "threshold too high",
			modify:  func(c *Config) { c.Segmenter.Threshold = 1.0 },
			wantErr: true,
		},
		{
			name:    "threshold too low",
			modify:  func(c *Config) { c.Segmenter.Threshold = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
server:
  addr: ":9090"
  allowed_origins: ["https://example.org"]
segmenter:
  backend: onnx
  model_path: /models/splitter.onnx
  vocab_path: /models/vocab.json
  max_len: 40
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %s, want :9090", cfg.Server.Addr)
	}
	if cfg.Segmenter.Backend != "onnx" || cfg.Segmenter.MaxLen != 40 {
		t.Errorf("segmenter = %+v, want onnx backend with max_len 40", cfg.Segmenter)
	}
	// Unset fields keep their defaults.
	if cfg.Segmenter.Threshold != 0.5 {
		t.Errorf("threshold = %f, want default 0.5", cfg.Segmenter.Threshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config does not validate: %v", err)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFromFile on a missing file returned nil error")
	}

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(badPath, []byte("server: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(badPath); err == nil {
		t.Error("LoadFromFile on invalid YAML returned nil error")
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":7070"

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Server.Addr != ":7070" {
		t.Errorf("round-tripped addr = %s, want :7070", loaded.Server.Addr)
	}
}
