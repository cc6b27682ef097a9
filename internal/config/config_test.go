package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		API: APIConfig{
			BaseURL:        "https://api.example.com/api/v1",
			TimeoutSeconds: 15,
			RatePerSecond:  5,
		},
		Credstore: CredstoreConfig{Type: "sqlite", DataDir: "/home/user/.njia/data"},
		Cache:     CacheConfig{TTLSeconds: 120},
		Export: ExportConfig{
			Type:     "s3",
			S3Bucket: "njia-exports",
			S3Prefix: "claims/",
			S3Region: "eu-west-1",
		},
		LogDir: "/home/user/.njia/log",
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.API.BaseURL != original.API.BaseURL {
		t.Errorf("API.BaseURL = %q, want %q", got.API.BaseURL, original.API.BaseURL)
	}
	if got.API.TimeoutSeconds != 15 {
		t.Errorf("API.TimeoutSeconds = %d, want 15", got.API.TimeoutSeconds)
	}
	if got.Credstore.Type != "sqlite" {
		t.Errorf("Credstore.Type = %q, want %q", got.Credstore.Type, "sqlite")
	}
	if got.Cache.TTLSeconds != 120 {
		t.Errorf("Cache.TTLSeconds = %d, want 120", got.Cache.TTLSeconds)
	}
	if got.Export.Type != "s3" {
		t.Errorf("Export.Type = %q, want %q", got.Export.Type, "s3")
	}
	if got.Export.S3Bucket != "njia-exports" {
		t.Errorf("Export.S3Bucket = %q, want %q", got.Export.S3Bucket, "njia-exports")
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig("/data/njia")

	if cfg.API.BaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("API.BaseURL = %q, want the local default", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("API.TimeoutSeconds = %d, want 10", cfg.API.TimeoutSeconds)
	}
	if cfg.Credstore.Type != "sqlite" {
		t.Errorf("Credstore.Type = %q, want sqlite", cfg.Credstore.Type)
	}
	if cfg.Credstore.DataDir != filepath.Join("/data/njia", "data") {
		t.Errorf("Credstore.DataDir = %q", cfg.Credstore.DataDir)
	}
	if cfg.LogDir != filepath.Join("/data/njia", "log") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
}

func TestReadFromFile_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := Init(path, NewConfig(dir)); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	t.Setenv("NJIA_API_BASE_URL", "https://staging.example.com/api/v1")

	cfg, err := ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if cfg.API.BaseURL != "https://staging.example.com/api/v1" {
		t.Errorf("API.BaseURL = %q, want the env override", cfg.API.BaseURL)
	}
}

func TestInit_RefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := Init(path, NewConfig(dir)); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Init(path, NewConfig(dir)); err == nil {
		t.Error("Init() over an existing file succeeded, want error")
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing after Init: %v", err)
	}
}
