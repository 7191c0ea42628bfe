package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TAREFA_DB", "")
	t.Setenv("TAREFA_CATEGORY", "")
	t.Setenv("TAREFA_PRIORITY", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoragePath != "" {
		t.Errorf("Expected empty storage path, got %q", cfg.StoragePath)
	}
	if cfg.DefaultCategory != "Pessoal" {
		t.Errorf("Expected default category Pessoal, got %q", cfg.DefaultCategory)
	}
	if cfg.DefaultPriority != "low" {
		t.Errorf("Expected default priority low, got %q", cfg.DefaultPriority)
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".tarefa")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "storage_path = \"/tmp/custom.db\"\ndefault_category = \"Trabalho\"\ndefault_priority = \"high\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoragePath != "/tmp/custom.db" {
		t.Errorf("Expected /tmp/custom.db, got %q", cfg.StoragePath)
	}
	if cfg.DefaultCategory != "Trabalho" {
		t.Errorf("Expected Trabalho, got %q", cfg.DefaultCategory)
	}
	if cfg.DefaultPriority != "high" {
		t.Errorf("Expected high, got %q", cfg.DefaultPriority)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".tarefa")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_category = \"Trabalho\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("TAREFA_CATEGORY", "Estudos")
	t.Setenv("TAREFA_DB", "/tmp/env.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultCategory != "Estudos" {
		t.Errorf("Expected env to win, got %q", cfg.DefaultCategory)
	}
	if cfg.StoragePath != "/tmp/env.db" {
		t.Errorf("Expected env storage path, got %q", cfg.StoragePath)
	}
}

func TestCategoryIsCanonicalized(t *testing.T) {
	isolateHome(t)
	t.Setenv("TAREFA_CATEGORY", "trabalho")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultCategory != "Trabalho" {
		t.Errorf("Expected canonical Trabalho, got %q", cfg.DefaultCategory)
	}
}

func TestInvalidDefaultsRejected(t *testing.T) {
	isolateHome(t)

	t.Setenv("TAREFA_CATEGORY", "Inexistente")
	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown category")
	}

	t.Setenv("TAREFA_CATEGORY", "Pessoal")
	t.Setenv("TAREFA_PRIORITY", "urgent")
	if _, err := Load(); err == nil {
		t.Error("Expected error for unknown priority")
	}
}
