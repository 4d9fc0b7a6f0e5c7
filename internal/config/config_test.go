package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if !cfg.AltScreen {
		t.Error("expected alt screen by default")
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("expected default model, got %q", cfg.GeminiModel)
	}
	if err := cfg.RequireGemini(); err == nil {
		t.Error("expected missing key error")
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("LOG_FILE", "escape.log")
	t.Setenv("ESCAPE_TEST_UNUSED", "")
	os.Unsetenv("ESCAPE_TEST_UNUSED")
	dotenv := "LOG_FILE=dotenv.log\nESCAPE_TEST_UNUSED=1\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFile != "escape.log" {
		t.Errorf("expected env to win over .env, got %q", cfg.LogFile)
	}
	if os.Getenv("ESCAPE_TEST_UNUSED") != "1" {
		t.Error("expected .env values to be loaded")
	}
}

func TestLoadConfigError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ESCAPE_ALT_SCREEN", "not-a-bool")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
