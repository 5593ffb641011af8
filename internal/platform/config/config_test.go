package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"uniplan/internal/platform/config"
)

// clearEnv blanks every UNIPLAN_* variable so the host environment cannot
// leak into precedence tests.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UNIPLAN_API_URL", "")
	t.Setenv("UNIPLAN_LOG_LEVEL", "")
	t.Setenv("UNIPLAN_STATE_DIR", "")
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
}

func TestDefaultsApplyWhenNothingIsSet(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8000/api" {
		t.Fatalf("default api url = %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q", cfg.LogLevel)
	}
	if cfg.StateDir != dir {
		t.Fatalf("state dir = %q", cfg.StateDir)
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: http://file.example/api\nlog_level: debug\n")

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIBaseURL != "http://file.example/api" {
		t.Fatalf("api url = %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: http://file.example/api\nlog_level: debug\n")
	t.Setenv("UNIPLAN_API_URL", "http://env.example/api")
	t.Setenv("UNIPLAN_LOG_LEVEL", "warn")

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example/api" {
		t.Fatalf("api url = %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestFlagOverridesEverything(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: http://file.example/api\n")
	t.Setenv("UNIPLAN_API_URL", "http://env.example/api")

	cfg, err := config.New("http://flag.example/api", dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.APIBaseURL != "http://flag.example/api" {
		t.Fatalf("api url = %q", cfg.APIBaseURL)
	}
}

func TestStateDirFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("UNIPLAN_STATE_DIR", dir)

	cfg, err := config.New("", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.StateDir != dir {
		t.Fatalf("state dir = %q, want %q", cfg.StateDir, dir)
	}
}

func TestMalformedConfigFileFailsLoudly(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfigFile(t, dir, "api_base_url: [not\n")

	if _, err := config.New("", dir); err == nil {
		t.Fatalf("broken yaml must surface an error")
	}
}

func TestStatePathsDeriveFromStateDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := config.New("", dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.TokenPath() != filepath.Join(dir, "token.json") {
		t.Fatalf("token path = %q", cfg.TokenPath())
	}
	if cfg.CookiePath() != filepath.Join(dir, "cookies.txt") {
		t.Fatalf("cookie path = %q", cfg.CookiePath())
	}
	if cfg.LogPath() != filepath.Join(dir, "uniplan.log") {
		t.Fatalf("log path = %q", cfg.LogPath())
	}
}
