package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultAPIBaseURL = "http://127.0.0.1:8000/api"

type Config struct {
	// APIBaseURL is the root of the backend REST surface, e.g. ".../api".
	APIBaseURL string
	// StateDir holds the token file, cookie mirror, and log file.
	StateDir string
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// fileConfig is the optional YAML config persisted in the state dir.
type fileConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
	LogLevel   string `yaml:"log_level"`
}

// New resolves configuration with precedence flag > env > config file > default.
// Flag values arrive as apiURL/stateDir; empty means "not set".
func New(apiURL, stateDir string) (Config, error) {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	if stateDir == "" {
		stateDir = os.Getenv("UNIPLAN_STATE_DIR")
	}
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".uniplan")
	}

	cfg := Config{
		APIBaseURL: defaultAPIBaseURL,
		StateDir:   stateDir,
		LogLevel:   "info",
	}

	if fc, err := readFileConfig(filepath.Join(stateDir, "config.yaml")); err != nil {
		return Config{}, err
	} else {
		if fc.APIBaseURL != "" {
			cfg.APIBaseURL = fc.APIBaseURL
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
	}

	if v := os.Getenv("UNIPLAN_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("UNIPLAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	return cfg, nil
}

func readFileConfig(path string) (fileConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("decode config file: %w", err)
	}
	return fc, nil
}

func (c Config) TokenPath() string  { return filepath.Join(c.StateDir, "token.json") }
func (c Config) CookiePath() string { return filepath.Join(c.StateDir, "cookies.txt") }
func (c Config) LogPath() string    { return filepath.Join(c.StateDir, "uniplan.log") }
