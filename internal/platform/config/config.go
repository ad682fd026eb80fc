package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultHTTPTimeout = 15 * time.Second

type Config struct {
	APIURL      string
	StateDir    string
	HTTPTimeout time.Duration
	Debug       bool

	CredentialPath string
	JournalDBPath  string
	LogPath        string
}

type fileConfig struct {
	APIURL             string `yaml:"api_url"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	Debug              bool   `yaml:"debug"`
}

// New resolves the client configuration. The state directory holds the
// credential slot, the commit journal, the debug log, and an optional
// config.yaml. Precedence: explicit stateDir argument, TRAK_STATE_DIR, then
// the user config dir. TRAK_API_URL overrides the file's api_url.
func New(stateDir string) (Config, error) {
	if stateDir == "" {
		stateDir = os.Getenv("TRAK_STATE_DIR")
	}
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve state dir: %w", err)
		}
		stateDir = filepath.Join(base, "trak")
	}

	cfg := Config{
		StateDir:    stateDir,
		HTTPTimeout: defaultHTTPTimeout,
	}

	payload, err := os.ReadFile(filepath.Join(stateDir, "config.yaml"))
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(payload, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
		cfg.APIURL = fc.APIURL
		cfg.Debug = fc.Debug
		if fc.HTTPTimeoutSeconds > 0 {
			cfg.HTTPTimeout = time.Duration(fc.HTTPTimeoutSeconds) * time.Second
		}
	}

	if v := os.Getenv("TRAK_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if cfg.APIURL == "" {
		return Config{}, fmt.Errorf("api url is required (set api_url in %s or TRAK_API_URL)", filepath.Join(stateDir, "config.yaml"))
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	cfg.CredentialPath = filepath.Join(stateDir, "credential.json")
	cfg.JournalDBPath = filepath.Join(stateDir, "journal.db")
	cfg.LogPath = filepath.Join(stateDir, "trak.log")
	return cfg, nil
}
