package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	InboxDir        string   `toml:"inbox_dir"`
	ReportDir       string   `toml:"report_dir"`
	CertPath        string   `toml:"cert_path"`
	ServiceURL      string   `toml:"service_url"`
	AuthKey         string   `toml:"auth_key"`
	AcceptedFormats []string `toml:"accepted_formats"`
	Workers         int      `toml:"workers"`
	HTTPTimeout     string   `toml:"http_timeout"`
	Watch           *bool    `toml:"watch"`
	Debounce        string   `toml:"debounce"`
	MoveSent        *bool    `toml:"move_sent"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.docship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".docship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("inbox-dir", fc.InboxDir, &cfg.InboxDir)
	s.setString("report-dir", fc.ReportDir, &cfg.ReportDir)
	s.setString("cert", fc.CertPath, &cfg.CertPath)
	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("auth-key", fc.AuthKey, &cfg.AuthKey)
	s.setStrings("formats", fc.AcceptedFormats, &cfg.AcceptedFormats)

	s.setInt("workers", fc.Workers, &cfg.Workers)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("move-sent", fc.MoveSent, &cfg.MoveSent)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
