package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (DOCSHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("inbox-dir", os.Getenv("DOCSHIP_INBOX_DIR"), &cfg.InboxDir)
	s.setString("report-dir", os.Getenv("DOCSHIP_REPORT_DIR"), &cfg.ReportDir)
	s.setString("cert", os.Getenv("DOCSHIP_CERT_PATH"), &cfg.CertPath)
	s.setString("service-url", os.Getenv("DOCSHIP_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("auth-key", os.Getenv("DOCSHIP_AUTH_KEY"), &cfg.AuthKey)
	s.setStringsFromString("formats", os.Getenv("DOCSHIP_ACCEPTED_FORMATS"), &cfg.AcceptedFormats)

	if err := s.setIntFromString("workers", os.Getenv("DOCSHIP_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("DOCSHIP_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("DOCSHIP_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("DOCSHIP_WATCH"), &cfg.Watch)
	s.setBoolFromString("move-sent", os.Getenv("DOCSHIP_MOVE_SENT"), &cfg.MoveSent)

	return nil
}
