package cliconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable hexport reads.
const EnvPrefix = "HEXPORT_"

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set keep their values. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" || !FileExists(path) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnvConfig applies configuration from environment variables (HEXPORT_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("store", os.Getenv(EnvPrefix+"STORE"), &cfg.Store)
	s.setString("posts-file", os.Getenv(EnvPrefix+"POSTS_FILE"), &cfg.PostsFile)
	s.setString("mysql-dsn", os.Getenv(EnvPrefix+"MYSQL_DSN"), &cfg.MySQLDSN)
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("out", os.Getenv(EnvPrefix+"OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("service-url", os.Getenv(EnvPrefix+"SERVICE_URL"), &cfg.ServiceURL)
	s.setString("auth-key", os.Getenv(EnvPrefix+"AUTH_KEY"), &cfg.AuthKey)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv(EnvPrefix+"HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	return s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)
}
