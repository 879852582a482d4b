package cliconfig

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/hexport/internal/adapters/export"
	"github.com/bft-labs/hexport/internal/domain"
)

// Post stores.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreMySQL  = "mysql"
)

// Config holds CLI configuration for hexport.
type Config struct {
	Store     string
	PostsFile string
	MySQLDSN  string
	Watch     bool

	Format    string
	OutputDir string

	ServiceURL  string
	AuthKey     string
	HTTPTimeout time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Store:       StoreMemory,
		Format:      export.FormatCSV,
		OutputDir:   "exports",
		HTTPTimeout: 15 * time.Second,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))

	switch c.Store {
	case StoreMemory:
	case StoreFile:
		if c.PostsFile == "" {
			return fmt.Errorf("%w: posts-file is required for the file store", domain.ErrInvalidConfig)
		}
	case StoreMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("%w: mysql-dsn is required for the mysql store", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedStore, c.Store)
	}

	if c.Watch && c.Store != StoreFile {
		return fmt.Errorf("%w: watch only applies to the file store", domain.ErrInvalidConfig)
	}

	if !slices.Contains(export.Formats(), c.Format) {
		return fmt.Errorf("%w: %q (want one of %s)", domain.ErrUnsupportedFormat, c.Format, strings.Join(export.Formats(), ", "))
	}

	if c.Format == export.FormatHTTP && c.ServiceURL == "" {
		return fmt.Errorf("%w: service-url is required for http export", domain.ErrInvalidConfig)
	}

	// Ensure no trailing slash
	c.ServiceURL = strings.TrimRight(c.ServiceURL, "/")

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Masked returns a copy safe to log.
func (c Config) Masked() Config {
	if c.AuthKey != "" {
		c.AuthKey = "*****"
	}
	if c.MySQLDSN != "" {
		c.MySQLDSN = maskDSN(c.MySQLDSN)
	}
	return c
}

// maskDSN hides the password in user:password@host DSNs.
func maskDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	if at < 0 {
		return dsn
	}
	creds := dsn[:at]
	colon := strings.Index(creds, ":")
	if colon < 0 {
		return dsn
	}
	return creds[:colon] + ":*****" + dsn[at:]
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
