package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				Store:       "file",
				PostsFile:   "/data/posts.json",
				MySQLDSN:    "u:p@tcp(db)/blog",
				Watch:       &trueVal,
				Format:      "pdf",
				OutputDir:   "/out",
				ServiceURL:  "http://example.com",
				AuthKey:     "secret",
				HTTPTimeout: "30s",
				LogLevel:    "debug",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Store:       "file",
				PostsFile:   "/data/posts.json",
				MySQLDSN:    "u:p@tcp(db)/blog",
				Watch:       true,
				Format:      "pdf",
				OutputDir:   "/out",
				ServiceURL:  "http://example.com",
				AuthKey:     "secret",
				HTTPTimeout: 30 * time.Second,
				LogLevel:    "debug",
			},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{Format: "pdf", OutputDir: "/file/out"},
			changed:    map[string]bool{"format": true},
			initial:    Config{Format: "json", OutputDir: "exports"},
			expected:   Config{Format: "json", OutputDir: "/file/out"},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{HTTPTimeout: "soon"},
			changed:    map[string]bool{},
			initial:    Config{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v\nwant     %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
store = "mysql"
mysql_dsn = "app:pw@tcp(localhost:3306)/blog"
format = "yaml"
http_timeout = "5s"
watch = false
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Store != "mysql" {
		t.Errorf("Store = %v, want mysql", fc.Store)
	}
	if fc.MySQLDSN != "app:pw@tcp(localhost:3306)/blog" {
		t.Errorf("MySQLDSN = %v", fc.MySQLDSN)
	}
	if fc.Format != "yaml" {
		t.Errorf("Format = %v, want yaml", fc.Format)
	}
	if fc.HTTPTimeout != "5s" {
		t.Errorf("HTTPTimeout = %v, want 5s", fc.HTTPTimeout)
	}
	if fc.Watch == nil || *fc.Watch {
		t.Errorf("Watch = %v, want explicit false", fc.Watch)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	if _, err := LoadFileConfig("/nonexistent/path/config.toml"); err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	if err := os.WriteFile(configPath, []byte("store = \nthis is not valid toml\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.Contains(path, ".hexport") {
		t.Errorf("DefaultConfigPath() = %v, should contain .hexport", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
