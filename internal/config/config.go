// Package config loads maamarim configuration from defaults, YAML files,
// .env files and MAAMARIM_* environment variables.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

// Store backends.
const (
	BackendLocal = "local"
	BackendMinio = "minio"
)

// Default file names. They match what downstream consumers expect.
const (
	DefaultInput        = "maamarim_structured.json"
	DefaultIndexFile    = "maamarim_search_index.json"
	DefaultReportFile   = "maamarim_quick_reference.txt"
	DefaultChunksDir    = "maamarim_chunks"
	DefaultDocsDir      = "maamarim_docs"
	DefaultMasterIndex  = "maamarim_master_index.json"
	DefaultDocsPerChunk = 10
)

// ProjectConfigNames are the project config file names, in lookup order.
var ProjectConfigNames = []string{".maamarim.yaml", ".maamarim.yml", ".maamarim.toml"}

// Config is the complete maamarim configuration.
type Config struct {
	Version   int           `yaml:"version" toml:"version" json:"version"`
	Input     string        `yaml:"input" toml:"input" json:"input"`
	OutputDir string        `yaml:"output_dir" toml:"output_dir" json:"output_dir"`
	Index     IndexConfig   `yaml:"index" toml:"index" json:"index"`
	Split     SplitConfig   `yaml:"split" toml:"split" json:"split"`
	Store     StoreConfig   `yaml:"store" toml:"store" json:"store"`
	Logging   LoggingConfig `yaml:"logging" toml:"logging" json:"logging"`
	UI        UIConfig      `yaml:"ui" toml:"ui" json:"ui"`
}

// IndexConfig names the Indexer outputs.
type IndexConfig struct {
	File       string `yaml:"file" toml:"file" json:"file"`
	ReportFile string `yaml:"report_file" toml:"report_file" json:"report_file"`
}

// SplitConfig configures the Splitter.
type SplitConfig struct {
	DocsPerChunk int    `yaml:"docs_per_chunk" toml:"docs_per_chunk" json:"docs_per_chunk"`
	ChunksDir    string `yaml:"chunks_dir" toml:"chunks_dir" json:"chunks_dir"`
	DocsDir      string `yaml:"docs_dir" toml:"docs_dir" json:"docs_dir"`
	MasterIndex  string `yaml:"master_index" toml:"master_index" json:"master_index"`
}

// StoreConfig selects where artifacts are written.
type StoreConfig struct {
	// Backend is "local" (files below output_dir) or "minio".
	Backend string      `yaml:"backend" toml:"backend" json:"backend"`
	Minio   MinioConfig `yaml:"minio" toml:"minio" json:"minio"`
}

// BackendName returns Backend trimmed and lower-cased.
func (s StoreConfig) BackendName() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

// UsesMinio reports whether artifacts go to the minio backend.
func (s StoreConfig) UsesMinio() bool {
	return s.BackendName() == BackendMinio
}

// MinioConfig configures the S3-compatible backend.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint" toml:"endpoint" json:"endpoint"`
	Bucket    string `yaml:"bucket" toml:"bucket" json:"bucket"`
	Prefix    string `yaml:"prefix" toml:"prefix" json:"prefix"`
	AccessKey string `yaml:"access_key" toml:"access_key" json:"access_key"`
	SecretKey string `yaml:"secret_key" toml:"secret_key" json:"-"`
	UseSSL    bool   `yaml:"use_ssl" toml:"use_ssl" json:"use_ssl"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level" json:"level"`
}

// UIConfig configures progress display.
type UIConfig struct {
	NoTUI        bool   `yaml:"no_tui" toml:"no_tui" json:"no_tui"`
	NoColor      bool   `yaml:"no_color" toml:"no_color" json:"no_color"`
	SpinnerStyle string `yaml:"spinner_style" toml:"spinner_style" json:"spinner_style"`
}

// NewConfig returns a Config with all defaults applied.
func NewConfig() *Config {
	return &Config{
		Version:   1,
		Input:     DefaultInput,
		OutputDir: ".",
		Index: IndexConfig{
			File:       DefaultIndexFile,
			ReportFile: DefaultReportFile,
		},
		Split: SplitConfig{
			DocsPerChunk: DefaultDocsPerChunk,
			ChunksDir:    DefaultChunksDir,
			DocsDir:      DefaultDocsDir,
			MasterIndex:  DefaultMasterIndex,
		},
		Store: StoreConfig{
			Backend: BackendLocal,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		UI: UIConfig{
			SpinnerStyle: "dots",
		},
	}
}

// GetUserConfigPath returns the path to the user configuration file:
// $XDG_CONFIG_HOME/maamarim/config.yaml, or ~/.config/maamarim/config.yaml.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "maamarim", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "maamarim", "config.yaml")
	}
	return filepath.Join(home, ".config", "maamarim", "config.yaml")
}

// Load loads configuration for the working directory dir.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User config (~/.config/maamarim/config.yaml)
//  3. Project config (.maamarim.yaml, .maamarim.yml or .maamarim.toml in dir)
//  4. .env in dir (never overrides variables already set)
//  5. Environment variables (MAAMARIM_*)
//
// Command-line flags are applied by the caller on top of the result.
func Load(dir string) (*Config, error) {
	return LoadFrom(dir, "")
}

// LoadFrom is Load with an explicit config file used in place of the
// project config lookup. An empty file means the lookup in dir.
func LoadFrom(dir, file string) (*Config, error) {
	cfg := NewConfig()

	if userPath := GetUserConfigPath(); fileExists(userPath) {
		if err := cfg.loadFile(userPath); err != nil {
			return nil, err
		}
	}

	if file != "" {
		if err := cfg.loadFile(file); err != nil {
			return nil, err
		}
	} else if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	if err := LoadDotEnv(dir); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.Store.Backend = cfg.Store.BackendName()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindProjectConfig returns the project config path in dir, or "" if none.
func FindProjectConfig(dir string) string {
	for _, name := range ProjectConfigNames {
		p := filepath.Join(dir, name)
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func (c *Config) loadFromFile(dir string) error {
	if p := FindProjectConfig(dir); p != "" {
		return c.loadFile(p)
	}
	return nil
}

// loadFile merges the non-zero values of a config file into c. Files
// ending in .toml are read as TOML, everything else as YAML.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return merrors.New(merrors.ErrCodeConfigNotFound, fmt.Sprintf("config file not found: %s", path), err).
			WithDetail("path", path).
			WithSuggestion("Run 'maamarim config init' or fix the --config path")
	}
	if err != nil {
		return merrors.ConfigError(fmt.Sprintf("failed to read config file %s", path), err).
			WithDetail("path", path)
	}

	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		unmarshal = toml.Unmarshal
	}

	var parsed Config
	if err := unmarshal(data, &parsed); err != nil {
		return merrors.ConfigError(fmt.Sprintf("failed to parse config file %s: %v", path, err), err).
			WithDetail("path", path)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	if other.Version != 0 {
		c.Version = other.Version
	}
	setString(&c.Input, other.Input)
	setString(&c.OutputDir, other.OutputDir)

	setString(&c.Index.File, other.Index.File)
	setString(&c.Index.ReportFile, other.Index.ReportFile)

	// Non-positive values are kept so Validate can reject them.
	if other.Split.DocsPerChunk != 0 {
		c.Split.DocsPerChunk = other.Split.DocsPerChunk
	}
	setString(&c.Split.ChunksDir, other.Split.ChunksDir)
	setString(&c.Split.DocsDir, other.Split.DocsDir)
	setString(&c.Split.MasterIndex, other.Split.MasterIndex)

	setString(&c.Store.Backend, other.Store.Backend)
	setString(&c.Store.Minio.Endpoint, other.Store.Minio.Endpoint)
	setString(&c.Store.Minio.Bucket, other.Store.Minio.Bucket)
	setString(&c.Store.Minio.Prefix, other.Store.Minio.Prefix)
	setString(&c.Store.Minio.AccessKey, other.Store.Minio.AccessKey)
	setString(&c.Store.Minio.SecretKey, other.Store.Minio.SecretKey)
	if other.Store.Minio.UseSSL {
		c.Store.Minio.UseSSL = true
	}

	setString(&c.Logging.Level, other.Logging.Level)

	if other.UI.NoTUI {
		c.UI.NoTUI = true
	}
	if other.UI.NoColor {
		c.UI.NoColor = true
	}
	setString(&c.UI.SpinnerStyle, other.UI.SpinnerStyle)
}

// LoadDotEnv loads dir/.env into the process environment. Variables that
// are already set win. A missing file is not an error.
func LoadDotEnv(dir string) error {
	p := filepath.Join(dir, ".env")
	if !fileExists(p) {
		return nil
	}
	if err := godotenv.Load(p); err != nil {
		return merrors.ConfigError(fmt.Sprintf("failed to load %s: %v", p, err), err).
			WithDetail("path", p)
	}
	return nil
}

// applyEnvOverrides applies MAAMARIM_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	strVars := map[string]*string{
		"MAAMARIM_INPUT":            &c.Input,
		"MAAMARIM_OUTPUT_DIR":       &c.OutputDir,
		"MAAMARIM_INDEX_FILE":       &c.Index.File,
		"MAAMARIM_REPORT_FILE":      &c.Index.ReportFile,
		"MAAMARIM_CHUNKS_DIR":       &c.Split.ChunksDir,
		"MAAMARIM_DOCS_DIR":         &c.Split.DocsDir,
		"MAAMARIM_MASTER_INDEX":     &c.Split.MasterIndex,
		"MAAMARIM_STORE_BACKEND":    &c.Store.Backend,
		"MAAMARIM_MINIO_ENDPOINT":   &c.Store.Minio.Endpoint,
		"MAAMARIM_MINIO_BUCKET":     &c.Store.Minio.Bucket,
		"MAAMARIM_MINIO_PREFIX":     &c.Store.Minio.Prefix,
		"MAAMARIM_MINIO_ACCESS_KEY": &c.Store.Minio.AccessKey,
		"MAAMARIM_MINIO_SECRET_KEY": &c.Store.Minio.SecretKey,
		"MAAMARIM_LOG_LEVEL":        &c.Logging.Level,
	}
	for name, dst := range strVars {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("MAAMARIM_DOCS_PER_CHUNK"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return merrors.ConfigError(fmt.Sprintf("MAAMARIM_DOCS_PER_CHUNK must be an integer, got %q", v), err)
		}
		c.Split.DocsPerChunk = n
	}
	if v := os.Getenv("MAAMARIM_MINIO_USE_SSL"); v != "" {
		c.Store.Minio.UseSSL = parseBool(v)
	}
	if v := os.Getenv("MAAMARIM_NO_TUI"); v != "" {
		c.UI.NoTUI = parseBool(v)
	}
	return nil
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []error

	if c.Split.DocsPerChunk <= 0 {
		problems = append(problems, fmt.Errorf("split.docs_per_chunk must be a positive integer, got %d", c.Split.DocsPerChunk))
	}

	required := []struct{ name, value string }{
		{"input", c.Input},
		{"index.file", c.Index.File},
		{"index.report_file", c.Index.ReportFile},
		{"split.chunks_dir", c.Split.ChunksDir},
		{"split.docs_dir", c.Split.DocsDir},
		{"split.master_index", c.Split.MasterIndex},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, fmt.Errorf("%s must not be empty", r.name))
		}
	}

	switch c.Store.BackendName() {
	case BackendLocal:
	case BackendMinio:
		if c.Store.Minio.Endpoint == "" {
			problems = append(problems, fmt.Errorf("store.minio.endpoint is required for the minio backend"))
		}
		if c.Store.Minio.Bucket == "" {
			problems = append(problems, fmt.Errorf("store.minio.bucket is required for the minio backend"))
		}
	default:
		problems = append(problems, fmt.Errorf("store.backend must be 'local' or 'minio', got %s", c.Store.Backend))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		problems = append(problems, fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level))
	}

	if len(problems) == 0 {
		return nil
	}
	err := stderrors.Join(problems...)
	return merrors.ConfigError("invalid configuration: "+strings.ReplaceAll(err.Error(), "\n", "; "), err).
		WithSuggestion("Check .maamarim.yaml and MAAMARIM_* environment variables")
}

// YAML renders the configuration.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, merrors.InternalError("failed to marshal config", err)
	}
	return data, nil
}

// Redacted returns a copy safe for display, with secrets masked.
func (c *Config) Redacted() *Config {
	out := *c
	if out.Store.Minio.SecretKey != "" {
		out.Store.Minio.SecretKey = "********"
	}
	return &out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
