// Package config loads the YAML settings shared by the nlp100 commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/nlp100/internal/logging"
	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/wiki"
)

// Configuration validation errors.
var (
	ErrMissingTitle     = fmt.Errorf("%w: wiki.title is required", internalerr.ErrInvalidConfig)
	ErrInvalidTimeout   = fmt.Errorf("%w: wiki.timeout_sec must be at least 1", internalerr.ErrInvalidConfig)
	ErrInvalidCleaner   = fmt.Errorf("%w: wiki.cleaner must be one of: identity, strip-emphasis, strip-links, strip-markup", internalerr.ErrInvalidConfig)
	ErrMissingTarget    = fmt.Errorf("%w: analysis.target is required", internalerr.ErrInvalidConfig)
	ErrInvalidTopK      = fmt.Errorf("%w: analysis.top_k must be at least 1", internalerr.ErrInvalidConfig)
	ErrInvalidDriver    = fmt.Errorf("%w: store.driver must be 'memory' or 'sqlite'", internalerr.ErrInvalidConfig)
	ErrInvalidLogLevel  = fmt.Errorf("%w: logging.level must be one of: debug, info, warn, warning, error", internalerr.ErrInvalidConfig)
	ErrInvalidLogFormat = fmt.Errorf("%w: logging.format must be 'text' or 'json'", internalerr.ErrInvalidConfig)
)

// Config is the complete configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Wiki     WikiConfig     `yaml:"wiki"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Store    StoreConfig    `yaml:"store"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig names the input files. Relative names resolve against Dir.
type DataConfig struct {
	Dir          string `yaml:"dir"`
	PopularNames string `yaml:"popular_names"`
	WikiDump     string `yaml:"wiki_dump"`
	NekoText     string `yaml:"neko_text"`
	NekoTokens   string `yaml:"neko_tokens"`
	OutputDir    string `yaml:"output_dir"`
}

// Resolve joins name onto Dir unless it is absolute.
func (d DataConfig) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// WikiConfig controls chapter 3.
type WikiConfig struct {
	Title       string `yaml:"title"`
	APIEndpoint string `yaml:"api_endpoint"`
	TimeoutSec  int    `yaml:"timeout_sec"`
	UserAgent   string `yaml:"user_agent"`
	Cleaner     string `yaml:"cleaner"`
}

// Timeout returns the HTTP timeout.
func (w WikiConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSec) * time.Second
}

// CleanerKind parses Cleaner, wrapping ErrInvalidCleaner on unknown names.
func (w WikiConfig) CleanerKind() (wiki.CleanerKind, error) {
	k, ok := wiki.ParseCleanerKind(w.Cleaner)
	if !ok {
		return wiki.Identity, fmt.Errorf("%w (got %q)", ErrInvalidCleaner, w.Cleaner)
	}
	return k, nil
}

// AnalysisConfig controls chapter 4.
type AnalysisConfig struct {
	Target         string   `yaml:"target"`
	TopK           int      `yaml:"top_k"`
	HistogramWidth int      `yaml:"histogram_width"`
	ExcludePOS     []string `yaml:"exclude_pos"`
}

// StoreConfig selects where analysis runs are persisted.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration that works against ./data.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:          "data",
			PopularNames: "popular-names.txt",
			WikiDump:     "jawiki-country.json.gz",
			NekoText:     "neko.txt",
			NekoTokens:   "neko.txt.json",
			OutputDir:    "out",
		},
		Wiki: WikiConfig{
			Title:       "イギリス",
			APIEndpoint: "https://en.wikipedia.org/w/api.php",
			TimeoutSec:  15,
			Cleaner:     wiki.StripMarkup.String(),
		},
		Analysis: AnalysisConfig{
			Target:         "猫",
			TopK:           10,
			HistogramWidth: 40,
		},
		Store:   StoreConfig{Driver: "memory"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Wiki.Title) == "" {
		return ErrMissingTitle
	}
	if c.Wiki.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if _, err := c.Wiki.CleanerKind(); err != nil {
		return err
	}
	if c.Analysis.Target == "" {
		return ErrMissingTarget
	}
	if c.Analysis.TopK < 1 {
		return ErrInvalidTopK
	}
	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidDriver, c.Store.Driver)
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("%w (got %q)", ErrInvalidLogLevel, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}
