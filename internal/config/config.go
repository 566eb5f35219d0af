package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names a config file to use when none is given on the command line.
const EnvVar = "CLITE_CONFIG"

// Config holds the command line tool settings
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Trace  TraceConfig  `toml:"trace" yaml:"trace"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

type TraceConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	Listing bool `toml:"listing" yaml:"listing"`
	// Preview is the number of upcoming lexemes shown after a rule name.
	Preview int `toml:"preview" yaml:"preview"`
}

type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

var (
	LogLevels     = []string{"debug", "info", "warn", "error"}
	OutputFormats = []string{"litter", "sexpr", "yaml"}
)

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, picked by extension. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by CLITE_CONFIG, falling back to the
// defaults when it is unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvVar))
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Trace.Preview == 0 {
		c.Trace.Preview = 11
	}
	if c.Output.Format == "" {
		c.Output.Format = "litter"
	}
}

func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level %q, want one of %s", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q, want one of %s", c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if c.Trace.Preview < 0 {
		return fmt.Errorf("invalid trace preview %d", c.Trace.Preview)
	}

	return nil
}
