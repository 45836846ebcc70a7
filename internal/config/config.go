// Package config loads robotlog settings from YAML files and the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"robotlog/internal/logging"
)

// FileName is looked up in the home and working directories.
const FileName = ".robotlog.yaml"

type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogPretty bool   `yaml:"log_pretty"`
	// Trace logs every state transition at debug level.
	Trace bool `yaml:"trace"`
	// Render draws the room after a run.
	Render bool `yaml:"render"`
}

// Load reads the user-level config, then the project-level one, then the
// file at path if set, each overriding the previous. Environment variables
// win over all files.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if home, err := os.UserHomeDir(); err == nil {
		if err := loadIfExists(filepath.Join(home, FileName), cfg); err != nil {
			return nil, errors.Wrap(err, "error loading user config")
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "could not get working directory")
	}
	if err := loadIfExists(filepath.Join(wd, FileName), cfg); err != nil {
		return nil, errors.Wrap(err, "error loading project config")
	}

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "error loading config %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadIfExists(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFromFile(path, cfg)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// fields present in the file replace earlier values
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnvOrDefault("ROBOTLOG_LOG_LEVEL", c.LogLevel)

	for name, dst := range map[string]*bool{
		"ROBOTLOG_LOG_PRETTY": &c.LogPretty,
		"ROBOTLOG_TRACE":      &c.Trace,
		"ROBOTLOG_RENDER":     &c.Render,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s value", name)
		}
		*dst = b
	}
	return nil
}

// WithDefaults sets default values for fields that aren't set.
func (c *Config) WithDefaults() *Config {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	return c
}

func (c *Config) Validate() error {
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Logging returns the logger settings described by c.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level, _ = logging.ParseLevel(c.LogLevel)
	lc.Pretty = c.LogPretty
	return lc
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
