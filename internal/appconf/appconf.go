package appconf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts the -env flag value into an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port      int           `yaml:"port"`
	EnvName   string        `yaml:"env"`
	Env       Environment   `yaml:"-"`
	ApiKeys   []string      `yaml:"api_keys"`
	RateLimit int           `yaml:"rate_limit"`
	DataPath  string        `yaml:"data_path"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
	MockDelay time.Duration `yaml:"mock_delay"`
	Logging   LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{
		Port:      4000,
		EnvName:   "development",
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
		DataPath:  "nexus.db",
		CacheTTL:  5 * time.Minute,
		MockDelay: 300 * time.Millisecond,
		Logging:   LoggingConfig{Level: "info"},
	}
}

// LoadFile overlays the YAML file at path on top of cfg.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)

	return cfg, nil
}

// ParseAPIKeys splits a comma separated key list, dropping blanks.
func ParseAPIKeys(flagValue string) []string {
	var keys []string
	for _, k := range strings.Split(flagValue, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Env == Production && len(c.ApiKeys) == 0 {
		errs = append(errs, errors.New("production requires at least one api key"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("rate_limit must be non-negative"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("cache_ttl must be non-negative"))
	}
	return errors.Join(errs...)
}
