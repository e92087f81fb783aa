package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors int

	// Run history sink, empty disables it
	MySQLDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Processors int
	NameFilter string
	FailFast   bool
	NoSave     bool
	TestCases  bool
	Plain      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		Flags:          Flags{Processors: DefaultProcessors},
	}
}

// Load creates a config from defaults, the project .env file and the environment,
// then applies flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadEnv reads the project .env file (if any) and applies ATH_* overrides.
// Variables already set in the process environment win over the file.
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	if v := os.Getenv(EnvProcessors); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvProcessors, v)
		}
		c.Processors = n
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputJSONDir = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		c.OutputJSONFile = v
	}
	c.MySQLDSN = os.Getenv(EnvMySQLDSN)
	return nil
}

// ApplyFlags stores flags and lets them override loaded values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Workers returns the number of workers to use, never less than one
func (c *Config) Workers() int {
	if c.Processors <= 0 {
		return 1
	}
	return c.Processors
}
