package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Directory the generated file is written to
	OutputDir string

	// Dotenv file consulted for environment overrides
	EnvFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	OutputDir string
	DryRun    bool
	Quiet     bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		EnvFile:   DefaultEnvFile,
	}
}

// Load creates a config, applies the environment and then the flags.
// Flags win over the environment, which wins over defaults.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	cfg.Apply(flags)
	return cfg, nil
}

// LoadEnv reads the dotenv file, if any, and picks up environment overrides.
// A missing dotenv file is not an error.
func (c *Config) LoadEnv() error {
	envPath := c.EnvFile
	if p := os.Getenv(EnvEnvFile); p != "" {
		envPath = p
	}
	if envPath != "" {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
	return nil
}

// Apply stores the flags and lets them override earlier settings
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
}

// GetOutputDir returns the output directory, falling back to the default
func (c *Config) GetOutputDir() string {
	if c.OutputDir == "" {
		return DefaultOutputDir
	}
	return c.OutputDir
}

// GetOutputPath returns where a file with the given name is written
func (c *Config) GetOutputPath(fileName string) string {
	return filepath.Join(c.GetOutputDir(), fileName)
}
