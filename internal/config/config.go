package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config - Settings for the command line tool
type Config struct {
	// DataDir is where data files are created
	DataDir string `yaml:"data_dir"`
	// WorkDir is where merge sort creates its working directory, empty means the system temp dir
	WorkDir string `yaml:"work_dir"`
	// Seed is the default seed for generated data
	Seed int64 `yaml:"seed"`

	HashTable HashTableConfig `yaml:"hash_table"`
	Log       LogConfig       `yaml:"log"`
}

// HashTableConfig - Hash table settings
type HashTableConfig struct {
	InitialCapacity int `yaml:"initial_capacity"`
}

// LogConfig - Logging settings
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Environment variables overriding the file
const (
	EnvDataDir = "FILESTRUCTS_DATA_DIR"
	EnvWorkDir = "FILESTRUCTS_WORK_DIR"
)

// Default - Returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		DataDir:   ".",
		Seed:      1,
		HashTable: HashTableConfig{InitialCapacity: 16},
	}
}

// Load - Reads a YAML configuration file on top of the defaults. A missing file gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save - Writes the configuration as YAML, creating the directory if needed
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate - Checks values that can not be defaulted
func (c *Config) Validate() error {
	if c.HashTable.InitialCapacity <= 0 {
		return fmt.Errorf("hash_table.initial_capacity must be greater than zero, got %d", c.HashTable.InitialCapacity)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if dir := os.Getenv(EnvWorkDir); dir != "" {
		c.WorkDir = dir
	}
}
