package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads and validates a scenario file.
func LoadConfig(path string) (*MissionConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg MissionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads a scenario from path, falling back to the
// default locations and finally the built-in demo scenario. Environment
// overrides apply last either way.
func LoadConfigOrDefault(path string) (*MissionConfig, error) {
	var cfg *MissionConfig
	var err error

	if path != "" {
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if cfg == nil {
		defaultPaths := []string{
			"constellation.yaml",
			filepath.Join(".", "config", "constellation.yaml"),
		}
		for _, p := range defaultPaths {
			if _, statErr := os.Stat(p); statErr == nil {
				if cfg, err = LoadConfig(p); err == nil {
					break
				}
			}
		}
	}

	if cfg == nil {
		cfg = GetDefaultConfig()
	}

	MergeWithEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the scenario to path, creating the directory if
// needed.
func SaveConfig(cfg *MissionConfig, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// MergeWithEnvironment applies CONSTELLATION_* environment variable
// overrides to the configuration.
func MergeWithEnvironment(cfg *MissionConfig) {
	if v := os.Getenv("CONSTELLATION_MISSION_NAME"); v != "" {
		cfg.Mission.Name = v
	}
	if v := os.Getenv("CONSTELLATION_PROVIDER"); v != "" {
		cfg.Engine.Provider = v
	}
	if v := os.Getenv("CONSTELLATION_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CONSTELLATION_HISTORY_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.HistoryCapacity = n
		}
	}
	if v := os.Getenv("CONSTELLATION_ORBITAL_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.OrbitalCapacity = n
		}
	}
	if v := os.Getenv("CONSTELLATION_CLOSE_RANGE_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Scanner.CloseRangeKm = f
		}
	}
}
