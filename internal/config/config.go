// Package config loads lovepet settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"lovepet/internal/domain/growth"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"

	DefaultPetID = "pet-1"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
	Pet     PetConfig     `yaml:"pet"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type StoreConfig struct {
	// Driver is one of memory, sqlite or postgres.
	Driver     string `yaml:"driver"`
	DSN        string `yaml:"dsn,omitempty"`
	SQLitePath string `yaml:"sqlite_path,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PetConfig struct {
	ID string `yaml:"id"`
	// GrowthProfile is accelerated or production.
	GrowthProfile string `yaml:"growth_profile"`
	// RandomSeed of 0 seeds from the clock.
	RandomSeed uint64 `yaml:"random_seed"`
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080"},
		Store:   StoreConfig{Driver: StoreMemory, SQLitePath: "lovepet.db"},
		Logging: LoggingConfig{Level: "info"},
		Pet: PetConfig{
			ID:            DefaultPetID,
			GrowthProfile: growth.ProfileAccelerated,
		},
	}
}

// Load reads path when it is non-empty and exists, then applies env overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			fileCfg, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			cfg = fileCfg
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Store.DSN = os.ExpandEnv(cfg.Store.DSN)
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite store")
		}
	case StorePostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("dsn is required for the postgres store")
		}
	default:
		return fmt.Errorf("invalid store driver: %s (valid: memory, sqlite, postgres)", c.Store.Driver)
	}

	if _, err := growth.TableByProfile(c.Pet.GrowthProfile); err != nil {
		return err
	}
	if strings.TrimSpace(c.Pet.ID) == "" {
		return fmt.Errorf("pet id must not be empty")
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOVEPET_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOVEPET_STORE"); v != "" {
		cfg.Store.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("LOVEPET_DB_DSN"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("LOVEPET_SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("LOVEPET_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOVEPET_RANDOM_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Pet.RandomSeed = n
		}
	}
	if v := os.Getenv("LOVEPET_GROWTH_PROFILE"); v != "" {
		cfg.Pet.GrowthProfile = v
	}
	if v := os.Getenv("LOVEPET_PET_ID"); v != "" {
		cfg.Pet.ID = v
	}
}
