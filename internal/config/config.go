package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sim holds all configuration for the simulation driver.
type Sim struct {
	LogLevel string `yaml:"log_level"`

	// Tick loop
	TickIntervalMs  int `yaml:"tick_interval_ms"`
	MaxCatchUpTicks int `yaml:"max_catch_up_ticks"`

	// Run shape
	RoomsPerFloor int `yaml:"rooms_per_floor"`
	FinalFloor    int `yaml:"final_floor"`

	// ScalingMode selects the difficulty curve: "linear" or
	// "exponential". Chosen once at generator construction.
	ScalingMode string `yaml:"scaling_mode"`

	Rates Rates `yaml:"rates"`

	// Persistence (optional)
	Database            DatabaseConfig `yaml:"database"`
	AutosaveIntervalSec int            `yaml:"autosave_interval_sec"`
}

// Rates holds tunable reward/drop multipliers. These are balancing
// data, not invariants.
type Rates struct {
	XPMultiplier         float64 `yaml:"xp_multiplier"`
	GoldMultiplier       float64 `yaml:"gold_multiplier"`
	DropChanceMultiplier float64 `yaml:"drop_chance_multiplier"`
	PityThreshold        int     `yaml:"pity_threshold"`
	PityShift            float64 `yaml:"pity_shift"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the run
// snapshot store.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSim returns Sim config with sensible defaults.
func DefaultSim() Sim {
	return Sim{
		LogLevel:        "info",
		TickIntervalMs:  100,
		MaxCatchUpTicks: 5,
		RoomsPerFloor:   5,
		FinalFloor:      5,
		ScalingMode:     "exponential",
		Rates: Rates{
			XPMultiplier:         1.0,
			GoldMultiplier:       1.0,
			DropChanceMultiplier: 1.0,
			PityThreshold:        4,
			PityShift:            0.35,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "descent",
			Password: "descent",
			DBName:   "descent",
			SSLMode:  "disable",
		},
		AutosaveIntervalSec: 30,
	}
}

// Load loads sim config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Sim, error) {
	cfg := DefaultSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
