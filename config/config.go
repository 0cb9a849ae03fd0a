// Package config loads game settings from an optional YAML file on top of built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/space-miner/constants"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

const (
	appDirName     = ".space-miner"
	configFileName = "config.yaml"
	scoresFileName = "scores.db"
)

// FieldConfig is the playable area inside the border
type FieldConfig struct {
	Width, Height int
}

// TimingConfig drives the simulation and render tickers
type TimingConfig struct {
	TickInterval  time.Duration
	FrameInterval time.Duration
}

// FuelConfig controls the fuel economy
type FuelConfig struct {
	Max           float64
	ActionBurn    float64
	IdleBurn      float64
	CrystalRefuel float64
	LowThreshold  float64 // Fraction of Max
}

// SpawnConfig controls asteroid pressure and resource supply
type SpawnConfig struct {
	InitialRate        int
	RateStep           int
	MinRate            int
	DifficultyInterval int
	MaxAsteroids       int
	ResourceInterval   int
	MaxResources       int
}

// StorageConfig locates the score database
type StorageConfig struct {
	Enabled bool
	Path    string
}

// Config is the fully resolved game configuration
type Config struct {
	Field  FieldConfig
	Timing TimingConfig
	Fuel   FuelConfig
	Spawn  SpawnConfig

	ScorePerMine int

	// Seed for the simulation RNG, 0 selects a time-based seed
	Seed uint64

	AudioEnabled bool
	Storage      StorageConfig

	// SpectateAddr enables the websocket spectator feed when non-empty
	SpectateAddr string

	Debug bool

	// Keys maps intent names to key names, merged over the default bindings
	Keys map[string][]string
}

// AppDir returns the per-user directory holding config and scores
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

// DefaultPath is the config file location used when no -config flag is given
func DefaultPath() string {
	return filepath.Join(AppDir(), configFileName)
}

// SetDefaults registers every key with its built-in value
func SetDefaults(v *viper.Viper) {
	v.SetDefault("field.width", constants.FieldWidth)
	v.SetDefault("field.height", constants.FieldHeight)

	v.SetDefault("timing.tick_interval", constants.GameUpdateInterval)
	v.SetDefault("timing.frame_interval", constants.FrameUpdateInterval)

	v.SetDefault("fuel.max", constants.MaxFuel)
	v.SetDefault("fuel.action_burn", constants.FuelActionBurn)
	v.SetDefault("fuel.idle_burn", constants.FuelIdleBurn)
	v.SetDefault("fuel.crystal_refuel", constants.CrystalRefuel)
	v.SetDefault("fuel.low_threshold", constants.FuelLowThreshold)

	v.SetDefault("spawn.initial_rate", constants.InitialSpawnRate)
	v.SetDefault("spawn.rate_step", constants.SpawnRateStep)
	v.SetDefault("spawn.min_rate", constants.MinSpawnRate)
	v.SetDefault("spawn.difficulty_interval", constants.DifficultyInterval)
	v.SetDefault("spawn.max_asteroids", constants.MaxAsteroids)
	v.SetDefault("spawn.resource_interval", constants.ResourceSpawnInterval)
	v.SetDefault("spawn.max_resources", constants.MaxResources)

	v.SetDefault("score.per_mine", constants.ScorePerMine)
	v.SetDefault("seed", 0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("storage.enabled", true)
	v.SetDefault("storage.path", filepath.Join(AppDir(), scoresFileName))
	v.SetDefault("spectate.addr", "")
	v.SetDefault("debug", false)
	v.SetDefault("keys", map[string][]string{})
}

// Default returns the configuration with no file applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	return fromViper(v)
}

// Load reads path over the defaults, a missing file is not an error
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaults creates path with every default key, it refuses to overwrite
func WriteDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Field: FieldConfig{
			Width:  v.GetInt("field.width"),
			Height: v.GetInt("field.height"),
		},
		Timing: TimingConfig{
			TickInterval:  v.GetDuration("timing.tick_interval"),
			FrameInterval: v.GetDuration("timing.frame_interval"),
		},
		Fuel: FuelConfig{
			Max:           v.GetFloat64("fuel.max"),
			ActionBurn:    v.GetFloat64("fuel.action_burn"),
			IdleBurn:      v.GetFloat64("fuel.idle_burn"),
			CrystalRefuel: v.GetFloat64("fuel.crystal_refuel"),
			LowThreshold:  v.GetFloat64("fuel.low_threshold"),
		},
		Spawn: SpawnConfig{
			InitialRate:        v.GetInt("spawn.initial_rate"),
			RateStep:           v.GetInt("spawn.rate_step"),
			MinRate:            v.GetInt("spawn.min_rate"),
			DifficultyInterval: v.GetInt("spawn.difficulty_interval"),
			MaxAsteroids:       v.GetInt("spawn.max_asteroids"),
			ResourceInterval:   v.GetInt("spawn.resource_interval"),
			MaxResources:       v.GetInt("spawn.max_resources"),
		},
		ScorePerMine: v.GetInt("score.per_mine"),
		Seed:         v.GetUint64("seed"),
		AudioEnabled: v.GetBool("audio.enabled"),
		Storage: StorageConfig{
			Enabled: v.GetBool("storage.enabled"),
			Path:    v.GetString("storage.path"),
		},
		SpectateAddr: v.GetString("spectate.addr"),
		Debug:        v.GetBool("debug"),
		Keys:         v.GetStringMapStringSlice("keys"),
	}
}

// Validate checks the invariants the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Field.Width < constants.ShipWidth || c.Field.Height < constants.ShipHeight:
		return fmt.Errorf("%w: field %dx%d smaller than ship", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Timing.TickInterval <= 0 || c.Timing.FrameInterval <= 0:
		return fmt.Errorf("%w: intervals must be positive", ErrInvalid)
	case c.Fuel.Max <= 0:
		return fmt.Errorf("%w: fuel.max must be positive", ErrInvalid)
	case c.Fuel.ActionBurn < 0 || c.Fuel.IdleBurn < 0 || c.Fuel.CrystalRefuel < 0:
		return fmt.Errorf("%w: fuel rates must not be negative", ErrInvalid)
	case c.Fuel.LowThreshold < 0 || c.Fuel.LowThreshold > 1:
		return fmt.Errorf("%w: fuel.low_threshold must be within [0,1]", ErrInvalid)
	case c.Spawn.MinRate < 1 || c.Spawn.InitialRate < c.Spawn.MinRate:
		return fmt.Errorf("%w: spawn rates need 1 <= min_rate <= initial_rate", ErrInvalid)
	case c.Spawn.RateStep < 0:
		return fmt.Errorf("%w: spawn.rate_step must not be negative", ErrInvalid)
	case c.Spawn.DifficultyInterval < 1 || c.Spawn.ResourceInterval < 1:
		return fmt.Errorf("%w: spawn intervals must be at least one tick", ErrInvalid)
	case c.Spawn.MaxAsteroids < 0 || c.Spawn.MaxResources < 0:
		return fmt.Errorf("%w: spawn caps must not be negative", ErrInvalid)
	case c.ScorePerMine < 0:
		return fmt.Errorf("%w: score.per_mine must not be negative", ErrInvalid)
	case c.Storage.Enabled && c.Storage.Path == "":
		return fmt.Errorf("%w: storage.path is required when storage is enabled", ErrInvalid)
	}
	return nil
}
