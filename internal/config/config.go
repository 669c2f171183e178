// Package config loads engine and host settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the engine and its hosts read.
type Config struct {
	Seed      int64 `env:"CRIMSON_SEED"`
	MaxLevels int   `env:"CRIMSON_MAX_LEVELS" envDefault:"20"`
	Town      bool  `env:"CRIMSON_TOWN" envDefault:"true"`

	MapWidth           int `env:"CRIMSON_MAP_WIDTH" envDefault:"90"`
	MapHeight          int `env:"CRIMSON_MAP_HEIGHT" envDefault:"60"`
	MaxRooms           int `env:"CRIMSON_MAX_ROOMS" envDefault:"30"`
	RoomMinSize        int `env:"CRIMSON_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize        int `env:"CRIMSON_ROOM_MAX_SIZE" envDefault:"15"`
	MaxMonstersPerRoom int `env:"CRIMSON_MAX_MONSTERS_PER_ROOM" envDefault:"3"`
	MaxItemsPerRoom    int `env:"CRIMSON_MAX_ITEMS_PER_ROOM" envDefault:"2"`

	DungeonFOVRadius int `env:"CRIMSON_DUNGEON_FOV_RADIUS" envDefault:"10"`
	TownFOVRadius    int `env:"CRIMSON_TOWN_FOV_RADIUS" envDefault:"30"`

	InventoryCapacity int `env:"CRIMSON_INVENTORY_CAPACITY" envDefault:"10"`
	MaxMessages       int `env:"CRIMSON_MAX_MESSAGES" envDefault:"50"`
	StartingSilver    int `env:"CRIMSON_STARTING_SILVER" envDefault:"100"`

	LogLevel  string `env:"CRIMSON_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CRIMSON_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"CRIMSON_LOG_FILE"`

	SSHPort    int    `env:"CRIMSON_SSH_PORT" envDefault:"2222"`
	SSHHostKey string `env:"CRIMSON_SSH_HOST_KEY" envDefault:"server_host_key"`
}

// Load parses the process environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in defaults, ignoring the process environment.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Validate rejects settings the generators cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.MaxLevels < 1 {
		errs = append(errs, fmt.Errorf("MaxLevels must be >= 1, got %d", c.MaxLevels))
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if c.RoomMinSize < 3 || c.RoomMinSize > c.RoomMaxSize {
		errs = append(errs, fmt.Errorf("room size range [%d,%d] is invalid", c.RoomMinSize, c.RoomMaxSize))
	}
	if c.RoomMaxSize >= c.MapWidth || c.RoomMaxSize >= c.MapHeight {
		errs = append(errs, fmt.Errorf("RoomMaxSize %d does not fit a %dx%d map", c.RoomMaxSize, c.MapWidth, c.MapHeight))
	}
	if c.Town && (c.MapWidth < 40 || c.MapHeight < 30) {
		errs = append(errs, fmt.Errorf("town needs at least a 40x30 map, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if c.InventoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("InventoryCapacity must be >= 1, got %d", c.InventoryCapacity))
	}
	if c.MaxMessages < 1 {
		errs = append(errs, fmt.Errorf("MaxMessages must be >= 1, got %d", c.MaxMessages))
	}
	if c.DungeonFOVRadius < 1 || c.TownFOVRadius < 1 {
		errs = append(errs, errors.New("FOV radii must be >= 1"))
	}
	return errors.Join(errs...)
}

// MinLevel is the shallowest level number: 0 when the town hub exists.
func (c Config) MinLevel() int {
	if c.Town {
		return 0
	}
	return 1
}
