// Package config loads the bot's JSON configuration file (§6): the five
// groups expansion, navigation, pheromones, strategy and ships.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ExpansionConfig tunes when and where the strategic controller builds a
// new drop-off.
type ExpansionConfig struct {
	ReturnDistance    int `mapstructure:"return_distance" validate:"gte=0"`
	ExpansionDistance int `mapstructure:"expansion_distance" validate:"gte=0"`
	MinHaliteDensity  int `mapstructure:"min_halite_density" validate:"gte=0"`
	ShipRadius        int `mapstructure:"ship_radius" validate:"gte=0"`
	NShips            int `mapstructure:"n_ships" validate:"gte=0"`
}

// NavigationConfig tunes the return-map cost field and the GoHome
// end-game trigger.
type NavigationConfig struct {
	ReturnStepCost     int `mapstructure:"return_step_cost" validate:"gte=0"`
	GoHomeSafetyFactor int `mapstructure:"go_home_safety_factor" validate:"gte=0"`
}

// PheromonesConfig tunes the diffusion-decay-source pheromone PDE.
type PheromonesConfig struct {
	DiffusionCoefficient float64 `mapstructure:"diffusion_coefficient" validate:"gte=0"`
	DecayRate            float64 `mapstructure:"decay_rate" validate:"gte=0"`
	ShipAbsorbtion       float64 `mapstructure:"ship_absorbtion" validate:"gte=0"`
	ShipEvaporation      float64 `mapstructure:"ship_evaporation" validate:"gte=0"`
	TimeStep             float64 `mapstructure:"time_step" validate:"gt=0"`
	NSteps               int     `mapstructure:"n_steps" validate:"gte=1"`
}

// StrategyConfig tunes spawn decisions.
type StrategyConfig struct {
	SpawnHaliteFloor         int     `mapstructure:"spawn_halite_floor" validate:"gte=0"`
	SpawnMinRoundsLeftFactor float64 `mapstructure:"spawn_min_rounds_left_factor" validate:"gte=0"`
}

// ShipsConfig tunes per-ship behavior thresholds.
type ShipsConfig struct {
	GreedyHarvestLimit int `mapstructure:"greedy_harvest_limit" validate:"gte=0"`
	CarefulnessLimit   int `mapstructure:"carefulness_limit" validate:"gte=0"`
}

// TelemetryConfig is outside spec §6's required schema: it optionally
// turns on a post-match turn history recorded to a SQL database, for
// offline analysis across replays. Off by default so a bare config.json
// still matches §6 exactly.
type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Driver  string `mapstructure:"driver" validate:"omitempty,oneof=sqlite postgres"`
	DSN     string `mapstructure:"dsn"`
}

// Config is the full configuration document.
type Config struct {
	Expansion  ExpansionConfig  `mapstructure:"expansion"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Pheromones PheromonesConfig `mapstructure:"pheromones"`
	Strategy   StrategyConfig   `mapstructure:"strategy"`
	Ships      ShipsConfig      `mapstructure:"ships"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// LoadConfig reads configPath (default "config.json") as JSON, falling
// back to defaults for any key the file omits, then validates the
// result. Environment variables prefixed HALITE_ override file values
// (e.g. HALITE_SHIPS_CAREFULNESS_LIMIT).
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	v.SetEnvPrefix("HALITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on error.
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
