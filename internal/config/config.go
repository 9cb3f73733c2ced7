package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the bot
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Heuristic HeuristicConfig `mapstructure:"heuristic"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HeuristicConfig holds every tunable of the move scorer
type HeuristicConfig struct {
	Early PhaseWeightsConfig `mapstructure:"early"`
	Mid   PhaseWeightsConfig `mapstructure:"mid"`
	Late  PhaseWeightsConfig `mapstructure:"late"`

	EarlyCutoff float64 `mapstructure:"early_cutoff"`
	LateCutoff  float64 `mapstructure:"late_cutoff"`

	AggressionBonus    int `mapstructure:"aggression_bonus"`
	ConnectivityRadius int `mapstructure:"connectivity_radius"`
	ConnectivityScale  int `mapstructure:"connectivity_scale"`
}

// PhaseWeightsConfig holds the scoring weights for one game phase
type PhaseWeightsConfig struct {
	Territory int `mapstructure:"territory"`
	Liberties int `mapstructure:"liberties"`
	Pressure  int `mapstructure:"pressure"`
	Heat      int `mapstructure:"heat"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Early game: expansion and open space
	v.SetDefault("heuristic.early.territory", 150)
	v.SetDefault("heuristic.early.liberties", 40)
	v.SetDefault("heuristic.early.pressure", 15)
	v.SetDefault("heuristic.early.heat", -5)

	// Mid game: balance expansion with pressure
	v.SetDefault("heuristic.mid.territory", 120)
	v.SetDefault("heuristic.mid.liberties", 20)
	v.SetDefault("heuristic.mid.pressure", 35)
	v.SetDefault("heuristic.mid.heat", -15)

	// Late game: grab cells and choke
	v.SetDefault("heuristic.late.territory", 200)
	v.SetDefault("heuristic.late.liberties", 10)
	v.SetDefault("heuristic.late.pressure", 50)
	v.SetDefault("heuristic.late.heat", -25)

	v.SetDefault("heuristic.early_cutoff", 0.35)
	v.SetDefault("heuristic.late_cutoff", 0.70)
	v.SetDefault("heuristic.aggression_bonus", 20)
	v.SetDefault("heuristic.connectivity_radius", 10)
	v.SetDefault("heuristic.connectivity_scale", 10)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("FILLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Validate checks that the loaded configuration is usable
func Validate(c *Config) error {
	h := c.Heuristic
	if h.EarlyCutoff <= 0 || h.EarlyCutoff >= 1 {
		return fmt.Errorf("heuristic.early_cutoff must be in (0, 1), got %v", h.EarlyCutoff)
	}
	if h.LateCutoff <= h.EarlyCutoff || h.LateCutoff > 1 {
		return fmt.Errorf("heuristic.late_cutoff must be in (early_cutoff, 1], got %v", h.LateCutoff)
	}
	if h.ConnectivityRadius < 0 {
		return fmt.Errorf("heuristic.connectivity_radius must be non-negative, got %d", h.ConnectivityRadius)
	}
	for phase, w := range map[string]PhaseWeightsConfig{"early": h.Early, "mid": h.Mid, "late": h.Late} {
		if w.Territory <= 0 {
			return fmt.Errorf("heuristic.%s.territory must be positive, got %d", phase, w.Territory)
		}
	}
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// WatchConfig enables hot-reloading of the config file. Weight tuning
// takes effect on the next turn.
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}
