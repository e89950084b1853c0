package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	once     sync.Once
	instance *Config
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy"`
	Prep     PrepConfig     `mapstructure:"prep"`
}

type AppConfig struct {
	Name  string `mapstructure:"name"`
	Env   string `mapstructure:"env"`
	Debug bool   `mapstructure:"debug"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// TaxonomyConfig points at an optional external category definition file.
// When File is empty the built-in grocery taxonomy is used.
type TaxonomyConfig struct {
	File string `mapstructure:"file"`
}

// PrepConfig holds meal prep analysis settings
type PrepConfig struct {
	KnowledgeFile   string `mapstructure:"knowledge_file"`
	DefaultPrepDay  string `mapstructure:"default_prep_day"`
	DefaultMaxTime  int    `mapstructure:"default_max_time"`
	DefaultServings int    `mapstructure:"default_servings"`
}

// Initialize sets up Viper with default configuration paths and environment bindings
func Initialize() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/mealkit")
	viper.AddConfigPath("$HOME/.mealkit")

	// Environment variable support
	viper.SetEnvPrefix("MEALKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, using defaults and env vars
	}

	return nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "mealkit")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)

	// Logging defaults
	viper.SetDefault("logging.level", "debug")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("logging.output", "stdout")

	// Taxonomy defaults
	viper.SetDefault("taxonomy.file", "")

	// Prep defaults
	viper.SetDefault("prep.knowledge_file", "")
	viper.SetDefault("prep.default_prep_day", "sunday")
	viper.SetDefault("prep.default_max_time", 180)
	viper.SetDefault("prep.default_servings", 4)
}

// Load returns the singleton config instance
func Load() (*Config, error) {
	var err error
	once.Do(func() {
		if err = Initialize(); err != nil {
			return
		}
		instance = &Config{}
		if err = viper.Unmarshal(instance); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
