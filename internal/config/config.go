package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Env: development | production
	Env string `mapstructure:"APP_ENV"`

	// Database
	DBPath string `mapstructure:"DB_PATH"`
	// DBVerbose raises the store logger from silent to info, mirroring the
	// verbose mode of the legacy desktop application.
	DBVerbose bool `mapstructure:"DB_VERBOSE"`

	// Business
	StockCriticoUmbral int `mapstructure:"STOCK_CRITICO_UMBRAL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "gestionpro.db")
	viper.SetDefault("DB_VERBOSE", false)
	viper.SetDefault("STOCK_CRITICO_UMBRAL", 10)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
