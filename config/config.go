package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// JWT_SECRET is read from the environment by the token helpers
	// and auth middleware directly, not through this struct.

	LogDir string `mapstructure:"LOG_DIR"`
}

// LoadConfig reads configuration from a .env file in path, falling
// back to plain environment variables when the file is absent.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)

	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if config.LogDir == "" {
		config.LogDir = "logs"
	}
	return
}

// GetDSN returns the Postgres connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
