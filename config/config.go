package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Database
	DBDriver   string `mapstructure:"DB_DRIVER"` // mysql or sqlite
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPath     string `mapstructure:"DB_PATH"` // sqlite file path

	// Redis (session revocation store)
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Session tokens
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Internal routes
	InternalAuthToken string `mapstructure:"INTERNAL_AUTH_TOKEN"`

	// Signup password policy
	MinPasswordLength int `mapstructure:"MIN_PASSWORD_LENGTH"`
}

// LoadConfig reads configuration from a .env file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "tasker.db")
	viper.SetDefault("MIN_PASSWORD_LENGTH", 8)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine, env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString returns the mysql connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
