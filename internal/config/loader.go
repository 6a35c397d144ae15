// File: internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a yaml file and environment
// variables. Environment variables use the AUTH_ prefix with dots replaced
// by underscores (e.g. AUTH_JWT_SECRET overrides jwt.secret).
func LoadConfig() (*Config, error) {
	setDefaults()

	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "" {
		env = "development"
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(fmt.Sprintf("config.%s", env))
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("AUTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine, environment variables alone may be enough.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("jwt.secret must be configured")
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 15*time.Second)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.auto_migrate", false)

	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "sample_mflix")
	viper.SetDefault("mongo.movies_collection", "movies")
	viper.SetDefault("mongo.connect_timeout", 10*time.Second)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.cache_ttl", 5*time.Minute)

	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.topic", "auth.events")

	// Fixed token lifetime policy: 15m access, 7d refresh, 20m pending.
	viper.SetDefault("jwt.issuer", "movie-platform-auth")
	viper.SetDefault("jwt.access_token_ttl", 15*time.Minute)
	viper.SetDefault("jwt.refresh_token_ttl", 168*time.Hour)
	viper.SetDefault("jwt.twofa_pending_token_ttl", 20*time.Minute)

	viper.SetDefault("mfa.totp_issuer_name", "MoviePlatform")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
