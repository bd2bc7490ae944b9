package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage mode values for app.storage.
const (
	StoragePostgres = "postgres"
	StorageAPI      = "api"
)

type Config struct {
	PG        PGConfig
	RedisConf RedisConfig
	API       APIConfig
	Logger    LoggerConfig
	App       AppConfig
}

// NewConfig reads config.yaml (working directory or ./config) with
// CLUBDECK_-prefixed environment overrides. A missing file is fine; the
// defaults plus environment carry a dev setup.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("CLUBDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.storage", StoragePostgres)
	v.SetDefault("app.deck_limit", 10)
	v.SetDefault("app.fallback_deck", true)
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.session_ttl", "24h")
	v.SetDefault("logger.logs_dir", "logs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		PG:        PGConfig{v},
		RedisConf: RedisConfig{v},
		API:       APIConfig{v},
		Logger:    LoggerConfig{v},
		App:       AppConfig{v},
	}, nil
}

type PGConfig struct{ v *viper.Viper }

func (c PGConfig) DSN() string { return c.v.GetString("pg.dsn") }

type RedisConfig struct{ v *viper.Viper }

func (c RedisConfig) Host() string              { return c.v.GetString("redis.host") }
func (c RedisConfig) Port() string              { return c.v.GetString("redis.port") }
func (c RedisConfig) Password() string          { return c.v.GetString("redis.password") }
func (c RedisConfig) SessionTTL() time.Duration { return c.v.GetDuration("redis.session_ttl") }

type APIConfig struct{ v *viper.Viper }

func (c APIConfig) BaseURL() string        { return c.v.GetString("api.base_url") }
func (c APIConfig) Timeout() time.Duration { return c.v.GetDuration("api.timeout") }

type LoggerConfig struct{ v *viper.Viper }

func (c LoggerConfig) Debug() bool          { return c.v.GetBool("logger.debug") }
func (c LoggerConfig) TimeLocation() string { return c.v.GetString("logger.time_location") }
func (c LoggerConfig) LogToFile() bool      { return c.v.GetBool("logger.log_to_file") }
func (c LoggerConfig) LogsDir() string      { return c.v.GetString("logger.logs_dir") }

type AppConfig struct{ v *viper.Viper }

// Storage selects which adapter family serves the collaborator ports:
// "postgres" talks to the clubs database directly, "api" goes through the
// REST API.
func (c AppConfig) Storage() string    { return c.v.GetString("app.storage") }
func (c AppConfig) DeckLimit() int     { return c.v.GetInt("app.deck_limit") }
func (c AppConfig) FallbackDeck() bool { return c.v.GetBool("app.fallback_deck") }
