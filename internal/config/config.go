package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	PaymentModeReal = "real"
	PaymentModeMock = "mock"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Payment PaymentConfig `mapstructure:"payment"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type PaymentConfig struct {
	Mode      string `mapstructure:"mode"`
	ForceFail bool   `mapstructure:"force_fail"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var envBindings = map[string]string{
	"server.port":             "SERVER_PORT",
	"server.shutdown_timeout": "SERVER_SHUTDOWN_TIMEOUT",
	"mongo.uri":               "MONGO_URI",
	"mongo.database":          "MONGO_DB",
	"mongo.collection":        "MONGO_COLLECTION",
	"mongo.connect_timeout":   "MONGO_CONNECT_TIMEOUT",
	"payment.mode":            "PAYMENT_MODE",
	"payment.force_fail":      "PAYMENT_FORCE_FAIL",
	"cache.enabled":           "CACHE_ENABLED",
	"cache.addr":              "REDIS_ADDR",
	"cache.password":          "REDIS_PASSWORD",
	"cache.db":                "REDIS_DB",
	"cache.ttl":               "CACHE_TTL",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
}

// Load resolves configuration from defaults, an optional YAML file at path,
// an optional .env file and the process environment, in increasing priority.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("mongo.uri", "mongodb://mongo:27017")
	v.SetDefault("mongo.database", "orders_db")
	v.SetDefault("mongo.collection", "orders")
	v.SetDefault("mongo.connect_timeout", "10s")
	v.SetDefault("payment.mode", PaymentModeMock)
	v.SetDefault("payment.force_fail", false)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Mongo.URI == "" {
		return errors.New("mongo uri is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo database is required")
	}
	if c.Mongo.Collection == "" {
		return errors.New("mongo collection is required")
	}
	switch c.Payment.Mode {
	case PaymentModeReal, PaymentModeMock:
	default:
		return fmt.Errorf("unknown payment mode %q", c.Payment.Mode)
	}
	return nil
}
