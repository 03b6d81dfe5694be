// Package config loads walletdesk settings from the environment. Variables
// are read with the WALLETDESK_ prefix, after an optional .env file is loaded
// into the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/walletdesk/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name, e.g. WALLETDESK_LOG_LEVEL.
const envPrefix = "WALLETDESK"

// defaultEnvFile is loaded when Load is called without files. It may be absent.
const defaultEnvFile = ".env"

// ErrInvalidConfig is returned when the environment cannot be parsed into a Config.
var ErrInvalidConfig = errors.New("invalid configuration")

type (
	// Config is the complete walletdesk configuration.
	Config struct {
		LogLevel   string           `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
		Telemetry  TelemetryConfig  `envconfig:"TELEMETRY"`
		Backend    BackendConfig    `envconfig:"BACKEND"`
		Session    SessionConfig    `envconfig:"SESSION"`
		Redis      RedisConfig      `envconfig:"REDIS"`
		Bridge     BridgeConfig     `envconfig:"BRIDGE"`
		Navigation NavigationConfig `envconfig:"NAVIGATION"`
	}

	// TelemetryConfig controls the OpenTelemetry exporters. Endpoints are
	// taken from the standard OTEL_EXPORTER_OTLP_* variables.
	TelemetryConfig struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"walletdesk" validate:"required"`
	}

	// BackendConfig describes the wallet backend JSON-RPC endpoint.
	BackendConfig struct {
		Endpoint     string        `envconfig:"ENDPOINT" required:"true" validate:"required,url"`
		Timeout      time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
		RetryMax     int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
		RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s"`
		RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s" validate:"gtefield=RetryWaitMin"`
	}

	// SessionConfig tunes the active wallet session.
	SessionConfig struct {
		InitialSearchLimit int `envconfig:"INITIAL_SEARCH_LIMIT" default:"20" validate:"gt=0"`
	}

	// RedisConfig points at the Redis server holding the current route. An
	// empty Addr keeps the route in process memory.
	RedisConfig struct {
		Addr     string `envconfig:"ADDR"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
	}

	// BridgeConfig configures the HTTP automation bridge.
	BridgeConfig struct {
		Addr           string   `envconfig:"ADDR" default:"127.0.0.1:8787" validate:"required,hostname_port"`
		AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	}

	// NavigationConfig controls how long route waits poll.
	NavigationConfig struct {
		WaitAttempts uint          `envconfig:"WAIT_ATTEMPTS" default:"50" validate:"gt=0"`
		WaitDelay    time.Duration `envconfig:"WAIT_DELAY" default:"100ms" validate:"gt=0"`
	}
)

// UseRedis reports whether a Redis server was configured.
func (c RedisConfig) UseRedis() bool {
	return c.Addr != ""
}

// Load reads the configuration. The given env files are loaded first without
// overriding variables already set; with no files, an optional .env in the
// working directory is used.
func Load(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) > 0 {
		return godotenv.Load(files...)
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
