// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	StoreBackend   string        `env:"STORE_BACKEND" envDefault:"sqlite"`
	DBPath         string        `env:"DB_PATH" envDefault:"./data/ledger.db"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// InvariantChecks re-reads group balances before every commit and
	// aborts the unit of work if they do not sum to zero.
	InvariantChecks bool `env:"INVARIANT_CHECKS" envDefault:"true"`

	// Group locking. An empty RedisAddr selects the in-process locker.
	RedisAddr      string        `env:"REDIS_ADDR"`
	LockExpiry     time.Duration `env:"LOCK_EXPIRY" envDefault:"10s"`
	LockTries      int           `env:"LOCK_TRIES" envDefault:"32"`
	LockRetryDelay time.Duration `env:"LOCK_RETRY_DELAY" envDefault:"50ms"`

	// Activity publishing. An empty AMQPURL disables it.
	AMQPURL        string `env:"AMQP_URL"`
	AMQPExchange   string `env:"AMQP_EXCHANGE" envDefault:"splitledger"`
	AMQPRoutingKey string `env:"AMQP_ROUTING_KEY" envDefault:"ledger.activity"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch c.StoreBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH cannot be empty when using the sqlite backend")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid store backend '%s': must be one of [%s %s]", c.StoreBackend, BackendSQLite, BackendMemory))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(c.JWTSecret) < 16 {
		problems = append(problems, "JWT_SECRET must be at least 16 characters")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must be positive", c.RequestTimeout))
	}

	if c.RedisAddr != "" {
		if c.LockExpiry <= 0 {
			problems = append(problems, fmt.Sprintf("invalid lock expiry %v: must be positive", c.LockExpiry))
		}
		if c.LockTries < 1 {
			problems = append(problems, fmt.Sprintf("invalid lock tries %d: must be at least 1", c.LockTries))
		}
		if c.LockRetryDelay < 0 {
			problems = append(problems, fmt.Sprintf("invalid lock retry delay %v: must not be negative", c.LockRetryDelay))
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
