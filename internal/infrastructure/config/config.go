package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"3000"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Batch program
	CobolBinary         string        `env:"COBOL_BINARY"          envDefault:"./CREDITCARD"`
	CobolInputDelay     time.Duration `env:"COBOL_INPUT_DELAY"     envDefault:"100ms"`
	CobolSessionTimeout time.Duration `env:"COBOL_SESSION_TIMEOUT" envDefault:"30s"`

	// Data files
	CardDataFile    string `env:"CARD_DATA_FILE"    envDefault:"CARDDATA.DAT"`
	CustomerLogFile string `env:"CUSTOMER_LOG_FILE" envDefault:"CUSTOMERS.LOG"`
	StatementFile   string `env:"STATEMENT_FILE"    envDefault:"STATEMENT.TXT"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
