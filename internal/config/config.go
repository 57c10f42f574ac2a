package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`
	AppEnv  string `env:"APP_ENV" envDefault:"production"`

	MySQLHost string `env:"MYSQL_HOST" envDefault:"mysql"`
	MySQLPort string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB   string `env:"MYSQL_DB" envDefault:"mortgage"`
	MySQLUser string `env:"MYSQL_USER" envDefault:"mortgage"`
	MySQLPass string `env:"MYSQL_PASS" envDefault:"mortgage"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"redis:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS" envDefault:"300"`

	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`

	// Fixed window limiter for POST /quotes, per client IP.
	QuoteRateLimit  int           `env:"QUOTE_RATE_LIMIT" envDefault:"60"`
	QuoteRateWindow time.Duration `env:"QUOTE_RATE_WINDOW" envDefault:"1m"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	AutoMigrate    bool          `env:"AUTO_MIGRATE" envDefault:"false"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.AdminJWTSecret == "" {
		return errors.New("missing ADMIN_JWT_SECRET")
	}
	if c.QuoteRateLimit <= 0 || c.QuoteRateWindow <= 0 {
		return errors.New("QUOTE_RATE_LIMIT and QUOTE_RATE_WINDOW must be positive")
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	return nil
}

func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) IsDevelopment() bool { return c.AppEnv == "development" }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
