package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config содержит настройки сервера, читаемые из переменных окружения
type Config struct {
	// Addr - адрес HTTP сервера
	Addr string `env:"GOPHSHOP_ADDR" envDefault:":8080"`
	// DBPath - путь к файлу SQLite базы данных
	DBPath string `env:"GOPHSHOP_DB_PATH" envDefault:"gophshop.db"`
	// JWTSecret - секрет для подписи JWT токенов (обязателен)
	JWTSecret string `env:"GOPHSHOP_JWT_SECRET"`
	// AccessTokenTTL - время жизни access токена
	AccessTokenTTL time.Duration `env:"GOPHSHOP_TOKEN_TTL" envDefault:"1h"`
	// ShutdownTimeout - время на graceful shutdown
	ShutdownTimeout time.Duration `env:"GOPHSHOP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load читает конфигурацию из окружения и проверяет инварианты
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("GOPHSHOP_JWT_SECRET must be set")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive, got %s", c.AccessTokenTTL)
	}
	return nil
}
