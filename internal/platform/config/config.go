package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de runtime. Cada campo mapea 1:1 a una env var.
type Config struct {
	Port string `mapstructure:"PORT"`

	// DBDSN vacío => storage in-memory (modo dev).
	DBDSN string `mapstructure:"DB_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	LogFile   string `mapstructure:"LOG_FILE"`
	AppName   string `mapstructure:"APP_NAME"`

	ReadTimeout     time.Duration `mapstructure:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `mapstructure:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"PORT", "DB_DSN",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "APP_NAME",
	"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

// Load lee env vars (y un .env opcional en el directorio actual).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("APP_NAME", "vetsoft")
	v.SetDefault("HTTP_READ_TIMEOUT", 5*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	// Unmarshal no ve env vars sin default/bind explícito
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env opcional: sólo se ignora si no existe
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c *Config) Addr() string {
	return ":" + c.Port
}
