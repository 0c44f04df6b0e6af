// Package config loads the settings of the pokerhand command from defaults,
// an optional YAML file and POKERHAND_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "POKERHAND"

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required,hostname_port"`
	TLS             bool          `mapstructure:"tls"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

var validate = validator.New()

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("server.address", "localhost:8080")
	v.SetDefault("server.tls", false)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("output.format", "text")
}

// New returns a viper instance with defaults and environment binding set
// up, so that callers may bind command line flags before calling Load.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v, then unmarshals and
// validates the result. Environment variables take precedence over values
// from the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs := make([]error, len(verrs))
			for i, fe := range verrs {
				errs[i] = fmt.Errorf("invalid value %v for %s (%s)", fe.Value(), fe.Namespace(), fe.Tag())
			}
			return nil, fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
		}
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}
