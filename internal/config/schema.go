package config

import (
	"time"

	"fundgraph/internal/domain"
)

// Config is the root configuration structure
type Config struct {
	Version int           `yaml:"version"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Graph   GraphConfig   `yaml:"graph"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	IdleTimeout  Duration `yaml:"idle_timeout"`
	CORSOrigin   string   `yaml:"cors_origin"`
}

// LoggingConfig selects the logger flavor
type LoggingConfig struct {
	Env string `yaml:"env"` // production or development
}

// GraphConfig holds node generation and presentation settings
type GraphConfig struct {
	IDSource string              `yaml:"id_source"` // counter or uuid
	Seed     uint64              `yaml:"seed"`      // 0 = seed from the clock
	Jitter   float64             `yaml:"jitter"`
	Render   domain.RenderConfig `yaml:"render"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
