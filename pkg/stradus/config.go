package stradus

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes one serial connection to a laser.
type Config struct {
	// Port is the serial device path, e.g. /dev/ttyUSB0 or COM3.
	Port string `yaml:"port"`
	// BaudRate defaults to the device's documented 19200.
	BaudRate int `yaml:"baud_rate"`
	// TimeoutMs bounds each exchange; defaults to 5000.
	TimeoutMs int `yaml:"timeout_ms"`

	// Logger receives TX/RX debug traces; nil disables tracing.
	Logger *slog.Logger `yaml:"-"`
}

// LoadConfig reads a YAML config file, applies defaults and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize fills in defaults for unset fields.
func (c *Config) Normalize() {
	if c.BaudRate == 0 {
		c.BaudRate = DefaultBaudRate
	}
	if c.TimeoutMs == 0 {
		c.TimeoutMs = DefaultTimeoutMs
	}
}

// Validate checks configuration correctness. It does not mutate the
// configuration.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("config: port is required")
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("config: baud_rate must be positive, got %d", c.BaudRate)
	}
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("config: timeout_ms must be positive, got %d", c.TimeoutMs)
	}
	return nil
}

// Timeout returns the exchange timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
