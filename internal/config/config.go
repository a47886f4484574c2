// Package config handles texel tool configuration loading and management.
package config

import "github.com/Faultbox/texel/pkg/tga"

// Config holds all tool settings.
type Config struct {
	Decode  DecodeConfig  `yaml:"decode"`
	Logging LoggingConfig `yaml:"logging"`
}

// DecodeConfig holds decoder limits.
type DecodeConfig struct {
	// MaxDimension caps image width and height accepted by decoders.
	MaxDimension int `yaml:"max_dimension"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			MaxDimension: tga.DefaultMaxDimension,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
