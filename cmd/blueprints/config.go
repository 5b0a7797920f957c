package main

import (
	"github.com/kelseyhightower/envconfig"
)

// envConfig carries flag defaults read from BLUEPRINTS_* environment
// variables, so CI jobs can set the output format once instead of passing
// flags to every invocation.
type envConfig struct {
	Format string `envconfig:"FORMAT" default:"json"`
	Output string `envconfig:"OUTPUT"`
}

// loadEnvConfig reads flag defaults from the environment. A malformed
// environment falls back to the built-in defaults.
func loadEnvConfig() envConfig {
	var cfg envConfig
	if err := envconfig.Process("blueprints", &cfg); err != nil {
		return envConfig{Format: "json"}
	}
	return cfg
}
