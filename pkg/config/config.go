package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the ambient settings read from the environment. The sampling
// interval is deliberately absent: the monitor always ticks once per second.
type Config struct {
	LogLevel string `env:"MONITOR_LOG_LEVEL" envDefault:"warn"`
	ProcRoot string `env:"MONITOR_PROC_ROOT" envDefault:"/proc"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
