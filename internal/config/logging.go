package config

import "github.com/caarlos0/env/v11"

// LogConfig drives logging.Init for both the table CLI and the pit
// server. File switches output from stdout to a size-capped log file;
// MaxMB is that cap. SampleEvery keeps 1 in N events when above 1.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	File        string `env:"LOG_FILE"`
	MaxMB       int    `env:"LOG_MAX_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}
