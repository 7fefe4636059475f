package config

import "github.com/caarlos0/env/v11"

// TableConfig holds the house rules shared by every table.
type TableConfig struct {
	ShoeDecks       int   `env:"SHOE_DECKS" envDefault:"6"`
	StartingBalance int64 `env:"STARTING_BALANCE" envDefault:"10000"`
	MinBet          int64 `env:"MIN_BET" envDefault:"100"`
}

func LoadTable() (TableConfig, error) {
	var cfg TableConfig
	err := env.Parse(&cfg)
	return cfg, err
}
