package config

import "testing"

func TestLoadTableDefaults(t *testing.T) {
	cfg, err := LoadTable()
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if cfg.ShoeDecks != 6 {
		t.Fatalf("ShoeDecks = %d, want 6", cfg.ShoeDecks)
	}
	if cfg.StartingBalance != 10000 {
		t.Fatalf("StartingBalance = %d, want 10000", cfg.StartingBalance)
	}
	if cfg.MinBet != 100 {
		t.Fatalf("MinBet = %d, want 100", cfg.MinBet)
	}
}

func TestLoadTableParseTypes(t *testing.T) {
	t.Setenv("SHOE_DECKS", "8")
	t.Setenv("STARTING_BALANCE", "5000")
	t.Setenv("MIN_BET", "25")

	cfg, err := LoadTable()
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if cfg.ShoeDecks != 8 || cfg.StartingBalance != 5000 || cfg.MinBet != 25 {
		t.Fatalf("unexpected table config: %+v", cfg)
	}
}
