package main

import (
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/rs/zerolog/log"

	"elysium-casino/internal/cards"
	"elysium-casino/internal/config"
	"elysium-casino/internal/ledger"
	"elysium-casino/internal/logging"
)

const playerAccount = "player"

// reshuffleBelow is the cut card: a fresh shoe is built before any round
// that would start with fewer cards than this.
const reshuffleBelow = 52

type table struct {
	cfg  config.TableConfig
	led  *ledger.Ledger
	shoe *cards.Shoe
}

func main() {
	_ = godotenv.Load()

	logCfg, err := config.LoadLog()
	if err != nil {
		log.Fatal().Err(err).Msg("load log config failed")
	}
	closer, err := logging.Init(logCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("logging init failed")
	}
	defer closer.Close()

	tableCfg, err := config.LoadTable()
	if err != nil {
		log.Fatal().Err(err).Msg("load table config failed")
	}

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("E", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("lysium ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("C", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("asino", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()

	t := &table{
		cfg: tableCfg,
		led: ledger.New(),
	}
	t.led.EnsureAccount(playerAccount, tableCfg.StartingBalance)
	t.freshShoe()

	for {
		balance, _ := t.led.Balance(playerAccount)
		pterm.Info.Printfln("Balance: %d", balance)
		if balance < tableCfg.MinBet {
			pterm.Error.Println("You are out of chips, thanks for playing!")
			return
		}

		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Pick a game").
			WithOptions([]string{"Blackjack", "Baccarat", "Ultimate Texas Hold'em", "Quit"}).
			Show()

		if t.shoe.Remaining() < reshuffleBelow {
			pterm.Info.Println("Shuffling a fresh shoe...")
			t.freshShoe()
		}

		switch choice {
		case "Blackjack":
			playBlackjack(t)
		case "Baccarat":
			playBaccarat(t)
		case "Ultimate Texas Hold'em":
			playUTH(t)
		case "Quit":
			pterm.Println("Thank you for playing...")
			return
		}
	}
}

func (t *table) freshShoe() {
	t.shoe = cards.NewShoe(t.cfg.ShoeDecks)
	t.shoe.Shuffle()
}
