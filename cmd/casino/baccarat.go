package main

import (
	"github.com/oklog/ulid/v2"
	"github.com/pterm/pterm"

	"elysium-casino/internal/baccarat"
)

func playBaccarat(t *table) {
	roundID := ulid.Make().String()

	var bets []baccarat.Bet
	placed := map[baccarat.BetTarget]bool{}
	for {
		options := []string{}
		for _, target := range []baccarat.BetTarget{baccarat.BetPlayer, baccarat.BetBanker, baccarat.BetTie} {
			if !placed[target] {
				options = append(options, string(target))
			}
		}
		if len(bets) > 0 {
			options = append(options, "deal")
		}
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Place your bets").
			WithOptions(options).
			Show()
		if choice == "deal" {
			break
		}

		balance, _ := t.led.Balance(playerAccount)
		if balance < t.cfg.MinBet {
			pterm.Error.Println("Not enough chips for another bet.")
			break
		}
		amount := promptAmount(pterm.Sprintf("Bet on %s", choice), t.cfg.MinBet, balance)
		if _, err := t.led.Debit(playerAccount, amount, "bet_debit", "baccarat", roundID); err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		target := baccarat.BetTarget(choice)
		bets = append(bets, baccarat.Bet{Target: target, Amount: amount})
		placed[target] = true
		if len(placed) == 3 {
			break
		}
	}
	if len(bets) == 0 {
		return
	}

	round := baccarat.PlayRound(t.shoe.Draw)
	pterm.Info.Printfln("Player: %s (%d)", handString(round.Player.Cards), round.Player.Total())
	pterm.Info.Printfln("Banker: %s (%d)", handString(round.Banker.Cards), round.Banker.Total())

	var total int64
	for _, b := range bets {
		payout := baccarat.Settle(b, round.Winner)
		total += payout
		if payout > 0 {
			pterm.Success.Printfln("Your %s bet of %d pays %d.", b.Target, b.Amount, payout)
		} else {
			pterm.Error.Printfln("Your %s bet of %d loses.", b.Target, b.Amount)
		}
	}
	switch round.Winner {
	case baccarat.WinnerTie:
		pterm.Info.Println("The round is a tie.")
	default:
		pterm.Info.Printfln("%s wins the round.", round.Winner)
	}
	if total > 0 {
		if _, err := t.led.Credit(playerAccount, total, "payout_credit", "baccarat", roundID); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}
