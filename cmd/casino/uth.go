package main

import (
	"github.com/oklog/ulid/v2"
	"github.com/pterm/pterm"

	"elysium-casino/internal/cards"
	"elysium-casino/internal/uth"
)

func playUTH(t *table) {
	roundID := ulid.Make().String()
	balance, _ := t.led.Balance(playerAccount)
	if balance < t.cfg.MinBet*2 {
		pterm.Error.Println("You need chips for both the ante and the blind.")
		return
	}
	ante := promptAmount("Ante (the blind matches it)", t.cfg.MinBet, balance/2)
	if _, err := t.led.Debit(playerAccount, ante*2, "bet_debit", "uth", roundID); err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	var trips int64
	balance, _ = t.led.Balance(playerAccount)
	if balance >= t.cfg.MinBet {
		if yes, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Add a trips side bet?").Show(); yes {
			trips = promptAmount("Trips bet", t.cfg.MinBet, balance)
			if _, err := t.led.Debit(playerAccount, trips, "trips_debit", "uth", roundID); err != nil {
				pterm.Error.Println(err.Error())
				trips = 0
			}
		}
	}

	hole := []cards.Card{t.shoe.Draw(), t.shoe.Draw()}
	dealerHole := []cards.Card{t.shoe.Draw(), t.shoe.Draw()}
	community := make([]cards.Card, 0, 5)
	for i := 0; i < 5; i++ {
		community = append(community, t.shoe.Draw())
	}

	h := uth.Hand{
		Hole:   hole,
		Wagers: uth.Wagers{Ante: ante, Blind: ante, Trips: trips},
		Stage:  uth.StageStart,
	}
	pterm.Info.Printfln("Your hole cards: %s", handString(hole))

	for h.Stage != uth.StageFinal {
		switch h.Stage {
		case uth.StageFlop:
			pterm.Info.Printfln("Flop: %s", handString(community[:3]))
		case uth.StageRiver:
			pterm.Info.Printfln("Board: %s", handString(community))
		}
		balance, _ = t.led.Balance(playerAccount)
		action := pickAction("Your move", uth.AvailableActions(h, balance))
		next := uth.Apply(h, action)
		if next.Wagers.Play > 0 {
			if _, err := t.led.Debit(playerAccount, next.Wagers.Play, "play_debit", "uth", roundID); err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
		}
		h = next
	}

	if h.Folded {
		pterm.Error.Println("You fold. The dealer takes your bets.")
		return
	}

	pterm.Info.Printfln("Board: %s", handString(community))
	pterm.Info.Printfln("Dealer holds: %s", handString(dealerHole))

	res := uth.ProcessResults(h, dealerHole, community)
	pterm.Info.Printfln("Your hand: %s (%s)", handString(res.Player.Cards), res.Player.Category)
	pterm.Info.Printfln("Dealer hand: %s (%s)", handString(res.Dealer.Cards), res.Dealer.Category)

	w := res.Hand.Wagers
	total := w.Ante + w.Blind + w.Play + w.Trips
	switch res.Hand.State {
	case uth.StateWon:
		pterm.Success.Printfln("You win! Returned: %d", total)
	case uth.StateTie:
		pterm.Info.Printfln("Push. Returned: %d", total)
	default:
		if total > 0 {
			pterm.Error.Printfln("Dealer wins. Returned: %d", total)
		} else {
			pterm.Error.Println("Dealer wins.")
		}
	}
	if total > 0 {
		if _, err := t.led.Credit(playerAccount, total, "payout_credit", "uth", roundID); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}
