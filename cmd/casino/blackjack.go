package main

import (
	"github.com/oklog/ulid/v2"
	"github.com/pterm/pterm"

	"elysium-casino/internal/blackjack"
)

func playBlackjack(t *table) {
	roundID := ulid.Make().String()
	balance, _ := t.led.Balance(playerAccount)
	bet := promptAmount("Your bet", t.cfg.MinBet, balance)
	if _, err := t.led.Debit(playerAccount, bet, "bet_debit", "blackjack", roundID); err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	player := blackjack.Hand{Bet: bet}
	player = player.Deal(t.shoe.Draw()).Deal(t.shoe.Draw())
	dealer := blackjack.Hand{}
	dealer = dealer.Deal(t.shoe.Draw()).Deal(t.shoe.Draw())

	pterm.Info.Printfln("Your hand: %s (%d)", handString(player.Cards), player.Value())
	pterm.Info.Printfln("Dealer shows: %s", handString(dealer.Cards[:1]))

	if blackjack.InsuranceOffered(dealer) {
		insure, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Dealer shows an ace. Take insurance?").
			Show()
		if insure {
			side := bet / 2
			if _, err := t.led.Debit(playerAccount, side, "insurance_debit", "blackjack", roundID); err != nil {
				pterm.Error.Println(err.Error())
			} else {
				player.InsuranceBet = side
				player.State = blackjack.StateInsured
			}
		}
	}

	hands := playOutHands(t, roundID, player)

	dealerPlays := false
	for _, h := range hands {
		if h.Value() <= 21 && !blackjack.IsBlackjack(h) {
			dealerPlays = true
		}
	}
	if dealerPlays || player.InsuranceBet > 0 {
		for blackjack.DealerMustDraw(dealer) {
			dealer = dealer.Deal(t.shoe.Draw())
		}
	}
	pterm.Info.Printfln("Dealer hand: %s (%d)", handString(dealer.Cards), dealer.Value())

	var total int64
	for _, h := range hands {
		settled := blackjack.Resolve(h, dealer)
		payout := settled.Bet + settled.InsuranceBet
		total += payout
		describeBlackjackResult(settled, payout)
	}
	if total > 0 {
		if _, err := t.led.Credit(playerAccount, total, "payout_credit", "blackjack", roundID); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}

// playOutHands runs the decision loop, splitting into more hands as the
// player asks for it. Split hands play in order, each with its own bet.
func playOutHands(t *table, roundID string, first blackjack.Hand) []blackjack.Hand {
	queue := []blackjack.Hand{first}
	var done []blackjack.Hand

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		for {
			actions := blackjack.AvailableActions(h)
			if len(actions) == 0 {
				break
			}
			balance, _ := t.led.Balance(playerAccount)
			actions = affordableActions(actions, h.Bet, balance)

			pterm.Info.Printfln("Hand: %s (%d)", handString(h.Cards), h.Value())
			action := pickAction("Your move", actions)

			switch action {
			case blackjack.ActionHit:
				h = h.Deal(t.shoe.Draw())
			case blackjack.ActionStand:
				done = append(done, h)
				h = blackjack.Hand{}
			case blackjack.ActionDouble:
				if _, err := t.led.Debit(playerAccount, h.Bet, "double_debit", "blackjack", roundID); err != nil {
					pterm.Error.Println(err.Error())
					continue
				}
				h.Bet *= 2
				h = h.Deal(t.shoe.Draw())
				done = append(done, h)
				h = blackjack.Hand{}
			case blackjack.ActionSplit:
				a, b, ok := blackjack.Split(h)
				if !ok {
					continue
				}
				if _, err := t.led.Debit(playerAccount, h.Bet, "split_debit", "blackjack", roundID); err != nil {
					pterm.Error.Println(err.Error())
					continue
				}
				a = a.Deal(t.shoe.Draw())
				b = b.Deal(t.shoe.Draw())
				h = a
				queue = append([]blackjack.Hand{b}, queue...)
			}
			if len(h.Cards) == 0 {
				break
			}
		}
		if len(h.Cards) > 0 {
			if h.Value() > 21 {
				pterm.Error.Printfln("Bust: %s (%d)", handString(h.Cards), h.Value())
			}
			done = append(done, h)
		}
	}
	return done
}

// affordableActions drops double and split when the balance cannot cover
// the extra bet they require.
func affordableActions(actions []blackjack.Action, bet, balance int64) []blackjack.Action {
	out := actions[:0:0]
	for _, a := range actions {
		if (a == blackjack.ActionDouble || a == blackjack.ActionSplit) && balance < bet {
			continue
		}
		out = append(out, a)
	}
	return out
}

func describeBlackjackResult(h blackjack.Hand, payout int64) {
	switch h.State {
	case blackjack.StateBlackjack:
		pterm.Success.Printfln("Blackjack! You win %d.", payout)
	case blackjack.StateWon:
		pterm.Success.Printfln("You win %d.", payout)
	case blackjack.StatePush:
		pterm.Info.Printfln("Push. Your bet of %d comes back.", payout)
	case blackjack.StateInsured:
		pterm.Info.Printfln("Insurance pays %d.", payout)
	default:
		pterm.Error.Println("Dealer takes this one.")
	}
}
