package uth

import (
	"elysium-casino/internal/cards"
	"elysium-casino/internal/poker"
)

// EvaluateTrips settles the trips side bet from the player's final
// category alone. Odds: trips 3:1, straight 4:1, flush 7:1, full house
// 8:1, quads 30:1, straight flush 40:1, royal flush 50:1; a pair or
// less loses. Returned amount includes the stake (bet x odds+1).
func EvaluateTrips(category poker.Category, bet int64) int64 {
	switch category {
	case poker.Trips:
		return bet * 4
	case poker.Straight:
		return bet * 5
	case poker.Flush:
		return bet * 8
	case poker.FullHouse:
		return bet * 9
	case poker.Quads:
		return bet * 31
	case poker.StraightFlush:
		return bet * 41
	case poker.RoyalFlush:
		return bet * 51
	default:
		return 0
	}
}

// blindPayout returns the blind leg after settlement on a player win.
// Below a straight the blind only pushes; from a straight up it pays by
// the posted odds table.
func blindPayout(category poker.Category, bet int64) int64 {
	switch category {
	case poker.Straight:
		return bet * 2
	case poker.Flush:
		return bet * 5 / 2
	case poker.FullHouse:
		return bet * 4
	case poker.Quads:
		return bet * 11
	case poker.StraightFlush:
		return bet * 51
	case poker.RoyalFlush:
		return bet * 501
	default:
		return bet
	}
}

// Settle compares the player's and dealer's evaluated hands and applies
// the payout matrix to the hand's wagers. A folded hand has already
// forfeited its legs and stays lost; it is never compared. The dealer
// must qualify (pair or better) for the ante to be at risk on a dealer
// win and to pay on a player win; an unqualified dealer pushes the ante
// either way. Blind pays by the player's category table, play pays even
// money, trips settles on the player's category alone. A tie pushes
// ante, blind and play.
func Settle(h Hand, pEval, dEval poker.EvaluatedHand) Hand {
	out := h.clone()
	out.Stage = StageFinal

	if out.Folded {
		out.State = StateLost
		out.Wagers = Wagers{}
		return out
	}

	out.Wagers.Trips = EvaluateTrips(pEval.Category, out.Wagers.Trips)

	qualifies := Qualifies(dEval)
	switch poker.DetermineWinner(pEval, dEval) {
	case poker.OutcomePlayer:
		out.State = StateWon
		if qualifies {
			out.Wagers.Ante *= 2
		}
		out.Wagers.Blind = blindPayout(pEval.Category, out.Wagers.Blind)
		out.Wagers.Play *= 2
	case poker.OutcomeDealer:
		out.State = StateLost
		if qualifies {
			out.Wagers.Ante = 0
		}
		out.Wagers.Blind = 0
		out.Wagers.Play = 0
	default:
		out.State = StateTie
	}
	return out
}

// Result is one fully settled round, keeping both evaluated hands for
// display.
type Result struct {
	Hand   Hand
	Player poker.EvaluatedHand
	Dealer poker.EvaluatedHand
}

// ProcessResults evaluates both sides against the community cards and
// settles the hand in one call.
func ProcessResults(h Hand, dealerHole, community []cards.Card) Result {
	pEval := poker.Evaluate(community, h.Hole)
	dEval := poker.Evaluate(community, dealerHole)
	return Result{
		Hand:   Settle(h, pEval, dEval),
		Player: pEval,
		Dealer: dEval,
	}
}
