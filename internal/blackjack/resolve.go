package blackjack

// Resolve settles a player hand against the dealer hand and returns the
// settled snapshot: terminal state plus the bet after payout. Multipliers
// follow the house table: natural pays 3:2 (bet ends at x2.5 including
// the stake), a plain win pays 1:1 (x2), a push returns the stake
// unchanged, a loss zeroes the bet.
//
// Precedence: both naturals push; player natural wins; a busted player
// loses outright even when the dealer also busts; dealer bust then wins
// for the player; otherwise higher total wins, equal pushes.
//
// An insured hand settles the insurance leg first. Dealer natural pays
// the leg 2:1 (x3 including stake) and the hand keeps its insured state
// while the main bet pushes (player natural) or is lost. No dealer
// natural clears the insurance leg and the main hand settles normally.
func Resolve(player, dealer Hand) Hand {
	out := player.clone()

	if out.State == StateInsured {
		if IsBlackjack(dealer) {
			out.InsuranceBet *= 3
			if !IsBlackjack(out) {
				out.Bet = 0
			}
			return out
		}
		out.InsuranceBet = 0
		out.State = StateUndefined
	}

	pv, dv := out.Value(), dealer.Value()
	switch {
	case IsBlackjack(out) && IsBlackjack(dealer):
		out.State = StatePush
	case IsBlackjack(out):
		out.State = StateBlackjack
		out.Bet = out.Bet * 5 / 2
	case pv > 21:
		out.State = StateLost
		out.Bet = 0
	case dv > 21:
		out.State = StateWon
		out.Bet *= 2
	case pv == dv:
		out.State = StatePush
	case pv > dv:
		out.State = StateWon
		out.Bet *= 2
	default:
		out.State = StateLost
		out.Bet = 0
	}
	return out
}
