package poker

// Outcome of a player-versus-dealer comparison.
type Outcome int

const (
	OutcomeDealer Outcome = -1
	OutcomeTie    Outcome = 0
	OutcomePlayer Outcome = 1
)

// Compare totally orders two evaluated hands: category first, then the
// category-specific tie break. Returns >0 when a ranks higher, <0 when b
// does, 0 on a dead tie.
func Compare(a, b EvaluatedHand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	switch a.Category {
	case TwoPair:
		return compareTwoPair(a, b)
	case Pair:
		ap, bp := pairRank(a), pairRank(b)
		if ap != bp {
			return sign(ap - bp)
		}
		return compareDesc(a, b)
	case HighCard, Trips:
		return compareDesc(a, b)
	case Straight, StraightFlush, RoyalFlush:
		_, ah := straightHigh(descValues(a.Cards))
		_, bh := straightHigh(descValues(b.Cards))
		return sign(ah - bh)
	default:
		// Flush, quads, full house: raw descending comparison.
		return compareDesc(a, b)
	}
}

// DetermineWinner maps the comparison onto the player's point of view.
func DetermineWinner(player, dealer EvaluatedHand) Outcome {
	switch c := Compare(player, dealer); {
	case c > 0:
		return OutcomePlayer
	case c < 0:
		return OutcomeDealer
	default:
		return OutcomeTie
	}
}

func compareDesc(a, b EvaluatedHand) int {
	av, bv := descValues(a.Cards), descValues(b.Cards)
	for i := 0; i < len(av) && i < len(bv); i++ {
		if av[i] != bv[i] {
			return sign(av[i] - bv[i])
		}
	}
	return 0
}

func compareTwoPair(a, b EvaluatedHand) int {
	ah, al := twoPairRanks(a)
	bh, bl := twoPairRanks(b)
	if ah != bh {
		return sign(ah - bh)
	}
	if al != bl {
		return sign(al - bl)
	}
	ak, _ := a.Kicker()
	bk, _ := b.Kicker()
	return sign(int(ak.Rank) - int(bk.Rank))
}

func pairRank(h EvaluatedHand) int {
	for r, n := range rankCounts(h.Cards) {
		if n == 2 {
			return r
		}
	}
	return 0
}

func twoPairRanks(h EvaluatedHand) (high, low int) {
	for r, n := range rankCounts(h.Cards) {
		if n != 2 {
			continue
		}
		if r > high {
			high, low = r, high
		} else {
			low = r
		}
	}
	return high, low
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
