package poker

import (
	"sort"

	"elysium-casino/internal/cards"
)

// EvaluatedHand is the best five cards chosen from a player's hole and
// community cards, plus their category. Treated as immutable once built.
type EvaluatedHand struct {
	Cards    []cards.Card
	Category Category
}

// Kicker returns the highest card outside the hand's rank groups, when
// the category has one (pair, two pair, trips, quads). ok is false for
// categories where every card participates.
func (h EvaluatedHand) Kicker() (cards.Card, bool) {
	switch h.Category {
	case Pair, TwoPair, Trips, Quads:
	default:
		return cards.Card{}, false
	}
	counts := rankCounts(h.Cards)
	best := cards.Card{}
	found := false
	for _, c := range h.Cards {
		if counts[int(c.Rank)] != 1 {
			continue
		}
		if !found || c.Rank > best.Rank {
			best = c
			found = true
		}
	}
	return best, found
}

// Evaluate picks the best 5-card combination from the union of community
// and hole cards (5-7 cards total) by trying every subset and keeping
// the one Compare ranks highest. Ties within a category are broken by
// the comparator, so the result is deterministic. Short pools classify
// whatever cards are there; an empty pool is a high-card nothing.
func Evaluate(community, hole []cards.Card) EvaluatedHand {
	pool := make([]cards.Card, 0, len(community)+len(hole))
	pool = append(pool, community...)
	pool = append(pool, hole...)

	n := len(pool)
	if n == 0 {
		return EvaluatedHand{Category: HighCard}
	}
	if n <= 5 {
		five := append([]cards.Card(nil), pool...)
		return EvaluatedHand{Cards: five, Category: classify(five)}
	}

	var best EvaluatedHand
	first := true
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						five := []cards.Card{pool[a], pool[b], pool[c], pool[d], pool[e]}
						cand := EvaluatedHand{Cards: five, Category: classify(five)}
						if first || Compare(cand, best) > 0 {
							best = cand
							first = false
						}
					}
				}
			}
		}
	}
	return best
}

// classify assigns exactly one category to five cards.
func classify(five []cards.Card) Category {
	values := descValues(five)
	counts := rankCounts(five)

	flush := true
	for _, c := range five[1:] {
		if c.Suit != five[0].Suit {
			flush = false
			break
		}
	}
	straight, high := straightHigh(values)

	if flush && straight {
		if high == 14 {
			return RoyalFlush
		}
		return StraightFlush
	}

	var most, second int
	for _, n := range counts {
		if n > most {
			most, second = n, most
		} else if n > second {
			second = n
		}
	}
	switch {
	case most == 4:
		return Quads
	case most == 3 && second == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case most == 3:
		return Trips
	case most == 2 && second == 2:
		return TwoPair
	case most == 2:
		return Pair
	default:
		return HighCard
	}
}

func rankCounts(cs []cards.Card) map[int]int {
	counts := make(map[int]int, len(cs))
	for _, c := range cs {
		counts[int(c.Rank)]++
	}
	return counts
}

func descValues(cs []cards.Card) []int {
	values := make([]int, 0, len(cs))
	for _, c := range cs {
		values = append(values, int(c.Rank))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}

// straightHigh reports whether five descending values form a run, and
// the run's high card. The wheel A-2-3-4-5 is a 5-high straight.
func straightHigh(desc []int) (bool, int) {
	if len(desc) != 5 {
		return false, 0
	}
	for i := 0; i < 4; i++ {
		if desc[i] == desc[i+1] {
			return false, 0
		}
	}
	if desc[0]-desc[4] == 4 {
		return true, desc[0]
	}
	if desc[0] == 14 && desc[1] == 5 && desc[4] == 2 && desc[1]-desc[4] == 3 {
		return true, 5
	}
	return false, 0
}
