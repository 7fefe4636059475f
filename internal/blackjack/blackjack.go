package blackjack

import "elysium-casino/internal/cards"

type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
)

type State string

const (
	StateUndefined State = ""
	StateInsured   State = "insured"
	StateBlackjack State = "blackjack"
	StateWon       State = "won"
	StateLost      State = "lost"
	StatePush      State = "push"
)

// Hand is an immutable snapshot of one blackjack hand. Engine calls
// never mutate a Hand in place; they return a new snapshot and the
// orchestrator keeps whichever one is current.
type Hand struct {
	Cards        []cards.Card
	Bet          int64
	InsuranceBet int64
	State        State
	FromSplit    bool
}

func (h Hand) clone() Hand {
	out := h
	out.Cards = append([]cards.Card(nil), h.Cards...)
	return out
}

// Deal returns the hand with one more card appended.
func (h Hand) Deal(c cards.Card) Hand {
	out := h.clone()
	out.Cards = append(out.Cards, c)
	return out
}

func cardValue(r cards.Rank) int {
	switch {
	case r == cards.Ace:
		return 11
	case r >= cards.Ten:
		return 10
	default:
		return int(r)
	}
}

// Value recomputes the hand total from the card sequence on every call.
// Aces count 11 until the total would bust, then drop to 1 one at a time.
func (h Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		v := cardValue(c.Rank)
		if v == 11 {
			aces++
		}
		total += v
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// Soft reports whether the current total counts an ace as 11.
func (h Hand) Soft() bool {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		v := cardValue(c.Rank)
		if v == 11 {
			aces++
		}
		total += v
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return aces > 0
}

// AvailableActions lists the legal player actions in fixed order:
// hit, stand, double, split. An empty list means the hand plays itself
// out (stand or bust); the front-end should stop prompting.
func AvailableActions(h Hand) []Action {
	if h.State != StateUndefined && h.State != StateInsured {
		return nil
	}
	if h.Value() >= 21 {
		return nil
	}
	actions := []Action{ActionHit, ActionStand}
	if len(h.Cards) == 2 {
		actions = append(actions, ActionDouble)
		if cardValue(h.Cards[0].Rank) == cardValue(h.Cards[1].Rank) {
			actions = append(actions, ActionSplit)
		}
	}
	return actions
}

// CanDraw reports whether a player hand may take another card.
func CanDraw(h Hand) bool {
	return h.Value() < 21
}

// DealerMustDraw applies the house drawing rule: draw under 17, and
// still draw on a soft 17. A hard 17 or any 18+ stands.
func DealerMustDraw(h Hand) bool {
	v := h.Value()
	if v < 17 {
		return true
	}
	return v == 17 && h.Soft()
}

// IsBlackjack reports a natural: exactly two cards totaling 21, and not
// a hand produced by splitting.
func IsBlackjack(h Hand) bool {
	return len(h.Cards) == 2 && !h.FromSplit && h.Value() == 21
}

// InsuranceOffered reports whether the dealer's exposed first card is an
// ace.
func InsuranceOffered(dealer Hand) bool {
	return len(dealer.Cards) > 0 && dealer.Cards[0].Rank == cards.Ace
}

// Split breaks a two-card pair into two one-card hands carrying the same
// bet, each flagged as split so a later 21 is not a natural. Returns
// ok=false when the hand is not splittable; the caller re-prompts.
func Split(h Hand) (Hand, Hand, bool) {
	if len(h.Cards) != 2 || cardValue(h.Cards[0].Rank) != cardValue(h.Cards[1].Rank) {
		return Hand{}, Hand{}, false
	}
	a := Hand{Cards: []cards.Card{h.Cards[0]}, Bet: h.Bet, FromSplit: true}
	b := Hand{Cards: []cards.Card{h.Cards[1]}, Bet: h.Bet, FromSplit: true}
	return a, b, true
}
