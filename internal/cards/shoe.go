package cards

import (
	"math/rand"
	"time"
)

// Shoe is a depleting sequence of cards drawn from N standard 52-card
// decks, consumed front-to-back. The shoe is owned by the front-end; the
// game engines only ever see cards the caller took from it. Drawing from
// an empty shoe is a caller precondition failure and panics.
type Shoe struct {
	cards []Card
}

func NewShoe(decks int) *Shoe {
	if decks < 1 {
		decks = 1
	}
	cards := make([]Card, 0, decks*52)
	for d := 0; d < decks; d++ {
		for s := Spades; s <= Clubs; s++ {
			for r := Two; r <= Ace; r++ {
				cards = append(cards, Card{Rank: r, Suit: s})
			}
		}
	}
	return &Shoe{cards: cards}
}

func (s *Shoe) Shuffle() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	rnd.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the front card.
func (s *Shoe) Draw() Card {
	c := s.cards[0]
	s.cards = s.cards[1:]
	return c
}

// Peek returns the front card without consuming it.
func (s *Shoe) Peek() Card {
	return s.cards[0]
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}
