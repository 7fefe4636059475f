package cards

import (
	"errors"
	"fmt"
)

type Suit int

type Rank int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Card is an immutable rank+suit pair. Per-game point values (blackjack,
// baccarat, poker) are derived by the game packages, not stored here.
type Card struct {
	Rank Rank
	Suit Suit
}

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var suitNames = map[Suit]string{Spades: "s", Hearts: "h", Diamonds: "d", Clubs: "c"}

func (c Card) String() string {
	return rankNames[c.Rank] + suitNames[c.Suit]
}

var ErrBadCard = errors.New("bad_card")

// Parse reads a card from its two-character text form, e.g. "As", "Td",
// "9h". It is the only way to build a Card from untrusted input; an
// unrecognized rank or suit is fatal to the caller's request.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseAll parses a whole card list, failing on the first bad entry.
func ParseAll(ss []string) ([]Card, error) {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Strings renders a card list in the same text form Parse accepts.
func Strings(cs []Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
