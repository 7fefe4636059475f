package cards

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			want := Card{Rank: r, Suit: s}
			got, err := Parse(want.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", want.String(), err)
			}
			if got != want {
				t.Fatalf("Parse(%q) = %v, want %v", want.String(), got, want)
			}
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "A", "10h", "Ax", "Zs", "  ", "Ash"} {
		if _, err := Parse(s); !errors.Is(err, ErrBadCard) {
			t.Fatalf("Parse(%q) error = %v, want ErrBadCard", s, err)
		}
	}
}

func TestParseAllFailsOnFirstBadEntry(t *testing.T) {
	if _, err := ParseAll([]string{"As", "Kd", "??"}); err == nil {
		t.Fatal("ParseAll expected error, got nil")
	}
	cs, err := ParseAll([]string{"As", "Kd", "2c"})
	if err != nil {
		t.Fatalf("ParseAll error = %v", err)
	}
	if len(cs) != 3 || cs[0] != (Card{Ace, Spades}) || cs[2] != (Card{Two, Clubs}) {
		t.Fatalf("ParseAll = %v", cs)
	}
}
