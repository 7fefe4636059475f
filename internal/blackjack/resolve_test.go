package blackjack

import (
	"testing"

	"elysium-casino/internal/cards"
)

func TestResolveNaturalPaysThreeToTwo(t *testing.T) {
	player := hand(1000, cards.Card{Rank: cards.Ten, Suit: cards.Spades}, cards.Card{Rank: cards.Ace, Suit: cards.Hearts})
	dealer := hand(0, cards.Card{Rank: cards.Seven, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts})
	got := Resolve(player, dealer)
	if got.State != StateBlackjack {
		t.Fatalf("state = %q, want blackjack", got.State)
	}
	if got.Bet != 2500 {
		t.Fatalf("bet = %d, want 2500", got.Bet)
	}
}

func TestResolveBothNaturalsPush(t *testing.T) {
	player := hand(1000, cards.Card{Rank: cards.Ten, Suit: cards.Spades}, cards.Card{Rank: cards.Ace, Suit: cards.Hearts})
	dealer := hand(0, cards.Card{Rank: cards.Ace, Suit: cards.Clubs}, cards.Card{Rank: cards.King, Suit: cards.Diamonds})
	got := Resolve(player, dealer)
	if got.State != StatePush || got.Bet != 1000 {
		t.Fatalf("state=%q bet=%d, want push 1000", got.State, got.Bet)
	}
}

// Player bust is checked first: a dealer bust cannot rescue it.
func TestResolveDoubleBustLoses(t *testing.T) {
	player := hand(500, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts}, cards.Card{Rank: cards.Five, Suit: cards.Clubs})
	dealer := hand(0, cards.Card{Rank: cards.Queen, Suit: cards.Spades}, cards.Card{Rank: cards.Eight, Suit: cards.Hearts}, cards.Card{Rank: cards.Seven, Suit: cards.Clubs})
	got := Resolve(player, dealer)
	if got.State != StateLost || got.Bet != 0 {
		t.Fatalf("state=%q bet=%d, want lost 0", got.State, got.Bet)
	}
}

func TestResolveDealerBustPaysEven(t *testing.T) {
	player := hand(300, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts})
	dealer := hand(0, cards.Card{Rank: cards.Queen, Suit: cards.Spades}, cards.Card{Rank: cards.Eight, Suit: cards.Hearts}, cards.Card{Rank: cards.Seven, Suit: cards.Clubs})
	got := Resolve(player, dealer)
	if got.State != StateWon || got.Bet != 600 {
		t.Fatalf("state=%q bet=%d, want won 600", got.State, got.Bet)
	}
}

func TestResolveTotalsComparison(t *testing.T) {
	win := Resolve(
		hand(200, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts}),
		hand(0, cards.Card{Rank: cards.King, Suit: cards.Clubs}, cards.Card{Rank: cards.Eight, Suit: cards.Hearts}),
	)
	if win.State != StateWon || win.Bet != 400 {
		t.Fatalf("higher total: state=%q bet=%d", win.State, win.Bet)
	}
	push := Resolve(
		hand(200, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts}),
		hand(0, cards.Card{Rank: cards.King, Suit: cards.Clubs}, cards.Card{Rank: cards.Nine, Suit: cards.Diamonds}),
	)
	if push.State != StatePush || push.Bet != 200 {
		t.Fatalf("equal totals: state=%q bet=%d", push.State, push.Bet)
	}
	lose := Resolve(
		hand(200, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Eight, Suit: cards.Hearts}),
		hand(0, cards.Card{Rank: cards.King, Suit: cards.Clubs}, cards.Card{Rank: cards.Nine, Suit: cards.Diamonds}),
	)
	if lose.State != StateLost || lose.Bet != 0 {
		t.Fatalf("lower total: state=%q bet=%d", lose.State, lose.Bet)
	}
}

func TestResolveInsuranceDealerNatural(t *testing.T) {
	player := hand(400, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts})
	player.State = StateInsured
	player.InsuranceBet = 200
	dealer := hand(0, cards.Card{Rank: cards.Ace, Suit: cards.Clubs}, cards.Card{Rank: cards.King, Suit: cards.Diamonds})
	got := Resolve(player, dealer)
	if got.State != StateInsured {
		t.Fatalf("state = %q, want insured", got.State)
	}
	if got.InsuranceBet != 600 {
		t.Fatalf("insurance = %d, want 600", got.InsuranceBet)
	}
	if got.Bet != 0 {
		t.Fatalf("main bet = %d, want 0", got.Bet)
	}
}

func TestResolveInsuranceDealerNaturalPlayerNaturalKeepsBet(t *testing.T) {
	player := hand(400, cards.Card{Rank: cards.Ace, Suit: cards.Spades}, cards.Card{Rank: cards.King, Suit: cards.Hearts})
	player.State = StateInsured
	player.InsuranceBet = 200
	dealer := hand(0, cards.Card{Rank: cards.Ace, Suit: cards.Clubs}, cards.Card{Rank: cards.King, Suit: cards.Diamonds})
	got := Resolve(player, dealer)
	if got.State != StateInsured || got.InsuranceBet != 600 || got.Bet != 400 {
		t.Fatalf("state=%q insurance=%d bet=%d, want insured 600 400", got.State, got.InsuranceBet, got.Bet)
	}
}

func TestResolveInsuranceClearedWithoutDealerNatural(t *testing.T) {
	player := hand(400, cards.Card{Rank: cards.King, Suit: cards.Spades}, cards.Card{Rank: cards.Nine, Suit: cards.Hearts})
	player.State = StateInsured
	player.InsuranceBet = 200
	dealer := hand(0, cards.Card{Rank: cards.Ace, Suit: cards.Clubs}, cards.Card{Rank: cards.Seven, Suit: cards.Diamonds})
	got := Resolve(player, dealer)
	if got.InsuranceBet != 0 {
		t.Fatalf("insurance = %d, want 0", got.InsuranceBet)
	}
	// 19 vs 18: the main hand settles normally.
	if got.State != StateWon || got.Bet != 800 {
		t.Fatalf("state=%q bet=%d, want won 800", got.State, got.Bet)
	}
}
