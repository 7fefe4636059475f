package baccarat

import "elysium-casino/internal/cards"

type Winner string

const (
	WinnerPlayer Winner = "player"
	WinnerBanker Winner = "banker"
	WinnerTie    Winner = "tie"
)

type BetTarget string

const (
	BetPlayer BetTarget = "player"
	BetBanker BetTarget = "banker"
	BetTie    BetTarget = "tie"
)

type Hand struct {
	Cards []cards.Card
}

func (h Hand) Deal(c cards.Card) Hand {
	out := Hand{Cards: append([]cards.Card(nil), h.Cards...)}
	out.Cards = append(out.Cards, c)
	return out
}

// cardValue: ace counts 1, tens and faces 0, the rest face value.
func cardValue(r cards.Rank) int {
	switch {
	case r == cards.Ace:
		return 1
	case r >= cards.Ten:
		return 0
	default:
		return int(r)
	}
}

// Total is the mod-10 sum of card values, recomputed every call.
func (h Hand) Total() int {
	total := 0
	for _, c := range h.Cards {
		total += cardValue(c.Rank)
	}
	return total % 10
}

// Natural reports a two-card total of 8 or 9, which ends the draw phase.
func (h Hand) Natural() bool {
	if len(h.Cards) != 2 {
		return false
	}
	t := h.Total()
	return t == 8 || t == 9
}

// PlayerDraws decides the player's third card. A banker natural freezes
// both hands; otherwise the player draws on 0-5 and stands on 6-7.
func PlayerDraws(banker, player Hand) bool {
	if banker.Natural() || player.Natural() {
		return false
	}
	return player.Total() <= 5
}

// BankerDraws decides the banker's third card, evaluated only after the
// player phase. If the player stood on two cards, the banker draws on
// 0-5. If the player took a third card, the fixed table on the banker
// total applies against that card's point value.
func BankerDraws(banker, player Hand) bool {
	if banker.Natural() || player.Natural() {
		return false
	}
	if len(player.Cards) == 2 {
		return banker.Total() <= 5
	}
	third := cardValue(player.Cards[2].Rank)
	switch t := banker.Total(); t {
	case 0, 1, 2:
		return true
	case 3:
		return third != 8
	case 4:
		return third >= 2 && third <= 7
	case 5:
		return third >= 4 && third <= 7
	case 6:
		return third == 6 || third == 7
	default:
		return false
	}
}

// Compare settles the round by final mod-10 totals.
func Compare(banker, player Hand) Winner {
	switch bt, pt := banker.Total(), player.Total(); {
	case pt > bt:
		return WinnerPlayer
	case bt > pt:
		return WinnerBanker
	default:
		return WinnerTie
	}
}

type Bet struct {
	Target BetTarget
	Amount int64
}

// Settle returns the bet amount after payout: player 1:1, banker 1:1
// less 5% commission (integer truncation, 1000 -> 1950 returned), tie
// 8:1. Any bet off the winning target is lost.
func Settle(b Bet, w Winner) int64 {
	switch {
	case b.Target == BetPlayer && w == WinnerPlayer:
		return b.Amount * 2
	case b.Target == BetBanker && w == WinnerBanker:
		return b.Amount * 195 / 100
	case b.Target == BetTie && w == WinnerTie:
		return b.Amount * 9
	default:
		return 0
	}
}
