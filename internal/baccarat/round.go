package baccarat

import "elysium-casino/internal/cards"

// Round is the full transcript of one coup.
type Round struct {
	Player     Hand
	Banker     Hand
	PlayerDrew bool
	BankerDrew bool
	Winner     Winner
}

// PlayRound deals a complete coup from a caller-supplied card source in
// the standard order (player, banker, player, banker, then third cards
// as the draw rules demand) and settles the winner. The core never owns
// the shoe; draw is expected to yield a card every time it is called.
func PlayRound(draw func() cards.Card) Round {
	player := Hand{}.Deal(draw())
	banker := Hand{}.Deal(draw())
	player = player.Deal(draw())
	banker = banker.Deal(draw())

	r := Round{}
	if PlayerDraws(banker, player) {
		player = player.Deal(draw())
		r.PlayerDrew = true
	}
	if BankerDraws(banker, player) {
		banker = banker.Deal(draw())
		r.BankerDrew = true
	}
	r.Player = player
	r.Banker = banker
	r.Winner = Compare(banker, player)
	return r
}
