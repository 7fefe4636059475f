package uth

import (
	"elysium-casino/internal/cards"
	"elysium-casino/internal/poker"
)

type Stage string

const (
	StageStart Stage = "start"
	StageFlop  Stage = "flop"
	// StageTurn exists for display only; checking at the flop skips
	// straight to the river decision.
	StageTurn  Stage = "turn"
	StageRiver Stage = "river"
	StageFinal Stage = "final"
)

type Action string

const (
	ActionBet4x Action = "bet_4x"
	ActionBet3x Action = "bet_3x"
	ActionBet2x Action = "bet_2x"
	ActionBet1x Action = "bet_1x"
	ActionCheck Action = "check"
	ActionFold  Action = "fold"
)

type State string

const (
	StateUndefined State = ""
	StateWon       State = "won"
	StateLost      State = "lost"
	StateTie       State = "tie"
)

// Wagers are the four independent legs of an Ultimate Texas Hold'em
// hand. Each settles under its own rule.
type Wagers struct {
	Ante  int64
	Blind int64
	Play  int64
	Trips int64
}

// Hand is an immutable snapshot of the player's side of a round.
type Hand struct {
	Hole   []cards.Card
	Wagers Wagers
	Stage  Stage
	Folded bool
	State  State
}

func (h Hand) clone() Hand {
	out := h
	out.Hole = append([]cards.Card(nil), h.Hole...)
	return out
}

// AvailableActions lists the legal choices at the current stage. Before
// the flop the big raise is 4x when the balance covers it, 3x otherwise;
// at the river checking is no longer possible.
func AvailableActions(h Hand, balance int64) []Action {
	switch h.Stage {
	case StageStart:
		raise := ActionBet4x
		if balance < h.Wagers.Ante*4 {
			raise = ActionBet3x
		}
		return []Action{raise, ActionCheck, ActionFold}
	case StageFlop:
		return []Action{ActionBet2x, ActionCheck, ActionFold}
	case StageRiver:
		return []Action{ActionBet1x, ActionFold}
	default:
		return nil
	}
}

// Apply advances the stage machine. Any bet sets the play wager to the
// ante multiple and jumps to final; folding forfeits every leg and jumps
// to final; checking moves to the next decision point.
func Apply(h Hand, a Action) Hand {
	out := h.clone()
	switch a {
	case ActionBet4x:
		out.Wagers.Play = out.Wagers.Ante * 4
		out.Stage = StageFinal
	case ActionBet3x:
		out.Wagers.Play = out.Wagers.Ante * 3
		out.Stage = StageFinal
	case ActionBet2x:
		out.Wagers.Play = out.Wagers.Ante * 2
		out.Stage = StageFinal
	case ActionBet1x:
		out.Wagers.Play = out.Wagers.Ante
		out.Stage = StageFinal
	case ActionFold:
		out.Wagers = Wagers{}
		out.Folded = true
		out.State = StateLost
		out.Stage = StageFinal
	case ActionCheck:
		switch out.Stage {
		case StageStart:
			out.Stage = StageFlop
		case StageFlop:
			out.Stage = StageRiver
		}
	}
	return out
}

// Qualifies reports the dealer threshold: a pair or better opens the
// ante and blind for payout on a player win.
func Qualifies(dealer poker.EvaluatedHand) bool {
	return dealer.Category >= poker.Pair
}
