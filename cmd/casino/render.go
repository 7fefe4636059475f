package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"elysium-casino/internal/cards"
)

func handString(cs []cards.Card) string {
	return pterm.BgGreen.Sprintf(" %s ", strings.Join(cards.Strings(cs), " "))
}

// promptAmount keeps asking until the player enters a whole number within
// [min, max]. Entering 0 is allowed only when min is 0 (optional bets).
func promptAmount(label string, min, max int64) int64 {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("%s (%d-%d)", label, min, max)).
			Show()
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			pterm.Error.Println("Enter a whole number.")
			continue
		}
		if n == 0 && min == 0 {
			return 0
		}
		if n < min || n > max {
			pterm.Error.Printfln("Bet must be between %d and %d.", min, max)
			continue
		}
		return n
	}
}

func pickAction[T ~string](label string, actions []T) T {
	options := make([]string, len(actions))
	for i, a := range actions {
		options[i] = string(a)
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		Show()
	return T(choice)
}
