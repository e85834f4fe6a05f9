package blackjack

import (
	"fmt"
)

// Outcome is the result of a completed round from the player's perspective
type Outcome int

// Outcome constants
const (
	OutcomeLose Outcome = iota
	OutcomePush
	OutcomeWin
	OutcomeBlackjackWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLose:
		return "Lose"
	case OutcomePush:
		return "Push"
	case OutcomeWin:
		return "Win"
	case OutcomeBlackjackWin:
		return "Blackjack"
	}

	panic(fmt.Sprintf("invalid outcome: %d", int(o)))
}

// profitMultiplier is the profit paid on the bet, on top of the
// returned bet itself. A loss returns nothing.
func (o Outcome) profitMultiplier() float64 {
	switch o {
	case OutcomeBlackjackWin:
		return 1.5
	case OutcomeWin:
		return 1
	case OutcomePush, OutcomeLose:
		return 0
	}

	panic(fmt.Sprintf("invalid outcome: %d", int(o)))
}
