package blackjack

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateBetting is before a wager has been accepted
	RoundStateBetting RoundState = "betting"

	// RoundStateDealing means the wager is placed and initial cards are owed
	RoundStateDealing RoundState = "dealing"

	// RoundStateNaturalCheck means initial cards are out and naturals are being checked
	RoundStateNaturalCheck RoundState = "natural-check"

	// RoundStatePlayerTurn means the player may hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer revealed and plays the fixed policy
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettlement means scores are compared and the bet is being resolved
	RoundStateSettlement RoundState = "settlement"

	// RoundStateComplete means the round settled and no bet is active
	RoundStateComplete RoundState = "complete"
)

// DealerState is the visibility state of the dealer's hand
type DealerState string

// DealerState constants
const (
	// DealerStateHidden means only the upcard is exposed
	DealerStateHidden DealerState = "hidden"

	// DealerStateRevealed means the hole card is shown and the dealer may still draw
	DealerStateRevealed DealerState = "revealed"

	// DealerStateDone means the dealer reached 17 or better and stands
	DealerStateDone DealerState = "done"
)
