package blackjack

import (
	"blackjack-table/pkg/deck"
)

// Result contains the settlement of a completed round
type Result struct {
	Outcome Outcome `json:"outcome"`

	// Bet is the wager that was at risk
	Bet float64 `json:"bet"`

	// Payout is the amount credited back to the bankroll at settlement,
	// bet included. Zero on a loss.
	Payout float64 `json:"payout"`

	PlayerHand  deck.Hand `json:"playerHand"`
	DealerHand  deck.Hand `json:"dealerHand"`
	PlayerScore int       `json:"playerScore"`
	DealerScore int       `json:"dealerScore"`
}
