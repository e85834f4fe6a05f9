package blackjack

import (
	"blackjack-table/pkg/deck"
)

// targetScore is the score a hand tries to reach without going over
const targetScore = 21

// CardValue returns the base blackjack value of a card: 10 for face cards,
// 11 for an ace, otherwise the numeral. Aces are downgraded to 1 during
// scoring, not here.
func CardValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return 11
	case card.Rank >= deck.Jack:
		return 10
	}

	return card.Rank
}

// Score returns the best score for the hand.
// Each ace counts as 11 until the total exceeds 21, then aces are counted
// as 1 one at a time until the total fits or the aces run out. Two aces
// score 12, never 2.
func Score(hand deck.Hand) int {
	score := 0
	aces := 0
	for _, card := range hand {
		if card.Rank == deck.Ace {
			aces++
		}

		score += CardValue(card)
	}

	for score > targetScore && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsBlackjack returns true if the hand is a natural: exactly two cards scoring 21
func IsBlackjack(hand deck.Hand) bool {
	return len(hand) == 2 && Score(hand) == targetScore
}

// IsBust returns true if the hand scores over 21
func IsBust(hand deck.Hand) bool {
	return Score(hand) > targetScore
}
