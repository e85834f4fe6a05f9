package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-table/pkg/deck"
)

func TestCardValue(t *testing.T) {
	a := assert.New(t)
	a.Equal(2, CardValue(deck.CardFromString("2c")))
	a.Equal(9, CardValue(deck.CardFromString("9h")))
	a.Equal(10, CardValue(deck.CardFromString("10d")))
	a.Equal(10, CardValue(deck.CardFromString("11c")))
	a.Equal(10, CardValue(deck.CardFromString("12s")))
	a.Equal(10, CardValue(deck.CardFromString("13h")))
	a.Equal(11, CardValue(deck.CardFromString("14c")))
}

func TestScore(t *testing.T) {
	score := func(cards string) int {
		return Score(deck.CardsFromString(cards))
	}

	a := assert.New(t)

	// no aces: plain sums
	a.Equal(4, score("2c,2d"))
	a.Equal(20, score("13c,12d"))
	a.Equal(23, score("10c,8d,5h"))

	// ace resolution, one ace at a time
	a.Equal(20, score("14c,9d"))
	a.Equal(12, score("14c,14d"))
	a.Equal(21, score("14c,14d,9h"))
	a.Equal(21, score("14c,14d,14h,8s"))
	a.Equal(14, score("14c,14d,14h,14s,10c"))
	a.Equal(21, score("14c,13d"))
}

func TestIsBlackjack(t *testing.T) {
	a := assert.New(t)
	a.True(IsBlackjack(deck.CardsFromString("14c,13d")))
	a.True(IsBlackjack(deck.CardsFromString("10c,14d")))

	// 21 with three cards is not a natural
	a.False(IsBlackjack(deck.CardsFromString("7c,7d,7h")))
	a.False(IsBlackjack(deck.CardsFromString("14c,9d")))
	a.False(IsBlackjack(deck.CardsFromString("14c")))
}

func TestIsBust(t *testing.T) {
	a := assert.New(t)
	a.False(IsBust(deck.CardsFromString("10c,11d")))
	a.True(IsBust(deck.CardsFromString("10c,8d,5h")))

	// aces keep the hand alive
	a.False(IsBust(deck.CardsFromString("14c,14d,9h")))
	a.True(IsBust(deck.CardsFromString("14c,10d,5h,7s")))
}
