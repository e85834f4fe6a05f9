package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack-table/pkg/deck"
)

func TestPlayer_PlaceBet(t *testing.T) {
	a := assert.New(t)
	p := NewPlayer("test", 1000)

	a.Equal(ErrInvalidBet, p.PlaceBet(0))
	a.Equal(ErrInvalidBet, p.PlaceBet(-50))
	a.Equal(ErrInsufficientFunds, p.PlaceBet(1000.01))
	a.Equal(float64(1000), p.Bankroll)
	a.Equal(float64(0), p.Bet)

	a.NoError(p.PlaceBet(100))
	a.Equal(float64(900), p.Bankroll)
	a.Equal(float64(100), p.Bet)
}

func TestPlayer_settlementMethods(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("test", 1000)
	a.NoError(p.PlaceBet(100))
	a.Equal(float64(250), p.winBet(1.5))
	a.Equal(float64(1150), p.Bankroll)
	a.Equal(float64(0), p.Bet)

	p = NewPlayer("test", 1000)
	a.NoError(p.PlaceBet(100))
	a.Equal(float64(200), p.winBet(1))
	a.Equal(float64(1100), p.Bankroll)

	p = NewPlayer("test", 1000)
	a.NoError(p.PlaceBet(100))
	a.Equal(float64(100), p.pushBet())
	a.Equal(float64(1000), p.Bankroll)

	p = NewPlayer("test", 1000)
	a.NoError(p.PlaceBet(100))
	p.loseBet()
	a.Equal(float64(900), p.Bankroll)
	a.Equal(float64(0), p.Bet)
}

func TestDealer_ShouldHit(t *testing.T) {
	a := assert.New(t)
	d := NewDealer()

	d.Hand = deck.CardsFromString("10c,6d")
	a.True(d.ShouldHit())

	d.Hand = deck.CardsFromString("10c,7d")
	a.False(d.ShouldHit())

	// soft 17 stands
	d.Hand = deck.CardsFromString("14c,6d")
	a.False(d.ShouldHit())
}

func TestDealer_Play(t *testing.T) {
	a := assert.New(t)

	d := NewDealer()
	dk := deck.New()
	dk.SetSeed(1)
	dk.Shuffle()

	d.Hand = deck.CardsFromString("10c,6d")
	drawn := d.Play(dk)
	a.NotEmpty(drawn)
	a.Equal(DealerStateDone, d.State)
	a.GreaterOrEqual(Score(d.Hand), dealerStandScore)

	// playing a finished hand is a no-op
	before := d.Hand.Clone()
	a.Empty(d.Play(dk))
	a.Equal(before.String(), d.Hand.String())
	a.Equal(DealerStateDone, d.State)
}

func TestDealer_visibility(t *testing.T) {
	a := assert.New(t)
	d := NewDealer()

	a.Equal(DealerStateHidden, d.State)
	a.Equal("[] (?)", d.String())

	d.Hand = deck.CardsFromString("14s,13h")
	a.Equal("A♠", d.Upcard().String())
	a.Equal(1, len(d.VisibleCards()))
	a.Equal("[A♠ ??] (?)", d.String())

	d.Reveal()
	a.Equal(DealerStateRevealed, d.State)
	a.Equal(2, len(d.VisibleCards()))
	a.Equal("[A♠ K♡] (21)", d.String())
}

func TestDealer_ResetHand(t *testing.T) {
	a := assert.New(t)
	d := NewDealer()
	d.Hand = deck.CardsFromString("10c,7d")
	d.State = DealerStateDone

	d.ResetHand()
	a.Empty(d.Hand)
	a.Equal(DealerStateHidden, d.State)
}

func TestPlayer_String(t *testing.T) {
	p := NewPlayer("test", 1000)
	p.Hand = deck.CardsFromString("10c,14d")
	assert.Equal(t, "[10♣ A♢] (21)", p.String())
}
