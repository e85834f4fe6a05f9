package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Spades}, *d.Cards[51])

	// all cards are unique
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(1)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode())

	d3 := New()
	d3.SetSeed(2)
	d3.Shuffle()
	a.NotEqual(d1.HashCode(), d3.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	last := d.Cards[51]
	card := d.Draw()
	a.True(card.Equal(last))
	a.Equal(51, d.CardsLeft())
}

func TestDeck_autoReplenish(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.SetSeed(1)
	d.Shuffle()

	// drain down to the low-water mark; no replenishment yet
	for i := 0; i < 43; i++ {
		a.GreaterOrEqual(d.CardsLeft(), 10)
		d.Draw()
	}
	a.Equal(9, d.CardsLeft())

	// the next draw comes from a fresh, shuffled 52-card deck
	card := d.Draw()
	a.NotNil(card)
	a.Equal(51, d.CardsLeft())
}

func TestDeck_neverExhausts(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.SetSeed(99)
	d.Shuffle()

	for i := 0; i < 500; i++ {
		a.NotNil(d.Draw())
		a.GreaterOrEqual(d.CardsLeft(), 9)
	}
}
