package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"blackjack-table/internal/rng"
)

// lowWaterMark is the card count below which the deck is rebuilt and
// reshuffled before the next draw. Cards already dealt are not reclaimed.
const lowWaterMark = 10

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed swaps in a deterministic random source.
// This should only be used by tests.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card from the end of the deck.
// If fewer than lowWaterMark cards remain, the deck is first replaced by a
// freshly shuffled 52-card deck, so a draw always succeeds.
func (d *Deck) Draw() *Card {
	if len(d.Cards) < lowWaterMark {
		d.buildDeck()
		d.Shuffle()
	}

	n := len(d.Cards)
	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
