package blackjack

import (
	"fmt"
	"strings"

	"blackjack-table/pkg/deck"
)

// dealerStandScore is the score at which the dealer stops drawing
const dealerStandScore = 17

// Player is the bettor at the table. The bankroll and the active bet hold
// the same funds exclusively: placing a bet moves money out of the
// bankroll, and only settlement moves money back in.
type Player struct {
	Name     string    `json:"name"`
	Bankroll float64   `json:"bankroll"`
	Bet      float64   `json:"bet"`
	Hand     deck.Hand `json:"hand"`
}

// NewPlayer returns a new player with the starting bankroll
func NewPlayer(name string, bankroll float64) *Player {
	return &Player{
		Name:     name,
		Bankroll: bankroll,
		Hand:     make(deck.Hand, 0, 8),
	}
}

// PlaceBet moves the amount from the bankroll to the active bet.
// The amount must be positive and cannot exceed the bankroll.
func (p *Player) PlaceBet(amount float64) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	if amount > p.Bankroll {
		return ErrInsufficientFunds
	}

	p.Bet = amount
	p.Bankroll -= amount
	return nil
}

// winBet returns the bet plus profit to the bankroll and clears the bet
func (p *Player) winBet(multiplier float64) float64 {
	winnings := p.Bet * (1 + multiplier)
	p.Bankroll += winnings
	p.Bet = 0

	return winnings
}

// loseBet forfeits the bet (the funds already left the bankroll)
func (p *Player) loseBet() {
	p.Bet = 0
}

// pushBet returns the bet to the bankroll with no profit
func (p *Player) pushBet() float64 {
	returned := p.Bet
	p.Bankroll += returned
	p.Bet = 0

	return returned
}

// ResetHand clears the hand for a new round
func (p *Player) ResetHand() {
	p.Hand = make(deck.Hand, 0, 8)
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", handString(p.Hand), Score(p.Hand))
}

// Dealer plays the house hand with a fixed policy: draw below 17, stand at
// 17 or better. The dealer has no bankroll.
type Dealer struct {
	Hand  deck.Hand   `json:"hand"`
	State DealerState `json:"state"`
}

// NewDealer returns a new dealer with an empty, hidden hand
func NewDealer() *Dealer {
	return &Dealer{
		Hand:  make(deck.Hand, 0, 8),
		State: DealerStateHidden,
	}
}

// ShouldHit returns true while the dealer's score is below 17
func (d *Dealer) ShouldHit() bool {
	return Score(d.Hand) < dealerStandScore
}

// Reveal exposes the hole card
func (d *Dealer) Reveal() {
	if d.State == DealerStateHidden {
		d.State = DealerStateRevealed
	}
}

// Upcard returns the first dealt card, the only card exposed while hidden
func (d *Dealer) Upcard() *deck.Card {
	return d.Hand.FirstCard()
}

// VisibleCards returns the cards the player is allowed to see
func (d *Dealer) VisibleCards() deck.Hand {
	if d.State != DealerStateHidden {
		return d.Hand
	}

	if card := d.Upcard(); card != nil {
		return deck.Hand{card}
	}

	return deck.Hand{}
}

// Play reveals the hand and runs the policy to completion, returning the
// cards drawn. Calling Play on a finished hand draws nothing.
func (d *Dealer) Play(dk *deck.Deck) []*deck.Card {
	d.Reveal()

	var drawn []*deck.Card
	for d.ShouldHit() {
		card := dk.Draw()
		d.Hand.AddCard(card)
		drawn = append(drawn, card)
	}

	d.State = DealerStateDone
	return drawn
}

// ResetHand clears the hand and conceals it for a new round
func (d *Dealer) ResetHand() {
	d.Hand = make(deck.Hand, 0, 8)
	d.State = DealerStateHidden
}

// String renders the dealer's hand, concealing everything but the upcard
// until the hole card is revealed
func (d *Dealer) String() string {
	if d.State == DealerStateHidden {
		if card := d.Upcard(); card != nil {
			hidden := len(d.Hand) - 1
			return fmt.Sprintf("[%s%s] (?)", card.String(), strings.Repeat(" ??", hidden))
		}

		return "[] (?)"
	}

	return fmt.Sprintf("%s (%d)", handString(d.Hand), Score(d.Hand))
}

func handString(hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = card.String()
	}

	return fmt.Sprintf("[%s]", strings.Join(cards, " "))
}
