package blackjack

import (
	"fmt"

	"blackjack-table/pkg/deck"
)

// Round sequences a single hand of blackjack: betting, dealing, the
// natural check, the player's turn, the dealer's turn, and settlement.
// A round is ephemeral; a new one is created for every hand.
type Round struct {
	State RoundState

	options Options
	player  *Player
	dealer  *Dealer
	deck    *deck.Deck
	result  *Result
	logChan chan []*LogMessage
}

// NewRound returns a new round in the betting state.
// Both hands are reset; the bankroll carries over from previous rounds.
func NewRound(options Options, player *Player, dealer *Dealer, d *deck.Deck) *Round {
	player.ResetHand()
	dealer.ResetHand()

	return &Round{
		State:   RoundStateBetting,
		options: options,
		player:  player,
		dealer:  dealer,
		deck:    d,
	}
}

// PlaceBet accepts a wager and moves the funds out of the bankroll.
// A rejected bet leaves the round in the betting state so the caller can
// re-prompt.
func (r *Round) PlaceBet(amount float64) error {
	if r.State != RoundStateBetting {
		return fmt.Errorf("cannot place a bet from state: %s", r.State)
	}

	if min := r.options.MinBet; min > 0 && amount < min {
		return MinBetError(min)
	}

	if err := r.player.PlaceBet(amount); err != nil {
		return err
	}

	r.sendLogMessage(nil, "%s bet $%.2f", r.player.Name, amount)
	r.State = RoundStateDealing
	return nil
}

// Deal gives two cards each, player first, alternating, then checks for
// naturals. A natural on either side settles the round immediately.
func (r *Round) Deal() error {
	if r.State != RoundStateDealing {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	for i := 0; i < 2; i++ {
		r.player.Hand.AddCard(r.deck.Draw())
		r.dealer.Hand.AddCard(r.deck.Draw())
	}

	r.State = RoundStateNaturalCheck
	r.checkNaturals()
	return nil
}

func (r *Round) checkNaturals() {
	playerNatural := IsBlackjack(r.player.Hand)
	dealerNatural := IsBlackjack(r.dealer.Hand)

	switch {
	case playerNatural && dealerNatural:
		r.finishDealer()
		r.sendLogMessage(nil, "both have blackjack")
		r.settle(OutcomePush)
	case playerNatural:
		r.finishDealer()
		r.sendLogMessage(nil, "%s has blackjack", r.player.Name)
		r.settle(OutcomeBlackjackWin)
	case dealerNatural:
		r.finishDealer()
		r.sendLogMessage(nil, "dealer has blackjack")
		r.settle(OutcomeLose)
	default:
		r.State = RoundStatePlayerTurn
	}
}

// Hit draws one card for the player. A bust settles the round as a loss
// without the dealer playing.
func (r *Round) Hit() (*deck.Card, error) {
	if r.State != RoundStatePlayerTurn {
		return nil, fmt.Errorf("cannot hit from state: %s", r.State)
	}

	card := r.deck.Draw()
	r.player.Hand.AddCard(card)
	r.sendLogMessage(card, "%s drew %s", r.player.Name, card)

	if IsBust(r.player.Hand) {
		r.finishDealer()
		r.sendLogMessage(nil, "%s busted at %d", r.player.Name, Score(r.player.Hand))
		r.settle(OutcomeLose)
	}

	return card, nil
}

// Stand ends the player's turn and runs the dealer to completion
func (r *Round) Stand() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.State)
	}

	r.sendLogMessage(nil, "%s stands at %d", r.player.Name, Score(r.player.Hand))
	r.State = RoundStateDealerTurn
	r.playDealer()
	return nil
}

func (r *Round) playDealer() {
	r.dealer.Reveal()
	r.sendLogMessage(r.dealer.Hand.LastCard(), "dealer reveals %s", r.dealer)

	for _, card := range r.dealer.Play(r.deck) {
		r.sendLogMessage(card, "dealer drew %s", card)
	}

	playerScore := Score(r.player.Hand)
	dealerScore := Score(r.dealer.Hand)

	switch {
	case dealerScore > targetScore:
		r.sendLogMessage(nil, "dealer busted at %d", dealerScore)
		r.settle(OutcomeWin)
	case playerScore > dealerScore:
		r.settle(OutcomeWin)
	case playerScore < dealerScore:
		r.settle(OutcomeLose)
	default:
		r.settle(OutcomePush)
	}
}

// finishDealer exposes the dealer's hand when the round ends without the
// dealer drawing
func (r *Round) finishDealer() {
	r.dealer.Reveal()
	r.dealer.State = DealerStateDone
}

func (r *Round) settle(outcome Outcome) {
	r.State = RoundStateSettlement

	bet := r.player.Bet

	var payout float64
	switch outcome {
	case OutcomeBlackjackWin, OutcomeWin:
		payout = r.player.winBet(outcome.profitMultiplier())
	case OutcomePush:
		payout = r.player.pushBet()
	case OutcomeLose:
		r.player.loseBet()
	}

	r.result = &Result{
		Outcome:     outcome,
		Bet:         bet,
		Payout:      payout,
		PlayerHand:  r.player.Hand.Clone(),
		DealerHand:  r.dealer.Hand.Clone(),
		PlayerScore: Score(r.player.Hand),
		DealerScore: Score(r.dealer.Hand),
	}

	r.sendLogMessage(nil, "%s: $%.2f returned, bankroll $%.2f", outcome, payout, r.player.Bankroll)
	r.State = RoundStateComplete
}

// Result returns the settlement of the round once it completes
func (r *Round) Result() (*Result, error) {
	if r.State != RoundStateComplete {
		return nil, ErrRoundNotComplete
	}

	return r.result, nil
}

func (r *Round) sendLogMessage(card *deck.Card, format string, a ...interface{}) {
	if r.logChan == nil {
		return
	}

	select {
	case r.logChan <- []*LogMessage{newLogMessage(card, format, a...)}:
	default:
		// nobody is draining; don't block the round
	}
}
