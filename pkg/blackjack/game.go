package blackjack

import (
	"errors"

	"github.com/sirupsen/logrus"

	"blackjack-table/pkg/deck"
)

// Input collects decisions from the player. Implementations prompt a human
// (or a script in tests); the engine validates and re-requests on bad input.
type Input interface {
	// RequestBet asks for a wager given the current bankroll
	RequestBet(bankroll float64) (float64, error)

	// RequestAction asks for a raw hit/stand token
	RequestAction() (string, error)
}

// Game is a blackjack table session: one player, the house dealer, and a
// deck that persists across rounds
type Game struct {
	options Options
	player  *Player
	dealer  *Dealer
	deck    *deck.Deck
	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

// NewGame returns a new table session
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.StartingBankroll <= 0 {
		return nil, errors.New("starting bankroll must be > 0")
	}

	if options.MinBet < 0 {
		return nil, errors.New("minimum bet cannot be negative")
	}

	if options.MinBet > options.StartingBankroll {
		return nil, errors.New("minimum bet cannot exceed the starting bankroll")
	}

	name := options.PlayerName
	if name == "" {
		name = "Player"
	}

	d := deck.New()
	d.Shuffle()

	return &Game{
		options: options,
		player:  NewPlayer(name, options.StartingBankroll),
		dealer:  NewDealer(),
		deck:    d,
		logger:  logger,
		logChan: make(chan []*LogMessage, 256),
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// Player returns the player at the table
func (g *Game) Player() *Player {
	return g.player
}

// Dealer returns the house dealer
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Bankroll returns the player's current bankroll
func (g *Game) Bankroll() float64 {
	return g.player.Bankroll
}

// Broke returns true once the bankroll hits zero; no further rounds may be
// played. This is a session condition, not an error.
func (g *Game) Broke() bool {
	return g.player.Bankroll <= 0
}

// LogChan returns the channel the table narrates rounds on
func (g *Game) LogChan() <-chan []*LogMessage {
	return g.logChan
}

// PlayRound runs one complete round against the input collaborator.
// Invalid bets and unrecognized action tokens are re-requested without any
// state change; input errors (e.g. closed stdin) abort the round.
func (g *Game) PlayRound(input Input) (*Result, error) {
	if g.Broke() {
		return nil, ErrOutOfMoney
	}

	round := NewRound(g.options, g.player, g.dealer, g.deck)
	round.logChan = g.logChan

	for round.State == RoundStateBetting {
		amount, err := input.RequestBet(g.player.Bankroll)
		if err != nil {
			return nil, err
		}

		if err := round.PlaceBet(amount); err != nil {
			g.logger.WithError(err).Warn("bet rejected")
		}
	}

	if err := round.Deal(); err != nil {
		return nil, err
	}

	for round.State == RoundStatePlayerTurn {
		token, err := input.RequestAction()
		if err != nil {
			return nil, err
		}

		action, err := ActionFromString(token)
		if err != nil {
			g.logger.WithError(err).Warn("action rejected")
			continue
		}

		switch action {
		case ActionHit:
			if _, err := round.Hit(); err != nil {
				return nil, err
			}
		case ActionStand:
			if err := round.Stand(); err != nil {
				return nil, err
			}
		}
	}

	return round.Result()
}
