package blackjack

import (
	"errors"
	"fmt"
)

// ErrInvalidBet is an error when the bet is not a positive amount
var ErrInvalidBet = errors.New("bet must be greater than zero")

// ErrInsufficientFunds is an error when the bet exceeds the bankroll
var ErrInsufficientFunds = errors.New("bet exceeds bankroll")

// ErrOutOfMoney is an error when a round is attempted with an empty bankroll
var ErrOutOfMoney = errors.New("bankroll is empty")

// ErrRoundNotComplete is an error when results are requested mid-round
var ErrRoundNotComplete = errors.New("the round is not complete")

// MinBetError is an error when the bet falls below the table minimum
type MinBetError float64

func (m MinBetError) Error() string {
	return fmt.Sprintf("bet must be at least $%.2f", float64(m))
}
