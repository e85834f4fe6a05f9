package blackjack

// Options contains options for a new blackjack table
type Options struct {
	// PlayerName is the display name of the bettor
	PlayerName string

	// StartingBankroll is the bankroll the player sits down with
	StartingBankroll float64

	// MinBet is the table minimum; zero disables the check
	MinBet float64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		PlayerName:       "Player",
		StartingBankroll: 1000,
		MinBet:           0,
	}
}
