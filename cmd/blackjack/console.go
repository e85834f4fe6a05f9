package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blackjack-table/pkg/blackjack"
)

// console prompts the player on stdin and renders the table on stdout.
// It implements blackjack.Input; all rule validation stays in the engine.
type console struct {
	game    *blackjack.Game
	scanner *bufio.Scanner
}

func newConsole(game *blackjack.Game) *console {
	return &console{
		game:    game,
		scanner: bufio.NewScanner(os.Stdin),
	}
}

// RequestBet prompts until a number is entered. Range checks (positive, at
// most the bankroll) belong to the engine, which re-requests on rejection.
func (c *console) RequestBet(bankroll float64) (float64, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("Place your bet (you have $%.2f): $", bankroll))
		if err != nil {
			return 0, err
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Println("Please enter a valid amount.")
			continue
		}

		return amount, nil
	}
}

// RequestAction shows the table and returns the raw token; the engine
// normalizes it and re-requests anything it doesn't recognize
func (c *console) RequestAction() (string, error) {
	c.renderTable()
	return c.readLine("Hit (h) or Stand (s)? ")
}

func (c *console) renderTable() {
	fmt.Printf("\nYour hand:     %s\n", c.game.Player())
	fmt.Printf("Dealer's hand: %s\n", c.game.Dealer())
}

func (c *console) showResult(result *blackjack.Result) {
	fmt.Printf("\nYour final hand:     %s\n", c.game.Player())
	fmt.Printf("Dealer's final hand: %s\n", c.game.Dealer())

	switch result.Outcome {
	case blackjack.OutcomeBlackjackWin:
		fmt.Println("Blackjack! You win!")
	case blackjack.OutcomeWin:
		fmt.Println("You win!")
	case blackjack.OutcomePush:
		fmt.Println("It's a push. Your bet is returned.")
	case blackjack.OutcomeLose:
		fmt.Println("You lose.")
	}

	if result.Payout > 0 {
		fmt.Printf("$%.2f returned to your bankroll.\n", result.Payout)
	}

	fmt.Printf("Current balance: $%.2f\n", c.game.Bankroll())
}

func (c *console) confirm(prompt string) bool {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}

		fmt.Println("Please enter 'y' for yes or 'n' for no.")
	}
}

func (c *console) readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return c.scanner.Text(), nil
}
