package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"blackjack-table/internal/config"
	"blackjack-table/pkg/blackjack"
)

const logo = `
 ____  _            _     _            _
| __ )| | __ _  ___| | __(_) __ _  ___| | __
|  _ \| |/ _` + "`" + ` |/ __| |/ /| |/ _` + "`" + ` |/ __| |/ /
| |_) | | (_| | (__|   < | | (_| | (__|   <
|____/|_|\__,_|\___|_|\_\/ |\__,_|\___|_|\_\
                       |__/`

// Version is the build version
var Version = "v0.0.0-dev"

func main() {
	_ = godotenv.Load()
	setupLogger()

	cfg := config.Instance()
	game, err := blackjack.NewGame(logrus.StandardLogger(), blackjack.Options{
		PlayerName:       cfg.PlayerName,
		StartingBankroll: cfg.StartingBankroll,
		MinBet:           cfg.MinBet,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	go printGameLog(game.LogChan())

	c := newConsole(game)

	fmt.Println(logo)
	fmt.Printf("Welcome to the table, %s! (%s)\n", game.Player().Name, Version)
	fmt.Println("Get as close to 21 as you can without going over.")
	fmt.Println("Aces count as 11 or 1; face cards count as 10.")

	handsPlayed := 0
	for !game.Broke() {
		if !c.confirm("\nPlay a hand? (y/n): ") {
			break
		}

		result, err := game.PlayRound(c)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			logrus.WithError(err).Fatal("round failed")
		}

		handsPlayed++
		c.showResult(result)
	}

	if game.Broke() {
		fmt.Println("\nYou're out of money! Game over.")
	}

	fmt.Printf("Thanks for playing! You played %d hand(s). Final balance: $%.2f\n", handsPlayed, game.Bankroll())
}

// printGameLog drains the table's narration.
// The messages duplicate what the console renders, so they only show up at
// debug level.
func printGameLog(ch <-chan []*blackjack.LogMessage) {
	for batch := range ch {
		for _, message := range batch {
			logrus.WithField("uuid", message.UUID).Debug(message.Message)
		}
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
