package blackjack

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"blackjack-table/pkg/deck"
)

// LogMessage narrates a round event for the display layer
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(card *deck.Card, format string, a ...interface{}) *LogMessage {
	var cards []*deck.Card
	if card != nil {
		cards = []*deck.Card{card}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
