package blackjack

import (
	"fmt"
	"strings"
)

// Action is a decision the player can make on their turn
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	}

	panic(fmt.Sprintf("invalid action: %d", int(a)))
}

// ActionFromString normalizes a free-text token into an Action.
// "h", "hit", and "y" mean hit; "s", "stand", and "n" mean stand.
// Anything else is an error and the caller should re-prompt.
func ActionFromString(token string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "h", "hit", "y":
		return ActionHit, nil
	case "s", "stand", "n":
		return ActionStand, nil
	}

	return -1, fmt.Errorf("invalid action: %s", token)
}
