package dice

import (
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
)

// RollInput defines a general dice roll request
type RollInput struct {
	// PlayerID is recorded in logs only
	PlayerID string
	Notation string
	// Secret marks the result for delivery to the requester alone
	Secret bool
}

// RollOutput contains the outcome and its display text
type RollOutput struct {
	RollID   string
	Outcome  *dice.RollOutcome
	Rendered string
	Secret   bool
}
