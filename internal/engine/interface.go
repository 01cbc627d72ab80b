// Package engine defines the roll engine the orchestrators depend on. The
// notation parser and executor live in the dice subpackage.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-table/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
)

// Engine parses and executes dice notation
type Engine interface {
	// Roll parses input and executes it under mode
	Roll(input string, mode dice.Mode) (*dice.RollOutcome, error)
	// Limits reports the bounds enforced in general mode
	Limits() dice.Limits
}

// Ensure the dice engine implements Engine
var _ Engine = (*dice.Engine)(nil)
