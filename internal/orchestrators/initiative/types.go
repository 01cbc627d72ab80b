package initiative

import (
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/entities"
)

// Event types published after a committed change
const (
	EventRolled  = "initiative.rolled"
	EventCleared = "initiative.cleared"
)

// RollInitiativeInput defines the request for joining a room's board
type RollInitiativeInput struct {
	RoomID   string
	PlayerID string
	Name     string
	Notation string
}

// RollInitiativeOutput contains the roll and whether it replaced an entry
type RollInitiativeOutput struct {
	Total    int
	Outcome  *dice.RollOutcome
	Rendered string
	Rerolled bool
}

// ListInitiativeInput identifies the board to list
type ListInitiativeInput struct {
	RoomID string
}

// ListInitiativeOutput contains the board in turn order
type ListInitiativeOutput struct {
	Entries []entities.RankedParticipant
}

// ClearInitiativeInput identifies the board to clear
type ClearInitiativeInput struct {
	RoomID string
}

// ClearInitiativeOutput reports how many entries were removed
type ClearInitiativeOutput struct {
	Removed int
}
