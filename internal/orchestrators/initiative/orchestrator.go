// Package initiative implements per-room initiative boards
package initiative

//go:generate mockgen -destination=mock/mock_service.go -package=initiativemock github.com/KirkDiggler/rpg-table/internal/orchestrators/initiative Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-table/internal/engine"
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/entities"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/store"
)

// Service defines the initiative operations
type Service interface {
	// RollInitiative rolls a single outcome and upserts the player's entry
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// ListInitiative returns the board sorted by score descending
	ListInitiative(ctx context.Context, input *ListInitiativeInput) (*ListInitiativeOutput, error)

	// ClearInitiative removes the room's board
	ClearInitiative(ctx context.Context, input *ClearInitiativeInput) (*ClearInitiativeOutput, error)
}

// Config holds the dependencies for the initiative orchestrator
type Config struct {
	Boards *store.Boards
	Engine engine.Engine
	// EventBus is optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Boards == nil {
		vb.RequiredField("Boards")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

type orchestrator struct {
	boards   *store.Boards
	engine   engine.Engine
	eventBus events.EventBus
}

// NewOrchestrator creates a new initiative orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		boards:   cfg.Boards,
		engine:   cfg.Engine,
		eventBus: cfg.EventBus,
	}, nil
}

// RollInitiative rolls in single mode and writes the total to the board,
// replacing any earlier roll by the same player. A re-roll keeps the
// player's original position among ties.
func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("roomID", input.RoomID, vb)
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	outcome, err := o.engine.Roll(input.Notation, dice.ModeSingle)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = input.PlayerID
	}

	out := &RollInitiativeOutput{
		Total:    outcome.Totals[0],
		Outcome:  outcome,
		Rendered: dice.Render(outcome),
	}
	err = o.boards.Update(ctx, func(data map[string]entities.Board) error {
		board := data[input.RoomID]
		if board == nil {
			board = entities.Board{}
			data[input.RoomID] = board
		}

		entry, exists := board[input.PlayerID]
		seq := entry.Seq
		if !exists {
			seq = board.NextSeq()
		}
		out.Rerolled = exists

		board[input.PlayerID] = entities.Participant{
			Name:  name,
			Score: out.Total,
			Seq:   seq,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Initiative rolled",
		"room_id", input.RoomID,
		"player_id", input.PlayerID,
		"notation", outcome.Spec.String(),
		"total", out.Total,
		"rerolled", out.Rerolled,
	)
	o.publish(ctx, EventRolled, entities.Player{ID: input.PlayerID}, entities.Room{ID: input.RoomID})

	return out, nil
}

// ListInitiative returns the room's board in turn order
func (o *orchestrator) ListInitiative(_ context.Context, input *ListInitiativeInput) (*ListInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out ListInitiativeOutput
	err := o.boards.View(func(data map[string]entities.Board) error {
		board := data[input.RoomID]
		if len(board) == 0 {
			return errors.NotFound("initiative is empty").
				WithMeta("room_id", input.RoomID)
		}
		out.Entries = board.Ranked()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// ClearInitiative deletes the room's board
func (o *orchestrator) ClearInitiative(ctx context.Context, input *ClearInitiativeInput) (*ClearInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out ClearInitiativeOutput
	err := o.boards.Update(ctx, func(data map[string]entities.Board) error {
		board, ok := data[input.RoomID]
		if !ok {
			return errors.NotFound("no initiative to clear").
				WithMeta("room_id", input.RoomID)
		}
		out.Removed = len(board)
		delete(data, input.RoomID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Initiative cleared",
		"room_id", input.RoomID,
		"removed", out.Removed,
	)
	room := entities.Room{ID: input.RoomID}
	o.publish(ctx, EventCleared, room, room)

	return &out, nil
}

func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if o.eventBus == nil {
		return
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish event",
			"event", eventType,
			"source", source.GetID(),
			"error", err,
		)
	}
}
