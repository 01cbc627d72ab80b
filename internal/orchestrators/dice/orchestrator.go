// Package dice implements the dice orchestrator for public and secret rolls
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-table/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-table/internal/engine"
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/pkg/idgen"
)

// Service defines the interface for dice operations
type Service interface {
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Engine      engine.Engine
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	idGen  idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine: cfg.Engine,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Roll executes notation in general mode and renders the outcome
func (o *orchestrator) Roll(_ context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	outcome, err := o.engine.Roll(input.Notation, dice.ModeGeneral)
	if err != nil {
		return nil, err
	}

	out := &RollOutput{
		RollID:   o.idGen.Generate(),
		Outcome:  outcome,
		Rendered: dice.Render(outcome),
		Secret:   input.Secret,
	}

	slog.Info("Dice rolled successfully",
		"player_id", input.PlayerID,
		"notation", outcome.Spec.String(),
		"totals", outcome.Totals,
		"secret", input.Secret,
		"roll_id", out.RollID,
	)

	return out, nil
}
