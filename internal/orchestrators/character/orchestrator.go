// Package character implements the character sheet orchestrator: profile
// registration, hit points, inventory, money and attributes.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-table/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"maps"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-table/internal/entities"
	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/store"
)

// Service defines the character sheet operations
type Service interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Unregister(ctx context.Context, input *UnregisterInput) (*UnregisterOutput, error)
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	GetAttributes(ctx context.Context, input *GetAttributesInput) (*GetAttributesOutput, error)
	UpsertAttributes(ctx context.Context, input *UpsertAttributesInput) (*UpsertAttributesOutput, error)
	RemoveAttributes(ctx context.Context, input *RemoveAttributesInput) (*RemoveAttributesOutput, error)

	GetHP(ctx context.Context, input *GetHPInput) (*GetHPOutput, error)
	SetHPMax(ctx context.Context, input *SetHPMaxInput) (*SetHPMaxOutput, error)
	AdjustHP(ctx context.Context, input *AdjustHPInput) (*AdjustHPOutput, error)

	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	AdjustInventory(ctx context.Context, input *AdjustInventoryInput) (*AdjustInventoryOutput, error)

	GetMoney(ctx context.Context, input *GetMoneyInput) (*GetMoneyOutput, error)
	AddMoney(ctx context.Context, input *AddMoneyInput) (*AddMoneyOutput, error)
	SpendMoney(ctx context.Context, input *SpendMoneyInput) (*SpendMoneyOutput, error)

	Count() int
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	Profiles *store.Profiles
	// EventBus is optional; when set, committed changes are published on it
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Profiles == nil {
		vb.RequiredField("Profiles")
	}
	return vb.Build()
}

// Orchestrator implements Service over the profiles collection
type Orchestrator struct {
	profiles *store.Profiles
	eventBus events.EventBus
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		profiles: cfg.Profiles,
		eventBus: cfg.EventBus,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Register creates a default profile for the player
func (o *Orchestrator) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var profile *entities.Profile
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		if _, ok := data[input.PlayerID]; ok {
			return errors.AlreadyExists("player is already registered").
				WithMeta("player_id", input.PlayerID)
		}
		profile = entities.NewProfile(input.Name)
		data[input.PlayerID] = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Player registered",
		"player_id", input.PlayerID,
		"name", input.Name,
	)
	o.publish(ctx, EventRegistered, input.PlayerID)

	return &RegisterOutput{Profile: profile.Clone()}, nil
}

// Unregister deletes the player's profile
func (o *Orchestrator) Unregister(ctx context.Context, input *UnregisterInput) (*UnregisterOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		if _, err := lookup(data, input.PlayerID); err != nil {
			return err
		}
		delete(data, input.PlayerID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Player unregistered", "player_id", input.PlayerID)
	o.publish(ctx, EventUnregistered, input.PlayerID)

	return &UnregisterOutput{}, nil
}

// GetProfile returns a copy of the player's whole sheet
func (o *Orchestrator) GetProfile(_ context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out GetProfileOutput
	err := o.view(input.PlayerID, func(p *entities.Profile) {
		out.Profile = p.Clone()
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAttributes returns a copy of the player's attributes
func (o *Orchestrator) GetAttributes(_ context.Context, input *GetAttributesInput) (*GetAttributesOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out GetAttributesOutput
	err := o.view(input.PlayerID, func(p *entities.Profile) {
		out.Name = p.Name
		out.Attributes = maps.Clone(p.Attributes)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertAttributes sets every pair, overwriting existing values
func (o *Orchestrator) UpsertAttributes(ctx context.Context, input *UpsertAttributesInput) (*UpsertAttributesOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out UpsertAttributesOutput
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}
		if len(input.Pairs) == 0 {
			return errors.InvalidArgument("invalid format, use name=value")
		}
		for _, pair := range input.Pairs {
			name := FoldAttributeName(pair.Name)
			if !validAttributeName(name) {
				return errors.InvalidArgumentf("invalid attribute name %q", pair.Name).
					WithMeta("attribute", pair.Name)
			}
			p.Attributes[name] = pair.Value
			out.Updated = append(out.Updated, AttributePair{Name: name, Value: pair.Value})
		}
		out.Attributes = maps.Clone(p.Attributes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventAttributesChanged, input.PlayerID)
	return &out, nil
}

// RemoveAttributes deletes the named attributes. It fails with NotFound
// when none of the names exist.
func (o *Orchestrator) RemoveAttributes(ctx context.Context, input *RemoveAttributesInput) (*RemoveAttributesOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out RemoveAttributesOutput
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}
		for _, raw := range input.Names {
			name := FoldAttributeName(raw)
			if _, ok := p.Attributes[name]; !ok {
				continue
			}
			delete(p.Attributes, name)
			out.Removed = append(out.Removed, name)
		}
		if len(out.Removed) == 0 {
			return errors.NotFound("no matching attributes").
				WithMeta("player_id", input.PlayerID)
		}
		out.Attributes = maps.Clone(p.Attributes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventAttributesChanged, input.PlayerID)
	return &out, nil
}

// GetHP returns current and maximum hit points
func (o *Orchestrator) GetHP(_ context.Context, input *GetHPInput) (*GetHPOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out GetHPOutput
	err := o.view(input.PlayerID, func(p *entities.Profile) {
		out.Current = p.HPCurrent
		out.Max = p.HPMax
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetHPMax sets the maximum and heals the player fully
func (o *Orchestrator) SetHPMax(ctx context.Context, input *SetHPMaxInput) (*SetHPMaxOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out SetHPMaxOutput
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}
		if input.Max <= 0 {
			return errors.OutOfRangef("max HP must be greater than zero, got %d", input.Max).
				WithMeta("max", input.Max)
		}
		p.HPMax = input.Max
		p.HPCurrent = input.Max
		out.Current, out.Max = p.HPCurrent, p.HPMax
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventHPChanged, input.PlayerID)
	return &out, nil
}

// AdjustHP applies a signed change clamped to [0, max]
func (o *Orchestrator) AdjustHP(ctx context.Context, input *AdjustHPInput) (*AdjustHPOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out AdjustHPOutput
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}
		before := p.HPCurrent
		p.HPCurrent = clampAdd(p.HPCurrent, input.Delta, 0, p.HPMax)
		out.Current, out.Max = p.HPCurrent, p.HPMax
		out.Delta = p.HPCurrent - before
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("HP adjusted",
		"player_id", input.PlayerID,
		"requested", input.Delta,
		"applied", out.Delta,
	)
	o.publish(ctx, EventHPChanged, input.PlayerID)

	return &out, nil
}

// GetInventory returns a copy of the inventory
func (o *Orchestrator) GetInventory(_ context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out GetInventoryOutput
	err := o.view(input.PlayerID, func(p *entities.Profile) {
		out.Inventory = maps.Clone(p.Inventory)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdjustInventory adds or removes a quantity of an item. Removing more than
// the player holds fails with FailedPrecondition; reaching zero drops the
// item.
func (o *Orchestrator) AdjustInventory(ctx context.Context, input *AdjustInventoryInput) (*AdjustInventoryOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	item := CapitalizeItem(input.Item)
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("item", item, vb)
	errors.ValidateEnum("action", string(input.Action), []string{string(ActionAdd), string(ActionRemove)}, vb)
	if quantity < 0 {
		vb.Field("quantity", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := AdjustInventoryOutput{
		Action:   input.Action,
		Item:     item,
		Quantity: quantity,
	}
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}

		have := p.Inventory[item]
		switch input.Action {
		case ActionAdd:
			if have > math.MaxInt-quantity {
				return errors.OutOfRange("quantity is too large").
					WithMeta("item", item)
			}
			p.Inventory[item] = have + quantity
		case ActionRemove:
			if quantity > have {
				return errors.FailedPreconditionf("not enough %s (have %d)", item, have).
					WithMeta(errors.MetaReason, errors.ReasonInsufficientQuantity).
					WithMeta("item", item).
					WithMeta("have", have).
					WithMeta("want", quantity)
			}
			if have == quantity {
				delete(p.Inventory, item)
			} else {
				p.Inventory[item] = have - quantity
			}
		}

		out.Remaining = p.Inventory[item]
		out.Inventory = maps.Clone(p.Inventory)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventInventoryChanged, input.PlayerID)
	return &out, nil
}

// GetMoney returns the player's balance
func (o *Orchestrator) GetMoney(_ context.Context, input *GetMoneyInput) (*GetMoneyOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out GetMoneyOutput
	err := o.view(input.PlayerID, func(p *entities.Profile) {
		out.Name = p.Name
		out.Balance = p.Money
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMoney credits a positive amount
func (o *Orchestrator) AddMoney(ctx context.Context, input *AddMoneyInput) (*AddMoneyOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out AddMoneyOutput
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}
		if input.Amount <= 0 {
			return errors.OutOfRange("amount must be greater than zero").
				WithMeta("amount", input.Amount)
		}
		if p.Money > math.MaxInt-input.Amount {
			return errors.OutOfRange("amount is too large").
				WithMeta("amount", input.Amount)
		}
		p.Money += input.Amount
		out.Balance = p.Money
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventMoneyChanged, input.PlayerID)
	return &out, nil
}

// SpendMoney debits a positive amount no larger than the balance
func (o *Orchestrator) SpendMoney(ctx context.Context, input *SpendMoneyInput) (*SpendMoneyOutput, error) {
	if err := validatePlayer(input, func() string { return input.PlayerID }); err != nil {
		return nil, err
	}

	var out SpendMoneyOutput
	err := o.profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		p, err := lookup(data, input.PlayerID)
		if err != nil {
			return err
		}
		if input.Amount <= 0 {
			return errors.OutOfRange("amount must be greater than zero").
				WithMeta("amount", input.Amount)
		}
		if input.Amount > p.Money {
			return errors.FailedPreconditionf("insufficient funds (balance %d)", p.Money).
				WithMeta(errors.MetaReason, errors.ReasonInsufficientFunds).
				WithMeta("balance", p.Money).
				WithMeta("amount", input.Amount)
		}
		p.Money -= input.Amount
		out.Balance = p.Money
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventMoneyChanged, input.PlayerID)
	return &out, nil
}

// Count returns the number of registered players
func (o *Orchestrator) Count() int {
	return o.profiles.Len()
}

func (o *Orchestrator) view(playerID string, fn func(p *entities.Profile)) error {
	return o.profiles.View(func(data map[string]*entities.Profile) error {
		p, err := lookup(data, playerID)
		if err != nil {
			return err
		}
		fn(p)
		return nil
	})
}

func (o *Orchestrator) publish(ctx context.Context, eventType, playerID string) {
	if o.eventBus == nil {
		return
	}

	player := entities.Player{ID: playerID}
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, player, player)); err != nil {
		slog.Warn("Failed to publish event",
			"event", eventType,
			"player_id", playerID,
			"error", err,
		)
	}
}

func lookup(data map[string]*entities.Profile, playerID string) (*entities.Profile, error) {
	p, ok := data[playerID]
	if !ok || p == nil {
		return nil, errors.NotFound("player is not registered").
			WithMeta(errors.MetaReason, errors.ReasonNotRegistered).
			WithMeta("player_id", playerID)
	}
	return p, nil
}

func validatePlayer[T any](input *T, playerID func() string) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", playerID(), vb)
	return vb.Build()
}

// clampAdd returns v+delta limited to [lo, hi] without overflowing
func clampAdd(v, delta, lo, hi int) int {
	switch {
	case delta > 0 && delta > hi-v:
		return hi
	case delta < 0 && delta < lo-v:
		return lo
	}
	return max(lo, min(v+delta, hi))
}
