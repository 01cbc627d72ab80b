package character

import (
	"github.com/KirkDiggler/rpg-table/internal/entities"
)

// Event types published after a committed change
const (
	EventRegistered        = "character.registered"
	EventUnregistered      = "character.unregistered"
	EventHPChanged         = "character.hp_changed"
	EventMoneyChanged      = "character.money_changed"
	EventInventoryChanged  = "character.inventory_changed"
	EventAttributesChanged = "character.attributes_changed"
)

// InventoryAction is the direction of an inventory change
type InventoryAction string

// Inventory actions
const (
	ActionAdd    InventoryAction = "add"
	ActionRemove InventoryAction = "remove"
)

// AttributePair is one name=value assignment
type AttributePair struct {
	Name  string
	Value int
}

// RegisterInput contains the player to register
type RegisterInput struct {
	PlayerID string
	Name     string
}

// RegisterOutput contains the new profile
type RegisterOutput struct {
	Profile *entities.Profile
}

// UnregisterInput identifies the profile to delete
type UnregisterInput struct {
	PlayerID string
}

// UnregisterOutput is empty on success
type UnregisterOutput struct{}

// GetProfileInput identifies the profile to read
type GetProfileInput struct {
	PlayerID string
}

// GetProfileOutput contains a copy of the profile
type GetProfileOutput struct {
	Profile *entities.Profile
}

// GetAttributesInput identifies the profile to read
type GetAttributesInput struct {
	PlayerID string
}

// GetAttributesOutput contains a copy of the attributes
type GetAttributesOutput struct {
	Name       string
	Attributes map[string]int
}

// UpsertAttributesInput contains the pairs to set
type UpsertAttributesInput struct {
	PlayerID string
	Pairs    []AttributePair
}

// UpsertAttributesOutput contains the attributes after the change
type UpsertAttributesOutput struct {
	Updated    []AttributePair
	Attributes map[string]int
}

// RemoveAttributesInput contains the attribute names to remove
type RemoveAttributesInput struct {
	PlayerID string
	Names    []string
}

// RemoveAttributesOutput reports what was removed
type RemoveAttributesOutput struct {
	Removed    []string
	Attributes map[string]int
}

// GetHPInput identifies the profile to read
type GetHPInput struct {
	PlayerID string
}

// GetHPOutput contains current and maximum hit points
type GetHPOutput struct {
	Current int
	Max     int
}

// SetHPMaxInput contains the new maximum
type SetHPMaxInput struct {
	PlayerID string
	Max      int
}

// SetHPMaxOutput contains hit points after the full heal
type SetHPMaxOutput struct {
	Current int
	Max     int
}

// AdjustHPInput contains a signed hit point change
type AdjustHPInput struct {
	PlayerID string
	Delta    int
}

// AdjustHPOutput contains the clamped result. Delta is the change actually
// applied.
type AdjustHPOutput struct {
	Current int
	Max     int
	Delta   int
}

// GetInventoryInput identifies the profile to read
type GetInventoryInput struct {
	PlayerID string
}

// GetInventoryOutput contains a copy of the inventory
type GetInventoryOutput struct {
	Inventory map[string]int
}

// AdjustInventoryInput adds or removes Quantity of Item. Quantity 0 means 1.
type AdjustInventoryInput struct {
	PlayerID string
	Action   InventoryAction
	Quantity int
	Item     string
}

// AdjustInventoryOutput reports the applied change
type AdjustInventoryOutput struct {
	Action    InventoryAction
	Item      string
	Quantity  int
	Remaining int
	Inventory map[string]int
}

// GetMoneyInput identifies the profile to read
type GetMoneyInput struct {
	PlayerID string
}

// GetMoneyOutput contains the balance
type GetMoneyOutput struct {
	Name    string
	Balance int
}

// AddMoneyInput contains a positive amount to credit
type AddMoneyInput struct {
	PlayerID string
	Amount   int
}

// AddMoneyOutput contains the new balance
type AddMoneyOutput struct {
	Balance int
}

// SpendMoneyInput contains a positive amount to debit
type SpendMoneyInput struct {
	PlayerID string
	Amount   int
}

// SpendMoneyOutput contains the new balance
type SpendMoneyOutput struct {
	Balance int
}
