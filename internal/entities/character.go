// Package entities provides the core data structures persisted by rpg-table.
package entities

import (
	"maps"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Profile defaults applied on registration
const (
	DefaultHP = 10
)

// Profile is a player's character sheet. It is keyed by player ID in the
// profiles snapshot; the JSON field names match the historical file format.
type Profile struct {
	Name       string         `json:"name"`
	Money      int            `json:"money"`
	Inventory  map[string]int `json:"inventory"`
	HPCurrent  int            `json:"hp_atual"`
	HPMax      int            `json:"hp_max"`
	Attributes map[string]int `json:"attributes"`
}

// NewProfile returns a freshly registered profile
func NewProfile(name string) *Profile {
	return &Profile{
		Name:       name,
		Money:      0,
		Inventory:  map[string]int{},
		HPCurrent:  DefaultHP,
		HPMax:      DefaultHP,
		Attributes: map[string]int{},
	}
}

// Clone returns a deep copy of the profile
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Inventory = cloneCounts(p.Inventory)
	clone.Attributes = cloneCounts(p.Attributes)
	return &clone
}

// Normalize repairs fields that older snapshots may have left out
func (p *Profile) Normalize() {
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	if p.Attributes == nil {
		p.Attributes = map[string]int{}
	}
	if p.HPMax < 1 {
		p.HPMax = 1
	}
	p.HPCurrent = max(0, min(p.HPCurrent, p.HPMax))
	p.Money = max(0, p.Money)
	for item, qty := range p.Inventory {
		if qty <= 0 {
			delete(p.Inventory, item)
		}
	}
}

func cloneCounts(in map[string]int) map[string]int {
	if in == nil {
		return map[string]int{}
	}
	return maps.Clone(in)
}

// Player identifies a chat user to rpg-toolkit
type Player struct {
	ID string
}

// GetID returns the player ID
func (p Player) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p Player) GetType() string {
	return "player"
}

// Compile-time checks
var (
	_ core.Entity = Player{}
	_ core.Entity = Room{}
)
