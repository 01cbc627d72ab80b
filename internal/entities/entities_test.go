package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-table/internal/entities"
)

func TestNewProfileDefaults(t *testing.T) {
	p := entities.NewProfile("Alice")

	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 0, p.Money)
	assert.Equal(t, 10, p.HPCurrent)
	assert.Equal(t, 10, p.HPMax)
	assert.Empty(t, p.Inventory)
	assert.Empty(t, p.Attributes)
}

func TestProfileCloneIsDeep(t *testing.T) {
	p := entities.NewProfile("Alice")
	p.Inventory["Potion"] = 2
	p.Attributes["str"] = 14

	clone := p.Clone()
	clone.Inventory["Potion"] = 5
	clone.Attributes["dex"] = 12
	clone.HPCurrent = 1

	assert.Equal(t, 2, p.Inventory["Potion"])
	assert.NotContains(t, p.Attributes, "dex")
	assert.Equal(t, 10, p.HPCurrent)
}

func TestProfileNormalize(t *testing.T) {
	p := &entities.Profile{
		Name:      "Bob",
		Money:     -3,
		HPCurrent: 50,
		HPMax:     0,
		Inventory: map[string]int{"Arrow": 0, "Rope": 1},
	}
	p.Normalize()

	assert.Equal(t, 0, p.Money)
	assert.Equal(t, 1, p.HPMax)
	assert.Equal(t, 1, p.HPCurrent)
	assert.Equal(t, map[string]int{"Rope": 1}, p.Inventory)
	require.NotNil(t, p.Attributes)
}

func TestBoardRanked(t *testing.T) {
	board := entities.Board{
		"p1": {Name: "Alice", Score: 12, Seq: 2},
		"p2": {Name: "Bob", Score: 18, Seq: 3},
		"p3": {Name: "Cara", Score: 12, Seq: 1},
		"p4": {Name: "Dan", Score: 5, Seq: 4},
	}

	ranked := board.Ranked()
	require.Len(t, ranked, 4)
	names := []string{ranked[0].Name, ranked[1].Name, ranked[2].Name, ranked[3].Name}
	assert.Equal(t, []string{"Bob", "Cara", "Alice", "Dan"}, names)
	assert.Equal(t, "p2", ranked[0].PlayerID)
}

func TestBoardNextSeq(t *testing.T) {
	assert.Equal(t, int64(1), entities.Board{}.NextSeq())
	assert.Equal(t, int64(8), entities.Board{"a": {Seq: 7}, "b": {Seq: 2}}.NextSeq())
}

func TestEntityTypes(t *testing.T) {
	assert.Equal(t, "player", entities.Player{ID: "1"}.GetType())
	assert.Equal(t, "1", entities.Player{ID: "1"}.GetID())
	assert.Equal(t, "room", entities.Room{ID: "r"}.GetType())
	assert.Equal(t, "r", entities.Room{ID: "r"}.GetID())
}
