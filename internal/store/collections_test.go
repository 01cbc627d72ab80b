package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-table/internal/entities"
	"github.com/KirkDiggler/rpg-table/internal/repositories/snapshot"
	"github.com/KirkDiggler/rpg-table/internal/store"
)

// Snapshots written by earlier versions of the bot must keep loading
const legacyProfiles = `{
    "111": {
        "name": "alice",
        "money": 20,
        "inventory": {"Potion": 2},
        "hp_atual": 7,
        "hp_max": 12,
        "attributes": {"for": 14}
    },
    "222": {"name": "bob", "money": 0, "hp_atual": 10, "hp_max": 10}
}`

const legacyInitiative = `{
    "chan1": {
        "111": {"name": "Alice", "score": 17},
        "222": {"name": "Bob", "score": 9}
    },
    "chan2": {}
}`

func TestLegacySnapshotsLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	profilesPath := filepath.Join(dir, "database.json")
	initiativePath := filepath.Join(dir, "initiative.json")
	require.NoError(t, os.WriteFile(profilesPath, []byte(legacyProfiles), 0o644))
	require.NoError(t, os.WriteFile(initiativePath, []byte(legacyInitiative), 0o644))

	profilesRepo, err := snapshot.NewFile(&snapshot.FileConfig{Path: profilesPath})
	require.NoError(t, err)
	profiles, err := store.NewProfiles(profilesRepo)
	require.NoError(t, err)
	require.NoError(t, profiles.Load(ctx))

	_ = profiles.View(func(data map[string]*entities.Profile) error {
		require.Len(t, data, 2)
		assert.Equal(t, 7, data["111"].HPCurrent)
		assert.Equal(t, 2, data["111"].Inventory["Potion"])
		assert.Equal(t, 14, data["111"].Attributes["for"])
		assert.NotNil(t, data["222"].Inventory)
		assert.NotNil(t, data["222"].Attributes)
		return nil
	})

	boardsRepo, err := snapshot.NewFile(&snapshot.FileConfig{Path: initiativePath})
	require.NoError(t, err)
	boards, err := store.NewBoards(boardsRepo)
	require.NoError(t, err)
	require.NoError(t, boards.Load(ctx))
	assert.Equal(t, 1, boards.Len())

	_ = boards.View(func(data map[string]entities.Board) error {
		ranked := data["chan1"].Ranked()
		require.Len(t, ranked, 2)
		assert.Equal(t, "Alice", ranked[0].Name)
		return nil
	})
}

func TestProfilesRoundTripFieldNames(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")
	repo, err := snapshot.NewFile(&snapshot.FileConfig{Path: path})
	require.NoError(t, err)

	profiles, err := store.NewProfiles(repo)
	require.NoError(t, err)
	require.NoError(t, profiles.Update(ctx, func(data map[string]*entities.Profile) error {
		data["111"] = entities.NewProfile("alice")
		return nil
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"111":{"name":"alice","money":0,"inventory":{},"hp_atual":10,"hp_max":10,"attributes":{}}}`, string(raw))
}
