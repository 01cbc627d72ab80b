package store

import (
	"github.com/KirkDiggler/rpg-table/internal/entities"
	"github.com/KirkDiggler/rpg-table/internal/repositories/snapshot"
)

// Collection names
const (
	ProfilesName   = "profiles"
	InitiativeName = "initiative"
)

// Profiles is the character sheet collection keyed by player ID
type Profiles = Collection[*entities.Profile]

// Boards is the initiative collection keyed by room ID
type Boards = Collection[entities.Board]

// NewProfiles creates the profile collection over repo
func NewProfiles(repo snapshot.Repository) (*Profiles, error) {
	return New(&Config[*entities.Profile]{
		Name:       ProfilesName,
		Repository: repo,
		Clone:      (*entities.Profile).Clone,
		Sanitize: func(_ string, p *entities.Profile) (*entities.Profile, bool) {
			if p == nil {
				return nil, false
			}
			p.Normalize()
			return p, true
		},
	})
}

// NewBoards creates the initiative collection over repo
func NewBoards(repo snapshot.Repository) (*Boards, error) {
	return New(&Config[entities.Board]{
		Name:       InitiativeName,
		Repository: repo,
		Clone:      entities.Board.Clone,
		Sanitize: func(_ string, b entities.Board) (entities.Board, bool) {
			return b, len(b) > 0
		},
	})
}
