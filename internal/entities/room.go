package entities

import (
	"maps"
	"sort"
)

// Room identifies a chat channel to rpg-toolkit. Initiative boards are
// scoped to a room.
type Room struct {
	ID string
}

// GetID returns the room ID
func (r Room) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r Room) GetType() string {
	return "room"
}

// Participant is one player's entry on an initiative board
type Participant struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	// Seq records when the player first joined the board. Ties on Score
	// are ordered by Seq. Snapshots written without it load as 0.
	Seq int64 `json:"seq,omitempty"`
}

// Board maps player ID to participant for a single room
type Board map[string]Participant

// Clone returns a copy of the board
func (b Board) Clone() Board {
	if b == nil {
		return Board{}
	}
	return maps.Clone(b)
}

// NextSeq returns a sequence number greater than any on the board
func (b Board) NextSeq() int64 {
	var top int64
	for _, p := range b {
		top = max(top, p.Seq)
	}
	return top + 1
}

// RankedParticipant is a board entry in turn order
type RankedParticipant struct {
	PlayerID string
	Name     string
	Score    int
}

// Ranked returns the board sorted by score descending. Ties keep the order
// players first joined; entries with the same Seq fall back to player ID.
func (b Board) Ranked() []RankedParticipant {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := b[ids[i]], b[ids[j]]
		if pi.Score != pj.Score {
			return pi.Score > pj.Score
		}
		if pi.Seq != pj.Seq {
			return pi.Seq < pj.Seq
		}
		return ids[i] < ids[j]
	})

	ranked := make([]RankedParticipant, len(ids))
	for i, id := range ids {
		ranked[i] = RankedParticipant{
			PlayerID: id,
			Name:     b[id].Name,
			Score:    b[id].Score,
		}
	}
	return ranked
}
