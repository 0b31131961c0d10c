package models

import "time"

// Score is the atomic mutable unit: one row per (round, hole, participant).
// Exactly one of PlayerID / GuestID is set. Score stays NULL until the
// hole is played; Par is denormalized from the course at creation time so
// a later course edit does not rewrite history.
type Score struct {
	ID        int64     `json:"id"`       // Primary key
	RoundID   int64     `json:"round_id"` // FK to rounds(id)
	Hole      int       `json:"hole"`     // 1..NumHoles of the round's course
	PlayerID  *string   `json:"player"`   // FK to profiles(id)
	GuestID   *int64    `json:"guest_id"` // FK to guests(id)
	Score     *int      `json:"score"`    // NULL = not yet played
	Par       *int      `json:"par"`
	Puts      *int      `json:"puts"`
	TeeID     *int64    `json:"tee_id"` // FK to tees(tee_id)
	CreatedAt time.Time `json:"created_at"`
}

// Participant resolves the row's identity columns into a tagged
// participant value.
func (s *Score) Participant() Participant {
	if s.PlayerID != nil {
		return PlayerParticipant(*s.PlayerID)
	}
	if s.GuestID != nil {
		return GuestParticipant(*s.GuestID)
	}
	return Participant{}
}
