package models

import "fmt"

type ParticipantKind string

const (
	ParticipantPlayer ParticipantKind = "player" // registered profile
	ParticipantGuest  ParticipantKind = "guest"  // ad hoc guest record
)

// Participant is the tagged union over the two identity columns of a
// score row. Resolve it once at load time instead of re-checking column
// presence at every use site.
type Participant struct {
	Kind      ParticipantKind `json:"kind"`
	ProfileID string          `json:"profile_id,omitempty"`
	GuestID   int64           `json:"guest_id,omitempty"`
}

func PlayerParticipant(profileID string) Participant {
	return Participant{Kind: ParticipantPlayer, ProfileID: profileID}
}

func GuestParticipant(guestID int64) Participant {
	return Participant{Kind: ParticipantGuest, GuestID: guestID}
}

func (p Participant) IsZero() bool {
	return p.Kind == ""
}

// Key is a stable map key, e.g. "player:ab12f..." or "guest:41".
func (p Participant) Key() string {
	switch p.Kind {
	case ParticipantPlayer:
		return "player:" + p.ProfileID
	case ParticipantGuest:
		return fmt.Sprintf("guest:%d", p.GuestID)
	}
	return ""
}

// Owns reports whether the score row belongs to this participant.
func (p Participant) Owns(s *Score) bool {
	switch p.Kind {
	case ParticipantPlayer:
		return s.PlayerID != nil && *s.PlayerID == p.ProfileID
	case ParticipantGuest:
		return s.GuestID != nil && *s.GuestID == p.GuestID
	}
	return false
}
