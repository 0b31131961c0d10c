package service

import "errors"

var (
	// ErrNotParticipant rejects a write from an identity that is not
	// among the round's recorded participants.
	ErrNotParticipant = errors.New("not a participant of this round")

	// ErrInvalidScore rejects stroke counts below 1.
	ErrInvalidScore = errors.New("score must be at least 1")

	// ErrNoParticipants rejects round creation with an empty player set.
	ErrNoParticipants = errors.New("round needs at least one participant")
)
