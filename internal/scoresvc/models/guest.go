package models

import "time"

// Guest is a lightweight identity for a non-account player, scoped to
// the profile that created it.
type Guest struct {
	ID        int64     `json:"id"`      // Primary key
	ProfileID string    `json:"profile"` // FK to profiles(id), the owner
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
