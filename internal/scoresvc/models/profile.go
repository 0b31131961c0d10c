package models

import "time"

// Profile is a registered account. ID matches the auth identity subject.
type Profile struct {
	ID          string     `json:"id"` // uuid, matches the auth subject
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	ToBeDeleted bool       `json:"to_be_deleted"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
