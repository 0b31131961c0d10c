package models

import "time"

type Club struct {
	ClubID    int64     `json:"club_id"` // Primary key
	ClubName  string    `json:"club_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
