package models

import "time"

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is directional on creation (sender requests receiver) and
// undirected in effect once accepted.
type Friendship struct {
	ID         int64     `json:"id"`          // Primary key
	SenderID   string    `json:"sender_id"`   // FK to profiles(id)
	ReceiverID string    `json:"receiver_id"` // FK to profiles(id)
	Status     string    `json:"status"`      // 'pending' or 'accepted'
	CreatedAt  time.Time `json:"created_at"`
}

// Other returns the profile on the far side of the edge from userID.
func (f *Friendship) Other(userID string) string {
	if f.SenderID == userID {
		return f.ReceiverID
	}
	return f.SenderID
}
