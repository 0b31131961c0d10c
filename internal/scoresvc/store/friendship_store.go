package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrFriendshipExists signals the unique_friend_pair constraint: there
// is already an edge between the two profiles, in either direction.
var ErrFriendshipExists = errors.New("friendship already exists")

type FriendshipStore struct {
	db *pgxpool.Pool
}

func NewFriendshipStore(db *pgxpool.Pool) *FriendshipStore {
	return &FriendshipStore{db: db}
}

func (s *FriendshipStore) CreateRequest(ctx context.Context, senderID, receiverID string) (*models.Friendship, error) {
	f := &models.Friendship{}
	err := s.db.QueryRow(ctx, `
		INSERT INTO friendships (sender_id, receiver_id, status)
		VALUES ($1, $2, 'pending')
		RETURNING id, sender_id, receiver_id, status, created_at
	`, senderID, receiverID).Scan(&f.ID, &f.SenderID, &f.ReceiverID, &f.Status, &f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrFriendshipExists
		}
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}
	return f, nil
}

// AcceptRequest flips a pending request to accepted. Only the receiver
// of the request may accept it.
func (s *FriendshipStore) AcceptRequest(ctx context.Context, requestID int64, receiverID string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE friendships
		SET status = 'accepted'
		WHERE id = $1 AND receiver_id = $2 AND status = 'pending'
	`, requestID, receiverID)
	if err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// ListAcceptedByUser returns the accepted edges touching the user from
// either direction.
func (s *FriendshipStore) ListAcceptedByUser(ctx context.Context, userID string) ([]*models.Friendship, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, sender_id, receiver_id, status, created_at
		FROM friendships
		WHERE (sender_id = $1 OR receiver_id = $1) AND status = 'accepted'
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	defer rows.Close()

	return scanFriendships(rows)
}

func (s *FriendshipStore) ListPendingForReceiver(ctx context.Context, receiverID string) ([]*models.Friendship, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, sender_id, receiver_id, status, created_at
		FROM friendships
		WHERE receiver_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
	`, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	return scanFriendships(rows)
}

func scanFriendships(rows pgx.Rows) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	for rows.Next() {
		f := &models.Friendship{}
		if err := rows.Scan(&f.ID, &f.SenderID, &f.ReceiverID, &f.Status, &f.CreatedAt); err != nil {
			return nil, err
		}
		friendships = append(friendships, f)
	}
	return friendships, rows.Err()
}
