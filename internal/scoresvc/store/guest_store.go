package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestStore struct {
	db *pgxpool.Pool
}

func NewGuestStore(db *pgxpool.Pool) *GuestStore {
	return &GuestStore{db: db}
}

func (s *GuestStore) CreateGuest(ctx context.Context, ownerID, username string) (*models.Guest, error) {
	g := &models.Guest{}
	err := s.db.QueryRow(ctx, `
		INSERT INTO guests (profile, username)
		VALUES ($1, $2)
		RETURNING id, profile, username, created_at
	`, ownerID, username).Scan(&g.ID, &g.ProfileID, &g.Username, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return g, nil
}

func (s *GuestStore) GetGuestByID(ctx context.Context, guestID int64) (*models.Guest, error) {
	g := &models.Guest{}
	err := s.db.QueryRow(ctx, `
		SELECT id, profile, username, created_at
		FROM guests
		WHERE id = $1
	`, guestID).Scan(&g.ID, &g.ProfileID, &g.Username, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guest by ID: %w", err)
	}
	return g, nil
}

func (s *GuestStore) GetGuestsByOwner(ctx context.Context, ownerID string) ([]*models.Guest, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, profile, username, created_at
		FROM guests
		WHERE profile = $1
		ORDER BY username
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests for owner: %w", err)
	}
	defer rows.Close()

	return scanGuests(rows)
}

func (s *GuestStore) GetGuestsByIDs(ctx context.Context, guestIDs []int64) ([]*models.Guest, error) {
	if len(guestIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, profile, username, created_at
		FROM guests
		WHERE id = ANY($1)
	`, guestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	return scanGuests(rows)
}

func (s *GuestStore) DeleteGuest(ctx context.Context, guestID int64, ownerID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM guests WHERE id = $1 AND profile = $2
	`, guestID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func scanGuests(rows pgx.Rows) ([]*models.Guest, error) {
	var guests []*models.Guest
	for rows.Next() {
		g := &models.Guest{}
		if err := rows.Scan(&g.ID, &g.ProfileID, &g.Username, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
