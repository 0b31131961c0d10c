package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error) {
	p := &models.Profile{}
	err := s.db.QueryRow(ctx, `
		SELECT id, username, first_name, last_name, to_be_deleted, updated_at
		FROM profiles
		WHERE id = $1
	`, profileID).Scan(&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.ToBeDeleted, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}
	return p, nil
}

func (s *ProfileStore) GetProfilesByIDs(ctx context.Context, profileIDs []string) ([]*models.Profile, error) {
	if len(profileIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, username, first_name, last_name, to_be_deleted, updated_at
		FROM profiles
		WHERE id = ANY($1)
	`, profileIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p := &models.Profile{}
		if err := rows.Scan(&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.ToBeDeleted, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SearchProfilesByUsername backs the add-friend search box.
func (s *ProfileStore) SearchProfilesByUsername(ctx context.Context, query string, limit int) ([]*models.Profile, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, username, first_name, last_name, to_be_deleted, updated_at
		FROM profiles
		WHERE username ILIKE '%' || $1 || '%' AND to_be_deleted = false
		ORDER BY username
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p := &models.Profile{}
		if err := rows.Scan(&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.ToBeDeleted, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
