package store

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClubStore struct {
	db *pgxpool.Pool
}

func NewClubStore(db *pgxpool.Pool) *ClubStore {
	return &ClubStore{db: db}
}

// SearchClubsByName matches club names case-insensitively on a
// substring, the way the club search box queries.
func (s *ClubStore) SearchClubsByName(ctx context.Context, query string, limit int) ([]*models.Club, error) {
	rows, err := s.db.Query(ctx, `
		SELECT club_id, club_name, created_at, updated_at
		FROM clubs
		WHERE club_name ILIKE '%' || $1 || '%'
		ORDER BY club_name
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		c := &models.Club{}
		if err := rows.Scan(&c.ClubID, &c.ClubName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (s *ClubStore) GetClubsByIDs(ctx context.Context, clubIDs []int64) ([]*models.Club, error) {
	if len(clubIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT club_id, club_name, created_at, updated_at
		FROM clubs
		WHERE club_id = ANY($1)
	`, clubIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		c := &models.Club{}
		if err := rows.Scan(&c.ClubID, &c.ClubName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}
