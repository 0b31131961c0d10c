package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoundCursor is a keyset position in the created_at-descending round
// listing: pages continue strictly before (CreatedAt, ID).
type RoundCursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        int64     `json:"id"`
}

// String renders the cursor for URL transport, e.g.
// "2026-05-02T09:14:00.123Z,41".
func (c RoundCursor) String() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + "," + strconv.FormatInt(c.ID, 10)
}

// ParseRoundCursor reverses RoundCursor.String.
func ParseRoundCursor(s string) (*RoundCursor, error) {
	i := strings.LastIndexByte(s, ',')
	if i < 0 {
		return nil, fmt.Errorf("malformed round cursor %q", s)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, s[:i])
	if err != nil {
		return nil, fmt.Errorf("malformed round cursor %q: %w", s, err)
	}

	id, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed round cursor %q: %w", s, err)
	}

	return &RoundCursor{CreatedAt: createdAt, ID: id}, nil
}

type RoundStore struct {
	db *pgxpool.Pool
}

func NewRoundStore(db *pgxpool.Pool) *RoundStore {
	return &RoundStore{db: db}
}

func (s *RoundStore) CreateRound(ctx context.Context, courseID int64) (*models.Round, error) {
	round := &models.Round{}
	err := s.db.QueryRow(ctx, `
		INSERT INTO rounds (course_id)
		VALUES ($1)
		RETURNING id, course_id, created_at
	`, courseID).Scan(&round.ID, &round.CourseID, &round.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}
	return round, nil
}

func (s *RoundStore) GetRoundByID(ctx context.Context, roundID int64) (*models.Round, error) {
	round := &models.Round{}
	err := s.db.QueryRow(ctx, `
		SELECT id, course_id, created_at
		FROM rounds
		WHERE id = $1
	`, roundID).Scan(&round.ID, &round.CourseID, &round.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get round by ID: %w", err)
	}
	return round, nil
}

// ListRoundsByIDs pages through the given rounds newest-first. A nil
// cursor starts at the top; otherwise only rounds strictly older than
// the cursor position are returned.
func (s *RoundStore) ListRoundsByIDs(ctx context.Context, roundIDs []int64, before *RoundCursor, limit int) ([]*models.Round, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, course_id, created_at
		FROM rounds
		WHERE id = ANY($1)`
	args := []interface{}{roundIDs}

	if before != nil {
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, before.CreatedAt, before.ID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d`, limit)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*models.Round
	for rows.Next() {
		r := &models.Round{}
		if err := rows.Scan(&r.ID, &r.CourseID, &r.CreatedAt); err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

func (s *RoundStore) DeleteRound(ctx context.Context, roundID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM rounds WHERE id = $1`, roundID)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
