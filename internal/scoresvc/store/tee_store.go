package store

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeeStore struct {
	db *pgxpool.Pool
}

func NewTeeStore(db *pgxpool.Pool) *TeeStore {
	return &TeeStore{db: db}
}

func (s *TeeStore) GetTeesByCourse(ctx context.Context, courseID int64) ([]*models.Tee, error) {
	rows, err := s.db.Query(ctx, `
		SELECT tee_id, course_id, tee_name, course_rating, slope_rating,
		       length1, length2, length3, length4, length5, length6,
		       length7, length8, length9, length10, length11, length12,
		       length13, length14, length15, length16, length17, length18,
		       created_at, updated_at
		FROM tees
		WHERE course_id = $1
		ORDER BY tee_id
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tees for course: %w", err)
	}
	defer rows.Close()

	var tees []*models.Tee
	for rows.Next() {
		t := &models.Tee{}
		err := rows.Scan(
			&t.TeeID,
			&t.CourseID,
			&t.TeeName,
			&t.CourseRating,
			&t.SlopeRating,
			&t.Length1, &t.Length2, &t.Length3, &t.Length4, &t.Length5, &t.Length6,
			&t.Length7, &t.Length8, &t.Length9, &t.Length10, &t.Length11, &t.Length12,
			&t.Length13, &t.Length14, &t.Length15, &t.Length16, &t.Length17, &t.Length18,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tees = append(tees, t)
	}
	return tees, rows.Err()
}
