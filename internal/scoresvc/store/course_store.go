package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `
	course_id, club_id, course_name, num_holes, measure_meters,
	par1, par2, par3, par4, par5, par6, par7, par8, par9,
	par10, par11, par12, par13, par14, par15, par16, par17, par18,
	created_at, updated_at`

type CourseStore struct {
	db *pgxpool.Pool
}

func NewCourseStore(db *pgxpool.Pool) *CourseStore {
	return &CourseStore{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.CourseID,
		&c.ClubID,
		&c.CourseName,
		&c.NumHoles,
		&c.MeasureMeters,
		&c.Par1, &c.Par2, &c.Par3, &c.Par4, &c.Par5, &c.Par6,
		&c.Par7, &c.Par8, &c.Par9, &c.Par10, &c.Par11, &c.Par12,
		&c.Par13, &c.Par14, &c.Par15, &c.Par16, &c.Par17, &c.Par18,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourseStore) GetCourseByID(ctx context.Context, courseID int64) (*models.Course, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE course_id = $1
	`, courseID)

	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course by ID: %w", err)
	}
	return course, nil
}

func (s *CourseStore) GetCoursesByClub(ctx context.Context, clubID int64) ([]*models.Course, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE club_id = $1
		ORDER BY course_name
	`, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses for club: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *CourseStore) GetCoursesByIDs(ctx context.Context, courseIDs []int64) ([]*models.Course, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE course_id = ANY($1)
	`, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
