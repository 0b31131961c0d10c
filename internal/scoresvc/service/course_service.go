package service

import (
	"context"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

type CourseService struct {
	courseStore CourseStore
	teeStore    TeeStore
}

func NewCourseService(courseStore CourseStore, teeStore TeeStore) *CourseService {
	return &CourseService{courseStore: courseStore, teeStore: teeStore}
}

// ResolveHolePars maps hole number to nullable par for a course. A
// missing course surfaces as store.ErrNotFound, never as an empty map.
func (s *CourseService) ResolveHolePars(ctx context.Context, courseID int64) (map[int]*int, error) {
	course, err := s.courseStore.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return course.HolePars(), nil
}

func (s *CourseService) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	return s.courseStore.GetCourseByID(ctx, courseID)
}

func (s *CourseService) GetCoursesByClub(ctx context.Context, clubID int64) ([]*models.Course, error) {
	return s.courseStore.GetCoursesByClub(ctx, clubID)
}

func (s *CourseService) GetTeesByCourse(ctx context.Context, courseID int64) ([]*models.Tee, error) {
	return s.teeStore.GetTeesByCourse(ctx, courseID)
}

// ResolveTeeHolePars restricts the course pars to the holes a tee
// actually rates, for courses where a tee covers only some loop.
func (s *CourseService) ResolveTeeHolePars(ctx context.Context, courseID int64, tee *models.Tee) (map[int]*int, error) {
	pars, err := s.ResolveHolePars(ctx, courseID)
	if err != nil {
		return nil, err
	}

	filtered := make(map[int]*int)
	for _, hole := range tee.HolesWithLength() {
		if par, ok := pars[hole]; ok {
			filtered[hole] = par
		}
	}
	return filtered, nil
}
