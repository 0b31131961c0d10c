package service

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/scoring"
)

type RoundService struct {
	roundStore RoundStore
	scoreStore ScoreStore
	courses    *CourseService
}

func NewRoundService(roundStore RoundStore, scoreStore ScoreStore, courses *CourseService) *RoundService {
	return &RoundService{roundStore: roundStore, scoreStore: scoreStore, courses: courses}
}

// CreateRound inserts the round and materializes every (participant,
// hole) score row up front with score NULL and the course par copied in.
func (s *RoundService) CreateRound(ctx context.Context, courseID int64, participants []models.Participant) (*models.Round, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	holePars, err := s.courses.ResolveHolePars(ctx, courseID)
	if err != nil {
		return nil, err
	}

	round, err := s.roundStore.CreateRound(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.scoreStore.CreateScoresForRound(ctx, round.ID, participants, holePars); err != nil {
		return nil, fmt.Errorf("failed to materialize scores for round %d: %w", round.ID, err)
	}
	return round, nil
}

func (s *RoundService) GetRound(ctx context.Context, roundID int64) (*models.Round, error) {
	return s.roundStore.GetRoundByID(ctx, roundID)
}

func (s *RoundService) GetScores(ctx context.Context, roundID int64) ([]*models.Score, error) {
	return s.scoreStore.GetScoresByRound(ctx, roundID)
}

// isParticipant checks actor membership against the round's recorded
// player set. Guests never authenticate, so the actor is always a
// profile id.
func isParticipant(scores []*models.Score, actorID string) bool {
	for _, p := range scoring.Participants(scores) {
		if p.Kind == models.ParticipantPlayer && p.ProfileID == actorID {
			return true
		}
	}
	return false
}

// UpdateScore writes one stroke count. Only a recorded participant of
// the round may edit any of its cells; a missing row is an error, not
// an insert.
func (s *RoundService) UpdateScore(ctx context.Context, actorID string, roundID int64, hole int, target models.Participant, newScore *int) error {
	if newScore != nil && *newScore < 1 {
		return ErrInvalidScore
	}

	scores, err := s.scoreStore.GetScoresByRound(ctx, roundID)
	if err != nil {
		return err
	}
	if !isParticipant(scores, actorID) {
		return ErrNotParticipant
	}

	return s.scoreStore.UpdateScore(ctx, roundID, hole, target, newScore)
}

// DeleteParticipantScores removes one participant's rows. When the last
// rows of the round go with them, the round record is deleted too.
func (s *RoundService) DeleteParticipantScores(ctx context.Context, actorID string, roundID int64, target models.Participant) error {
	scores, err := s.scoreStore.GetScoresByRound(ctx, roundID)
	if err != nil {
		return err
	}
	if !isParticipant(scores, actorID) {
		return ErrNotParticipant
	}

	if _, err := s.scoreStore.DeleteScoresForParticipant(ctx, roundID, target); err != nil {
		return err
	}

	remaining, err := s.scoreStore.CountScoresForRound(ctx, roundID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return s.roundStore.DeleteRound(ctx, roundID)
	}
	return nil
}
