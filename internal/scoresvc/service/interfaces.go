package service

import (
	"context"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

// Services depend on these capability interfaces instead of the
// concrete pgx stores so tests can substitute in-memory fakes.

type ClubStore interface {
	SearchClubsByName(ctx context.Context, query string, limit int) ([]*models.Club, error)
	GetClubsByIDs(ctx context.Context, clubIDs []int64) ([]*models.Club, error)
}

type CourseStore interface {
	GetCourseByID(ctx context.Context, courseID int64) (*models.Course, error)
	GetCoursesByClub(ctx context.Context, clubID int64) ([]*models.Course, error)
	GetCoursesByIDs(ctx context.Context, courseIDs []int64) ([]*models.Course, error)
}

type TeeStore interface {
	GetTeesByCourse(ctx context.Context, courseID int64) ([]*models.Tee, error)
}

type RoundStore interface {
	CreateRound(ctx context.Context, courseID int64) (*models.Round, error)
	GetRoundByID(ctx context.Context, roundID int64) (*models.Round, error)
	ListRoundsByIDs(ctx context.Context, roundIDs []int64, before *store.RoundCursor, limit int) ([]*models.Round, error)
	DeleteRound(ctx context.Context, roundID int64) error
}

type ScoreStore interface {
	CreateScoresForRound(ctx context.Context, roundID int64, participants []models.Participant, holePars map[int]*int) (int64, error)
	GetScoresByRound(ctx context.Context, roundID int64) ([]*models.Score, error)
	GetScoresByRounds(ctx context.Context, roundIDs []int64) ([]*models.Score, error)
	UpdateScore(ctx context.Context, roundID int64, hole int, p models.Participant, newScore *int) error
	DeleteScoresForParticipant(ctx context.Context, roundID int64, p models.Participant) (int64, error)
	CountScoresForRound(ctx context.Context, roundID int64) (int, error)
	GetRoundIDsForPlayers(ctx context.Context, playerIDs []string) ([]int64, error)
}

type ProfileStore interface {
	GetProfileByID(ctx context.Context, profileID string) (*models.Profile, error)
	GetProfilesByIDs(ctx context.Context, profileIDs []string) ([]*models.Profile, error)
	SearchProfilesByUsername(ctx context.Context, query string, limit int) ([]*models.Profile, error)
}

type GuestStore interface {
	CreateGuest(ctx context.Context, ownerID, username string) (*models.Guest, error)
	GetGuestByID(ctx context.Context, guestID int64) (*models.Guest, error)
	GetGuestsByOwner(ctx context.Context, ownerID string) ([]*models.Guest, error)
	GetGuestsByIDs(ctx context.Context, guestIDs []int64) ([]*models.Guest, error)
	DeleteGuest(ctx context.Context, guestID int64, ownerID string) error
}

type FriendshipStore interface {
	CreateRequest(ctx context.Context, senderID, receiverID string) (*models.Friendship, error)
	AcceptRequest(ctx context.Context, requestID int64, receiverID string) error
	ListAcceptedByUser(ctx context.Context, userID string) ([]*models.Friendship, error)
	ListPendingForReceiver(ctx context.Context, receiverID string) ([]*models.Friendship, error)
}
