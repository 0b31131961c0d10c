package service

import (
	"context"
	"time"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/scoring"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

const DefaultPageSize = 20

// ParticipantSummary is one row of a round card: who played and where
// they stand.
type ParticipantSummary struct {
	Participant models.Participant `json:"participant"`
	Username    string             `json:"username"`
	Totals      scoring.Totals     `json:"totals"`
	HolesTotal  int                `json:"holes_total"`
}

// RoundSummary is one dashboard entry.
type RoundSummary struct {
	RoundID      int64                `json:"round_id"`
	CourseID     int64                `json:"course_id"`
	CourseName   string               `json:"course_name"`
	ClubName     string               `json:"club_name"`
	NumHoles     int                  `json:"num_holes"`
	CreatedAt    time.Time            `json:"created_at"`
	Participants []ParticipantSummary `json:"participants"`
}

// RoundPage is a keyset page of round summaries, newest first.
type RoundPage struct {
	Rounds     []*RoundSummary    `json:"rounds"`
	HasMore    bool               `json:"has_more"`
	NextCursor *store.RoundCursor `json:"next_cursor,omitempty"`
}

type DashboardService struct {
	roundStore      RoundStore
	scoreStore      ScoreStore
	courseStore     CourseStore
	clubStore       ClubStore
	profileStore    ProfileStore
	guestStore      GuestStore
	friendshipStore FriendshipStore
}

func NewDashboardService(
	roundStore RoundStore,
	scoreStore ScoreStore,
	courseStore CourseStore,
	clubStore ClubStore,
	profileStore ProfileStore,
	guestStore GuestStore,
	friendshipStore FriendshipStore,
) *DashboardService {
	return &DashboardService{
		roundStore:      roundStore,
		scoreStore:      scoreStore,
		courseStore:     courseStore,
		clubStore:       clubStore,
		profileStore:    profileStore,
		guestStore:      guestStore,
		friendshipStore: friendshipStore,
	}
}

// ListRounds assembles the page of rounds the user may see: their own
// plus any round containing an accepted friend. Pagination is keyset on
// (created_at, id) descending; HasMore comes from a limit+1 probe so a
// full page is never re-fetched on "load more".
func (s *DashboardService) ListRounds(ctx context.Context, userID string, before *store.RoundCursor, limit int) (*RoundPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	friendships, err := s.friendshipStore.ListAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	playerIDs := []string{userID}
	for _, f := range friendships {
		playerIDs = append(playerIDs, f.Other(userID))
	}

	roundIDs, err := s.scoreStore.GetRoundIDsForPlayers(ctx, playerIDs)
	if err != nil {
		return nil, err
	}
	if len(roundIDs) == 0 {
		return &RoundPage{}, nil
	}

	rounds, err := s.roundStore.ListRoundsByIDs(ctx, roundIDs, before, limit+1)
	if err != nil {
		return nil, err
	}

	page := &RoundPage{}
	if len(rounds) > limit {
		page.HasMore = true
		rounds = rounds[:limit]
	}
	if len(rounds) == 0 {
		return page, nil
	}
	last := rounds[len(rounds)-1]
	page.NextCursor = &store.RoundCursor{CreatedAt: last.CreatedAt, ID: last.ID}

	summaries, err := s.summarize(ctx, rounds)
	if err != nil {
		return nil, err
	}
	page.Rounds = summaries
	return page, nil
}

func (s *DashboardService) summarize(ctx context.Context, rounds []*models.Round) ([]*RoundSummary, error) {
	pageRoundIDs := make([]int64, 0, len(rounds))
	courseIDs := make([]int64, 0, len(rounds))
	for _, r := range rounds {
		pageRoundIDs = append(pageRoundIDs, r.ID)
		courseIDs = append(courseIDs, r.CourseID)
	}

	scores, err := s.scoreStore.GetScoresByRounds(ctx, pageRoundIDs)
	if err != nil {
		return nil, err
	}

	scoresByRound := make(map[int64][]*models.Score)
	var profileIDs []string
	var guestIDs []int64
	seen := make(map[string]bool)
	for _, sc := range scores {
		scoresByRound[sc.RoundID] = append(scoresByRound[sc.RoundID], sc)
		p := sc.Participant()
		if p.IsZero() || seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		switch p.Kind {
		case models.ParticipantPlayer:
			profileIDs = append(profileIDs, p.ProfileID)
		case models.ParticipantGuest:
			guestIDs = append(guestIDs, p.GuestID)
		}
	}

	names, err := s.participantNames(ctx, profileIDs, guestIDs)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseStore.GetCoursesByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	courseByID := make(map[int64]*models.Course, len(courses))
	clubIDs := make([]int64, 0, len(courses))
	for _, c := range courses {
		courseByID[c.CourseID] = c
		clubIDs = append(clubIDs, c.ClubID)
	}

	clubs, err := s.clubStore.GetClubsByIDs(ctx, clubIDs)
	if err != nil {
		return nil, err
	}
	clubNameByID := make(map[int64]string, len(clubs))
	for _, c := range clubs {
		clubNameByID[c.ClubID] = c.ClubName
	}

	summaries := make([]*RoundSummary, 0, len(rounds))
	for _, r := range rounds {
		summary := &RoundSummary{
			RoundID:   r.ID,
			CourseID:  r.CourseID,
			CreatedAt: r.CreatedAt,
		}
		if course, ok := courseByID[r.CourseID]; ok {
			summary.CourseName = course.CourseName
			summary.NumHoles = course.NumHoles
			summary.ClubName = clubNameByID[course.ClubID]
		}

		roundScores := scoresByRound[r.ID]
		for _, p := range scoring.Participants(roundScores) {
			summary.Participants = append(summary.Participants, ParticipantSummary{
				Participant: p,
				Username:    names[p.Key()],
				Totals:      scoring.Summarize(roundScores, p),
				HolesTotal:  summary.NumHoles,
			})
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// participantNames resolves display names for both identity kinds in
// two batched lookups.
func (s *DashboardService) participantNames(ctx context.Context, profileIDs []string, guestIDs []int64) (map[string]string, error) {
	names := make(map[string]string)

	profiles, err := s.profileStore.GetProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		names[models.PlayerParticipant(p.ID).Key()] = p.Username
	}

	guests, err := s.guestStore.GetGuestsByIDs(ctx, guestIDs)
	if err != nil {
		return nil, err
	}
	for _, g := range guests {
		names[models.GuestParticipant(g.ID).Key()] = g.Username
	}
	return names, nil
}
