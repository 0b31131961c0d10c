package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

// memStore is an in-memory stand-in for every store capability,
// mirroring the SQL semantics the pgx stores rely on (uniqueness of
// (round, hole, participant), keyset ordering, sentinel errors).
type memStore struct {
	clubs       map[int64]*models.Club
	courses     map[int64]*models.Course
	tees        map[int64][]*models.Tee
	rounds      map[int64]*models.Round
	scores      []*models.Score
	profiles    map[string]*models.Profile
	guests      map[int64]*models.Guest
	friendships []*models.Friendship

	nextRoundID      int64
	nextScoreID      int64
	nextGuestID      int64
	nextFriendshipID int64

	now time.Time
}

func newMemStore() *memStore {
	return &memStore{
		clubs:    make(map[int64]*models.Club),
		courses:  make(map[int64]*models.Course),
		tees:     make(map[int64][]*models.Tee),
		rounds:   make(map[int64]*models.Round),
		profiles: make(map[string]*models.Profile),
		guests:   make(map[int64]*models.Guest),
		now:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so created_at ordering is deterministic.
func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Minute)
	return m.now
}

// --- ClubStore ---

func (m *memStore) SearchClubsByName(_ context.Context, query string, limit int) ([]*models.Club, error) {
	var out []*models.Club
	for _, c := range m.clubs {
		if strings.Contains(strings.ToLower(c.ClubName), strings.ToLower(query)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClubName < out[j].ClubName })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetClubsByIDs(_ context.Context, clubIDs []int64) ([]*models.Club, error) {
	var out []*models.Club
	for _, id := range clubIDs {
		if c, ok := m.clubs[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- CourseStore ---

func (m *memStore) GetCourseByID(_ context.Context, courseID int64) (*models.Course, error) {
	c, ok := m.courses[courseID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (m *memStore) GetCoursesByClub(_ context.Context, clubID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range m.courses {
		if c.ClubID == clubID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) GetCoursesByIDs(_ context.Context, courseIDs []int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, id := range courseIDs {
		if c, ok := m.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- TeeStore ---

func (m *memStore) GetTeesByCourse(_ context.Context, courseID int64) ([]*models.Tee, error) {
	return m.tees[courseID], nil
}

// --- RoundStore ---

func (m *memStore) CreateRound(_ context.Context, courseID int64) (*models.Round, error) {
	m.nextRoundID++
	r := &models.Round{ID: m.nextRoundID, CourseID: courseID, CreatedAt: m.tick()}
	m.rounds[r.ID] = r
	return r, nil
}

func (m *memStore) GetRoundByID(_ context.Context, roundID int64) (*models.Round, error) {
	r, ok := m.rounds[roundID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memStore) ListRoundsByIDs(_ context.Context, roundIDs []int64, before *store.RoundCursor, limit int) ([]*models.Round, error) {
	want := make(map[int64]bool, len(roundIDs))
	for _, id := range roundIDs {
		want[id] = true
	}

	var out []*models.Round
	for _, r := range m.rounds {
		if !want[r.ID] {
			continue
		}
		if before != nil {
			if !r.CreatedAt.Before(before.CreatedAt) &&
				!(r.CreatedAt.Equal(before.CreatedAt) && r.ID < before.ID) {
				continue
			}
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) DeleteRound(_ context.Context, roundID int64) error {
	if _, ok := m.rounds[roundID]; !ok {
		return store.ErrNoRowsAffected
	}
	delete(m.rounds, roundID)
	return nil
}

// --- ScoreStore ---

func (m *memStore) hasScoreRow(roundID int64, hole int, p models.Participant) bool {
	for _, sc := range m.scores {
		if sc.RoundID == roundID && sc.Hole == hole && p.Owns(sc) {
			return true
		}
	}
	return false
}

func (m *memStore) CreateScoresForRound(_ context.Context, roundID int64, participants []models.Participant, holePars map[int]*int) (int64, error) {
	holes := make([]int, 0, len(holePars))
	for hole := range holePars {
		holes = append(holes, hole)
	}
	sort.Ints(holes)

	var inserted int64
	for _, p := range participants {
		for _, hole := range holes {
			if m.hasScoreRow(roundID, hole, p) {
				continue // ON CONFLICT DO NOTHING
			}
			m.nextScoreID++
			sc := &models.Score{
				ID:        m.nextScoreID,
				RoundID:   roundID,
				Hole:      hole,
				Par:       holePars[hole],
				CreatedAt: m.now,
			}
			switch p.Kind {
			case models.ParticipantPlayer:
				id := p.ProfileID
				sc.PlayerID = &id
			case models.ParticipantGuest:
				id := p.GuestID
				sc.GuestID = &id
			}
			m.scores = append(m.scores, sc)
			inserted++
		}
	}
	return inserted, nil
}

func (m *memStore) GetScoresByRound(_ context.Context, roundID int64) ([]*models.Score, error) {
	var out []*models.Score
	for _, sc := range m.scores {
		if sc.RoundID == roundID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hole < out[j].Hole })
	return out, nil
}

func (m *memStore) GetScoresByRounds(_ context.Context, roundIDs []int64) ([]*models.Score, error) {
	want := make(map[int64]bool, len(roundIDs))
	for _, id := range roundIDs {
		want[id] = true
	}
	var out []*models.Score
	for _, sc := range m.scores {
		if want[sc.RoundID] {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (m *memStore) UpdateScore(_ context.Context, roundID int64, hole int, p models.Participant, newScore *int) error {
	for _, sc := range m.scores {
		if sc.RoundID == roundID && sc.Hole == hole && p.Owns(sc) {
			sc.Score = newScore
			return nil
		}
	}
	return store.ErrNoRowsAffected
}

func (m *memStore) DeleteScoresForParticipant(_ context.Context, roundID int64, p models.Participant) (int64, error) {
	var kept []*models.Score
	var deleted int64
	for _, sc := range m.scores {
		if sc.RoundID == roundID && p.Owns(sc) {
			deleted++
			continue
		}
		kept = append(kept, sc)
	}
	m.scores = kept
	return deleted, nil
}

func (m *memStore) CountScoresForRound(_ context.Context, roundID int64) (int, error) {
	count := 0
	for _, sc := range m.scores {
		if sc.RoundID == roundID {
			count++
		}
	}
	return count, nil
}

func (m *memStore) GetRoundIDsForPlayers(_ context.Context, playerIDs []string) ([]int64, error) {
	want := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		want[id] = true
	}
	seen := make(map[int64]bool)
	var out []int64
	for _, sc := range m.scores {
		if sc.PlayerID != nil && want[*sc.PlayerID] && !seen[sc.RoundID] {
			seen[sc.RoundID] = true
			out = append(out, sc.RoundID)
		}
	}
	return out, nil
}

// --- ProfileStore ---

func (m *memStore) GetProfileByID(_ context.Context, profileID string) (*models.Profile, error) {
	p, ok := m.profiles[profileID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (m *memStore) GetProfilesByIDs(_ context.Context, profileIDs []string) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, id := range profileIDs {
		if p, ok := m.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) SearchProfilesByUsername(_ context.Context, query string, limit int) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, p := range m.profiles {
		if strings.Contains(strings.ToLower(p.Username), strings.ToLower(query)) && !p.ToBeDeleted {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- GuestStore ---

func (m *memStore) CreateGuest(_ context.Context, ownerID, username string) (*models.Guest, error) {
	m.nextGuestID++
	g := &models.Guest{ID: m.nextGuestID, ProfileID: ownerID, Username: username, CreatedAt: m.tick()}
	m.guests[g.ID] = g
	return g, nil
}

func (m *memStore) GetGuestByID(_ context.Context, guestID int64) (*models.Guest, error) {
	g, ok := m.guests[guestID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return g, nil
}

func (m *memStore) GetGuestsByOwner(_ context.Context, ownerID string) ([]*models.Guest, error) {
	var out []*models.Guest
	for _, g := range m.guests {
		if g.ProfileID == ownerID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *memStore) GetGuestsByIDs(_ context.Context, guestIDs []int64) ([]*models.Guest, error) {
	var out []*models.Guest
	for _, id := range guestIDs {
		if g, ok := m.guests[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memStore) DeleteGuest(_ context.Context, guestID int64, ownerID string) error {
	g, ok := m.guests[guestID]
	if !ok || g.ProfileID != ownerID {
		return store.ErrNoRowsAffected
	}
	delete(m.guests, guestID)
	return nil
}

// --- FriendshipStore ---

func (m *memStore) CreateRequest(_ context.Context, senderID, receiverID string) (*models.Friendship, error) {
	for _, f := range m.friendships {
		same := (f.SenderID == senderID && f.ReceiverID == receiverID) ||
			(f.SenderID == receiverID && f.ReceiverID == senderID)
		if same {
			return nil, store.ErrFriendshipExists
		}
	}
	m.nextFriendshipID++
	f := &models.Friendship{
		ID:         m.nextFriendshipID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendshipPending,
		CreatedAt:  m.tick(),
	}
	m.friendships = append(m.friendships, f)
	return f, nil
}

func (m *memStore) AcceptRequest(_ context.Context, requestID int64, receiverID string) error {
	for _, f := range m.friendships {
		if f.ID == requestID && f.ReceiverID == receiverID && f.Status == models.FriendshipPending {
			f.Status = models.FriendshipAccepted
			return nil
		}
	}
	return store.ErrNoRowsAffected
}

func (m *memStore) ListAcceptedByUser(_ context.Context, userID string) ([]*models.Friendship, error) {
	var out []*models.Friendship
	for _, f := range m.friendships {
		if f.Status == models.FriendshipAccepted && (f.SenderID == userID || f.ReceiverID == userID) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) ListPendingForReceiver(_ context.Context, receiverID string) ([]*models.Friendship, error) {
	var out []*models.Friendship
	for _, f := range m.friendships {
		if f.Status == models.FriendshipPending && f.ReceiverID == receiverID {
			out = append(out, f)
		}
	}
	return out, nil
}

// --- fixtures ---

func intp(v int) *int { return &v }

// seedCourse registers a club and an n-hole course with the given pars.
func (m *memStore) seedCourse(courseID int64, name string, pars []int) *models.Course {
	clubID := courseID * 10
	m.clubs[clubID] = &models.Club{ClubID: clubID, ClubName: name + " GC"}

	c := &models.Course{
		CourseID:   courseID,
		ClubID:     clubID,
		CourseName: name,
		NumHoles:   len(pars),
	}
	ptrs := []**int{
		&c.Par1, &c.Par2, &c.Par3, &c.Par4, &c.Par5, &c.Par6,
		&c.Par7, &c.Par8, &c.Par9, &c.Par10, &c.Par11, &c.Par12,
		&c.Par13, &c.Par14, &c.Par15, &c.Par16, &c.Par17, &c.Par18,
	}
	for i, par := range pars {
		if i < len(ptrs) {
			*ptrs[i] = intp(par)
		}
	}
	m.courses[courseID] = c
	return c
}

func (m *memStore) seedProfile(id, username string) *models.Profile {
	p := &models.Profile{ID: id, Username: username}
	m.profiles[id] = p
	return p
}
