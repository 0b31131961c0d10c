package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

func newDashboardFixture(t *testing.T) (*memStore, *RoundService, *DashboardService) {
	t.Helper()
	m := newMemStore()
	m.seedCourse(1, "Seaside", []int{4, 3, 5, 4, 4, 3, 5, 4, 4})
	m.seedProfile("aaaa", "alice")
	m.seedProfile("bbbb", "bob")
	m.seedProfile("cccc", "carol")

	courses := NewCourseService(m, m)
	rounds := NewRoundService(m, m, courses)
	dashboard := NewDashboardService(m, m, m, m, m, m, m)
	return m, rounds, dashboard
}

func TestListRoundsVisibility(t *testing.T) {
	m, rounds, dashboard := newDashboardFixture(t)
	ctx := context.Background()

	alice := models.PlayerParticipant("aaaa")
	bob := models.PlayerParticipant("bbbb")
	carol := models.PlayerParticipant("cccc")

	own, err := rounds.CreateRound(ctx, 1, []models.Participant{alice})
	require.NoError(t, err)
	bobs, err := rounds.CreateRound(ctx, 1, []models.Participant{bob})
	require.NoError(t, err)
	_, err = rounds.CreateRound(ctx, 1, []models.Participant{carol})
	require.NoError(t, err)

	// nobody is friends yet: alice sees only her own round
	page, err := dashboard.ListRounds(ctx, "aaaa", nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Rounds, 1)
	assert.Equal(t, own.ID, page.Rounds[0].RoundID)
	assert.False(t, page.HasMore)

	// accepted friendship exposes bob's rounds, carol stays hidden
	req, err := m.CreateRequest(ctx, "bbbb", "aaaa")
	require.NoError(t, err)
	require.NoError(t, m.AcceptRequest(ctx, req.ID, "aaaa"))

	page, err = dashboard.ListRounds(ctx, "aaaa", nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Rounds, 2)
	// newest first
	assert.Equal(t, bobs.ID, page.Rounds[0].RoundID)
	assert.Equal(t, own.ID, page.Rounds[1].RoundID)
}

func TestListRoundsSummaryFields(t *testing.T) {
	_, rounds, dashboard := newDashboardFixture(t)
	ctx := context.Background()

	alice := models.PlayerParticipant("aaaa")
	round, err := rounds.CreateRound(ctx, 1, []models.Participant{alice})
	require.NoError(t, err)
	require.NoError(t, rounds.UpdateScore(ctx, "aaaa", round.ID, 1, alice, intp(5)))

	page, err := dashboard.ListRounds(ctx, "aaaa", nil, 10)
	require.NoError(t, err)
	require.Len(t, page.Rounds, 1)

	summary := page.Rounds[0]
	assert.Equal(t, "Seaside", summary.CourseName)
	assert.Equal(t, "Seaside GC", summary.ClubName)
	assert.Equal(t, 9, summary.NumHoles)

	require.Len(t, summary.Participants, 1)
	ps := summary.Participants[0]
	assert.Equal(t, "alice", ps.Username)
	assert.Equal(t, 5, ps.Totals.TotalScore)
	assert.Equal(t, 4, ps.Totals.ParToDate)
	assert.Equal(t, "+1", ps.Totals.Display)
	assert.Equal(t, 1, ps.Totals.HolesPlayed)
	assert.Equal(t, 9, ps.HolesTotal)
}

func TestListRoundsKeysetPagination(t *testing.T) {
	_, rounds, dashboard := newDashboardFixture(t)
	ctx := context.Background()

	alice := models.PlayerParticipant("aaaa")
	var created []int64
	for i := 0; i < 5; i++ {
		r, err := rounds.CreateRound(ctx, 1, []models.Participant{alice})
		require.NoError(t, err)
		created = append(created, r.ID)
	}

	page, err := dashboard.ListRounds(ctx, "aaaa", nil, 2)
	require.NoError(t, err)
	require.Len(t, page.Rounds, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, created[4], page.Rounds[0].RoundID)
	assert.Equal(t, created[3], page.Rounds[1].RoundID)
	require.NotNil(t, page.NextCursor)

	// the next page continues strictly after the cursor, no overlap
	page2, err := dashboard.ListRounds(ctx, "aaaa", page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Rounds, 2)
	assert.True(t, page2.HasMore)
	assert.Equal(t, created[2], page2.Rounds[0].RoundID)
	assert.Equal(t, created[1], page2.Rounds[1].RoundID)

	page3, err := dashboard.ListRounds(ctx, "aaaa", page2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page3.Rounds, 1)
	assert.False(t, page3.HasMore)
	assert.Equal(t, created[0], page3.Rounds[0].RoundID)
}

func TestListRoundsEmpty(t *testing.T) {
	_, _, dashboard := newDashboardFixture(t)

	page, err := dashboard.ListRounds(context.Background(), "aaaa", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Rounds)
	assert.False(t, page.HasMore)
}
