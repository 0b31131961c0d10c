package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

var eighteenPars = []int{4, 3, 5, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4, 4}

func newRoundFixture(t *testing.T) (*memStore, *RoundService) {
	t.Helper()
	m := newMemStore()
	m.seedCourse(1, "Seaside", eighteenPars)
	m.seedProfile("aaaa", "alice")
	m.seedProfile("bbbb", "bob")
	courses := NewCourseService(m, m)
	return m, NewRoundService(m, m, courses)
}

func TestCreateRoundMaterializesAllScoreRows(t *testing.T) {
	m, svc := newRoundFixture(t)
	ctx := context.Background()

	participants := []models.Participant{
		models.PlayerParticipant("aaaa"),
		models.PlayerParticipant("bbbb"),
	}

	round, err := svc.CreateRound(ctx, 1, participants)
	require.NoError(t, err)

	scores, err := svc.GetScores(ctx, round.ID)
	require.NoError(t, err)
	require.Len(t, scores, 36) // 2 participants x 18 holes

	for _, sc := range scores {
		assert.Nil(t, sc.Score, "hole %d starts unplayed", sc.Hole)
		require.NotNil(t, sc.Par)
		assert.Equal(t, eighteenPars[sc.Hole-1], *sc.Par)
	}

	// re-creating the same round's rows is a no-op, not a duplication
	inserted, err := m.CreateScoresForRound(ctx, round.ID, participants, m.courses[1].HolePars())
	require.NoError(t, err)
	assert.Zero(t, inserted)

	scores, err = svc.GetScores(ctx, round.ID)
	require.NoError(t, err)
	assert.Len(t, scores, 36)
}

func TestCreateRoundRejectsBadInput(t *testing.T) {
	_, svc := newRoundFixture(t)
	ctx := context.Background()

	_, err := svc.CreateRound(ctx, 1, nil)
	assert.ErrorIs(t, err, ErrNoParticipants)

	_, err = svc.CreateRound(ctx, 999, []models.Participant{models.PlayerParticipant("aaaa")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateScoreAuthorization(t *testing.T) {
	_, svc := newRoundFixture(t)
	ctx := context.Background()

	alice := models.PlayerParticipant("aaaa")
	round, err := svc.CreateRound(ctx, 1, []models.Participant{alice})
	require.NoError(t, err)

	// carol is not in the round's participant set
	err = svc.UpdateScore(ctx, "cccc", round.ID, 1, alice, intp(4))
	assert.ErrorIs(t, err, ErrNotParticipant)

	scores, err := svc.GetScores(ctx, round.ID)
	require.NoError(t, err)
	for _, sc := range scores {
		assert.Nil(t, sc.Score, "rejected write must not mutate any row")
	}

	// alice herself may write
	require.NoError(t, svc.UpdateScore(ctx, "aaaa", round.ID, 1, alice, intp(5)))
	scores, err = svc.GetScores(ctx, round.ID)
	require.NoError(t, err)
	require.NotNil(t, scores[0].Score)
	assert.Equal(t, 5, *scores[0].Score)
}

func TestUpdateScoreValidation(t *testing.T) {
	_, svc := newRoundFixture(t)
	ctx := context.Background()

	alice := models.PlayerParticipant("aaaa")
	round, err := svc.CreateRound(ctx, 1, []models.Participant{alice})
	require.NoError(t, err)

	err = svc.UpdateScore(ctx, "aaaa", round.ID, 1, alice, intp(0))
	assert.ErrorIs(t, err, ErrInvalidScore)

	// hole 19 has no row
	err = svc.UpdateScore(ctx, "aaaa", round.ID, 19, alice, intp(4))
	assert.ErrorIs(t, err, store.ErrNoRowsAffected)
}

func TestDeleteParticipantScoresCascade(t *testing.T) {
	_, svc := newRoundFixture(t)
	ctx := context.Background()

	alice := models.PlayerParticipant("aaaa")
	bob := models.PlayerParticipant("bbbb")
	round, err := svc.CreateRound(ctx, 1, []models.Participant{alice, bob})
	require.NoError(t, err)

	// removing one of two participants leaves the round intact
	require.NoError(t, svc.DeleteParticipantScores(ctx, "aaaa", round.ID, alice))
	_, err = svc.GetRound(ctx, round.ID)
	require.NoError(t, err)

	scores, err := svc.GetScores(ctx, round.ID)
	require.NoError(t, err)
	assert.Len(t, scores, 18)

	// removing the last participant deletes the round itself
	require.NoError(t, svc.DeleteParticipantScores(ctx, "bbbb", round.ID, bob))
	_, err = svc.GetRound(ctx, round.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
