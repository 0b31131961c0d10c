package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

// buildRows materializes score rows for one player over the given pars,
// the same shape round creation produces.
func buildRows(roundID int64, playerID string, pars []int) []*models.Score {
	rows := make([]*models.Score, 0, len(pars))
	for i, par := range pars {
		p := par
		rows = append(rows, &models.Score{
			RoundID:  roundID,
			Hole:     i + 1,
			PlayerID: strp(playerID),
			Par:      &p,
		})
	}
	return rows
}

func TestSummarizeNineHoleRound(t *testing.T) {
	pars := []int{4, 3, 5, 4, 4, 3, 5, 4, 4} // sums 36
	playerA := models.PlayerParticipant("aaaa")
	playerB := models.PlayerParticipant("bbbb")

	rows := append(buildRows(1, "aaaa", pars), buildRows(1, "bbbb", pars)...)

	// freshly created round: nothing scored yet
	for _, p := range []models.Participant{playerA, playerB} {
		tot := Summarize(rows, p)
		assert.Equal(t, 0, tot.TotalScore)
		assert.Equal(t, 0, tot.ParToDate)
		assert.Equal(t, 0, tot.HolesPlayed)
		assert.Equal(t, NotStarted, tot.Display)
	}

	// A records 5 on hole 1 (par 4)
	rows[0].Score = intp(5)
	tot := Summarize(rows, playerA)
	assert.Equal(t, 5, tot.TotalScore)
	assert.Equal(t, 4, tot.ParToDate)
	assert.Equal(t, 1, tot.Relative)
	assert.Equal(t, "+1", tot.Display)
	assert.Equal(t, 1, tot.HolesPlayed)

	// B is untouched by A's entry
	assert.Equal(t, 0, Summarize(rows, playerB).HolesPlayed)

	// A finishes all nine holes for a 40
	scores := []int{5, 3, 6, 4, 5, 3, 5, 4, 5}
	for i, s := range scores {
		rows[i].Score = intp(s)
	}
	tot = Summarize(rows, playerA)
	assert.Equal(t, 40, tot.TotalScore)
	assert.Equal(t, 36, tot.ParToDate)
	assert.Equal(t, 4, tot.Relative)
	assert.Equal(t, "+4", tot.Display)
	assert.Equal(t, 9, tot.HolesPlayed)
}

func TestParToDateCountsOnlyScoredHoles(t *testing.T) {
	player := models.PlayerParticipant("aaaa")
	rows := buildRows(7, "aaaa", []int{4, 3, 5})

	require.Equal(t, 0, ParToDate(rows, player))

	// scoring hole 2 moves par-to-date by exactly that hole's par
	rows[1].Score = intp(4)
	assert.Equal(t, 3, ParToDate(rows, player))

	// a hole with no configured par contributes 0
	rows[2].Par = nil
	rows[2].Score = intp(6)
	assert.Equal(t, 3, ParToDate(rows, player))
	assert.Equal(t, 10, TotalScore(rows, player))
}

func TestTotalScoreDelta(t *testing.T) {
	player := models.PlayerParticipant("aaaa")
	rows := buildRows(3, "aaaa", []int{4, 4})

	before := TotalScore(rows, player)
	rows[0].Score = intp(6)
	assert.Equal(t, before+6, TotalScore(rows, player))

	// correcting an already-recorded score adjusts by the delta
	rows[0].Score = intp(4)
	assert.Equal(t, before+4, TotalScore(rows, player))
}

func TestHolesPlayedBound(t *testing.T) {
	player := models.PlayerParticipant("aaaa")
	rows := buildRows(9, "aaaa", []int{4, 3, 5, 4, 4, 3, 5, 4, 4})

	for i := range rows {
		played := HolesPlayed(rows, player)
		require.GreaterOrEqual(t, played, 0)
		require.LessOrEqual(t, played, len(rows))
		rows[i].Score = intp(4)
	}
	assert.Equal(t, len(rows), HolesPlayed(rows, player))
}

func TestFormatRelative(t *testing.T) {
	tests := []struct {
		name        string
		relative    int
		holesPlayed int
		want        string
	}{
		{"over par", 3, 4, "+3"},
		{"under par", -2, 6, "-2"},
		{"even", 0, 9, "E"},
		{"not started", 0, 0, NotStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelative(tt.relative, tt.holesPlayed))
		})
	}
}

func TestParticipantsMixedIdentities(t *testing.T) {
	guestID := int64(41)
	rows := []*models.Score{
		{RoundID: 1, Hole: 1, PlayerID: strp("aaaa")},
		{RoundID: 1, Hole: 1, GuestID: &guestID},
		{RoundID: 1, Hole: 2, PlayerID: strp("aaaa")},
		{RoundID: 1, Hole: 2, GuestID: &guestID},
	}

	got := Participants(rows)
	require.Len(t, got, 2)
	assert.Equal(t, models.PlayerParticipant("aaaa"), got[0])
	assert.Equal(t, models.GuestParticipant(41), got[1])
}
