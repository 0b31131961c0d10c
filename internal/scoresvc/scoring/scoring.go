// Package scoring computes round summary statistics from already-loaded
// score rows. Everything here is pure: no I/O, no shared state.
package scoring

import (
	"strconv"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

// NotStarted is shown while a participant has no scored holes yet, so an
// in-progress round never renders a misleading "E".
const NotStarted = "N/A"

// TotalScore sums the recorded strokes of one participant. Unplayed
// holes (NULL score) contribute nothing; an empty slice yields 0.
func TotalScore(scores []*models.Score, p models.Participant) int {
	total := 0
	for _, s := range scores {
		if p.Owns(s) && s.Score != nil {
			total += *s.Score
		}
	}
	return total
}

// ParToDate sums hole pars only where the participant has recorded a
// score, so an in-progress round compares strokes against the holes
// actually played rather than the full course. Holes with no configured
// par contribute 0.
func ParToDate(scores []*models.Score, p models.Participant) int {
	total := 0
	for _, s := range scores {
		if p.Owns(s) && s.Score != nil && s.Par != nil {
			total += *s.Par
		}
	}
	return total
}

// HolesPlayed counts the participant's rows with a recorded score.
func HolesPlayed(scores []*models.Score, p models.Participant) int {
	n := 0
	for _, s := range scores {
		if p.Owns(s) && s.Score != nil {
			n++
		}
	}
	return n
}

// Relative is strokes over or under par-to-date.
func Relative(total, parToDate int) int {
	return total - parToDate
}

// FormatRelative renders a relative score with an explicit sign: "+3",
// "-2", or "E" for even. Callers pass holesPlayed so a round that has
// not started shows NotStarted instead of "E".
func FormatRelative(relative, holesPlayed int) string {
	if holesPlayed == 0 {
		return NotStarted
	}
	switch {
	case relative > 0:
		return "+" + strconv.Itoa(relative)
	case relative < 0:
		return strconv.Itoa(relative)
	}
	return "E"
}

// Totals bundles the per-participant aggregates consumed by list views.
type Totals struct {
	TotalScore  int    `json:"total_score"`
	ParToDate   int    `json:"par_to_date"`
	HolesPlayed int    `json:"holes_played"`
	Relative    int    `json:"relative"`
	Display     string `json:"display"` // formatted relative, e.g. "+3"
}

// Summarize computes all aggregates for one participant in a single pass
// over the round's score rows.
func Summarize(scores []*models.Score, p models.Participant) Totals {
	var t Totals
	for _, s := range scores {
		if !p.Owns(s) || s.Score == nil {
			continue
		}
		t.TotalScore += *s.Score
		t.HolesPlayed++
		if s.Par != nil {
			t.ParToDate += *s.Par
		}
	}
	t.Relative = Relative(t.TotalScore, t.ParToDate)
	t.Display = FormatRelative(t.Relative, t.HolesPlayed)
	return t
}

// Participants lists the distinct participants present in the score
// rows, in first-seen order.
func Participants(scores []*models.Score) []models.Participant {
	seen := make(map[string]bool)
	var out []models.Participant
	for _, s := range scores {
		p := s.Participant()
		if p.IsZero() || seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}
	return out
}
