package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScoreStore struct {
	db *pgxpool.Pool
}

func NewScoreStore(db *pgxpool.Pool) *ScoreStore {
	return &ScoreStore{db: db}
}

// CreateScoresForRound materializes one row per (participant, hole) with
// score NULL and the par denormalized from the course. The insert rides
// on the (round, hole, participant) uniqueness constraints with ON
// CONFLICT DO NOTHING, so re-running creation for a round is a no-op
// instead of duplicating rows. Returns the number of rows inserted.
func (s *ScoreStore) CreateScoresForRound(ctx context.Context, roundID int64, participants []models.Participant, holePars map[int]*int) (int64, error) {
	if len(participants) == 0 || len(holePars) == 0 {
		return 0, nil
	}

	holes := make([]int, 0, len(holePars))
	for hole := range holePars {
		holes = append(holes, hole)
	}
	sort.Ints(holes)

	var sb strings.Builder
	sb.WriteString(`INSERT INTO scores (round_id, hole, player, guest_id, par) VALUES `)

	args := make([]interface{}, 0, len(participants)*len(holes)*5)
	n := 0
	for _, p := range participants {
		var playerID *string
		var guestID *int64
		switch p.Kind {
		case models.ParticipantPlayer:
			id := p.ProfileID
			playerID = &id
		case models.ParticipantGuest:
			id := p.GuestID
			guestID = &id
		default:
			return 0, fmt.Errorf("invalid participant kind: %q", p.Kind)
		}

		for _, hole := range holes {
			if n > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", n*5+1, n*5+2, n*5+3, n*5+4, n*5+5))
			args = append(args, roundID, hole, playerID, guestID, holePars[hole])
			n++
		}
	}
	sb.WriteString(` ON CONFLICT DO NOTHING`)

	tag, err := s.db.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to create scores for round: %w", err)
	}
	return tag.RowsAffected(), nil
}

const scoreColumns = `id, round_id, hole, player, guest_id, score, par, puts, tee_id, created_at`

func scanScores(rows pgx.Rows) ([]*models.Score, error) {
	var scores []*models.Score
	for rows.Next() {
		sc := &models.Score{}
		err := rows.Scan(
			&sc.ID,
			&sc.RoundID,
			&sc.Hole,
			&sc.PlayerID,
			&sc.GuestID,
			&sc.Score,
			&sc.Par,
			&sc.Puts,
			&sc.TeeID,
			&sc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

func (s *ScoreStore) GetScoresByRound(ctx context.Context, roundID int64) ([]*models.Score, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+scoreColumns+`
		FROM scores
		WHERE round_id = $1
		ORDER BY hole ASC
	`, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores for round: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

func (s *ScoreStore) GetScoresByRounds(ctx context.Context, roundIDs []int64) ([]*models.Score, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+scoreColumns+`
		FROM scores
		WHERE round_id = ANY($1)
		ORDER BY round_id, hole ASC
	`, roundIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores for rounds: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// UpdateScore sets the stroke count of the uniquely identified row.
// A nil newScore clears the hole back to unplayed.
func (s *ScoreStore) UpdateScore(ctx context.Context, roundID int64, hole int, p models.Participant, newScore *int) error {
	query := `UPDATE scores SET score = $1 WHERE round_id = $2 AND hole = $3 AND `
	args := []interface{}{newScore, roundID, hole}

	switch p.Kind {
	case models.ParticipantPlayer:
		query += `player = $4`
		args = append(args, p.ProfileID)
	case models.ParticipantGuest:
		query += `guest_id = $4`
		args = append(args, p.GuestID)
	default:
		return fmt.Errorf("invalid participant kind: %q", p.Kind)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeleteScoresForParticipant removes all of one participant's rows in a
// round and returns how many were deleted. Round cleanup when the count
// reaches zero is the service's job, not the store's.
func (s *ScoreStore) DeleteScoresForParticipant(ctx context.Context, roundID int64, p models.Participant) (int64, error) {
	query := `DELETE FROM scores WHERE round_id = $1 AND `
	args := []interface{}{roundID}

	switch p.Kind {
	case models.ParticipantPlayer:
		query += `player = $2`
		args = append(args, p.ProfileID)
	case models.ParticipantGuest:
		query += `guest_id = $2`
		args = append(args, p.GuestID)
	default:
		return 0, fmt.Errorf("invalid participant kind: %q", p.Kind)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scores for participant: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *ScoreStore) CountScoresForRound(ctx context.Context, roundID int64) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM scores WHERE round_id = $1
	`, roundID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scores for round: %w", err)
	}
	return count, nil
}

// GetRoundIDsForPlayers lists the rounds any of the given profiles has
// score rows in. Feeds the dashboard's visibility set.
func (s *ScoreStore) GetRoundIDsForPlayers(ctx context.Context, playerIDs []string) ([]int64, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT round_id
		FROM scores
		WHERE player = ANY($1)
	`, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get round IDs for players: %w", err)
	}
	defer rows.Close()

	var roundIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		roundIDs = append(roundIDs, id)
	}
	return roundIDs, rows.Err()
}
