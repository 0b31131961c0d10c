package eventlog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fairwaylabs/golf-services/internal/comm"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

const collectionName = "score_events"

// retention bounds how long a round's score history is replayable
// for sockets that join mid-round.
const retention = 48 * time.Hour

type Event struct {
	RoundID   int64     `bson:"round_id"`
	Hole      int       `bson:"hole"`
	PlayerID  *string   `bson:"player_id,omitempty"`
	GuestID   *int64    `bson:"guest_id,omitempty"`
	Score     *int      `bson:"score"`
	At        time.Time `bson:"at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// ScoreUpdate converts the archived form back into the wire payload.
func (e Event) ScoreUpdate() comm.ScoreUpdate {
	u := comm.ScoreUpdate{
		RoundId: e.RoundID,
		Hole:    e.Hole,
		Score:   e.Score,
		At:      e.At,
	}
	if e.PlayerID != nil {
		u.Participant = models.PlayerParticipant(*e.PlayerID)
	} else if e.GuestID != nil {
		u.Participant = models.GuestParticipant(*e.GuestID)
	}
	return u
}

type Store struct {
	collection *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{collection: db.Collection(collectionName)}
}

func (s *Store) CollectionName() string {
	return collectionName
}

// Append archives one score change for late-join replay.
func (s *Store) Append(ctx context.Context, u comm.ScoreUpdate) error {
	now := time.Now().UTC()
	event := Event{
		RoundID:   u.RoundId,
		Hole:      u.Hole,
		Score:     u.Score,
		At:        now,
		ExpiresAt: now.Add(retention),
	}
	if u.Participant.Kind == models.ParticipantPlayer {
		id := u.Participant.ProfileID
		event.PlayerID = &id
	} else {
		id := u.Participant.GuestID
		event.GuestID = &id
	}

	_, err := s.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to append score event: %w", err)
	}
	return nil
}

// Recent returns the round's archived score changes in the order they
// happened, capped at limit.
func (s *Store) Recent(ctx context.Context, roundID int64, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.M{"at": -1}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{"round_id": roundID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query score events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode score events: %w", err)
	}

	// newest-first from the index, oldest-first for replay
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return events, nil
}
