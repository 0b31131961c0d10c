package comm

import (
	"encoding/json"
	"time"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/service"
)

// WSMessage is the envelope every socket and NATS message travels in.
// RoundId is set on round-scoped broadcasts so the socket service can
// route them to the right room.
type WSMessage struct {
	Type     string          `json:"type"` // e.g. "init", "update-score"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
	RoundId  int64           `json:"roundid,omitempty"`
}

// NATS topics between the two services.
const (
	TopicSocketService = "socket.service" // socketsvc -> scoresvc
	TopicScoreService  = "score.service"  // scoresvc -> socketsvc
)

type Res struct {
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}

// PlayerData answers a socket init with the caller's profile and the
// number of friend requests waiting on them.
type PlayerData struct {
	Profile         *models.Profile `json:"profile"`
	PendingRequests int             `json:"pending_requests"`
}

// ScoreUpdate is the payload of both the update-score request and the
// score-updated broadcast.
type ScoreUpdate struct {
	RoundId     int64              `json:"round_id"`
	Hole        int                `json:"hole"`
	Participant models.Participant `json:"participant"`
	Score       *int               `json:"score"`
	At          time.Time          `json:"at,omitempty"`
}

// RoundData carries a full round view: the round row, its score rows in
// hole order, and the course pars.
type RoundData struct {
	Round    *models.Round   `json:"round"`
	Scores   []*models.Score `json:"scores"`
	HolePars map[int]*int    `json:"hole_pars"`
	Course   *models.Course  `json:"course"`
}

// RoundPageData wraps a dashboard page for the wire.
type RoundPageData struct {
	Page *service.RoundPage `json:"page"`
}
