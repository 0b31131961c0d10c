package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-services/internal/comm"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/eventlog"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/service"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

// replayLimit caps how many archived score events a joining socket gets.
const replayLimit = 200

type Broker struct {
	Conn             *nats.Conn
	ProfileService   *service.ProfileService
	FriendService    *service.FriendService
	RoundService     *service.RoundService
	CourseService    *service.CourseService
	DashboardService *service.DashboardService
	EventLog         *eventlog.Store
}

func NewBroker(nc *nats.Conn, profileService *service.ProfileService,
	friendService *service.FriendService, roundService *service.RoundService,
	courseService *service.CourseService, dashboardService *service.DashboardService,
	eventLog *eventlog.Store) *Broker {
	return &Broker{
		Conn:             nc,
		ProfileService:   profileService,
		FriendService:    friendService,
		RoundService:     roundService,
		CourseService:    courseService,
		DashboardService: dashboardService,
		EventLog:         eventLog,
	}
}

// handles messages coming from the socket service
func (b *Broker) handleMessage(msgNat *nats.Msg) {
	msg := &comm.WSMessage{}
	err := json.Unmarshal(msgNat.Data, &msg)
	if err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	switch msg.Type {
	case "init":
		var request struct {
			UserId string `json:"user_id"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		profile, err := b.ProfileService.GetProfile(ctx, request.UserId)
		if err != nil {
			log.Errorf("Error [ProfileService.GetProfile] %s", err)
			return
		}

		pending, err := b.FriendService.ListPendingRequests(ctx, request.UserId)
		if err != nil {
			log.Errorf("Error [FriendService.ListPendingRequests] %s", err)
		}

		playerData := comm.PlayerData{
			Profile:         profile,
			PendingRequests: len(pending),
		}

		b.PublishInitResponse(playerData, msg.SocketId)
	case "join-round":
		var request struct {
			RoundId int64 `json:"round_id"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error decoding request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// replay the recent score history so a socket that joins
		// mid-round does not miss updates broadcast before it arrived
		events, err := b.EventLog.Recent(ctx, request.RoundId, replayLimit)
		if err != nil {
			log.Errorf("Error [EventLog.Recent] %s", err)
			return
		}

		updates := make([]comm.ScoreUpdate, 0, len(events))
		for _, e := range events {
			updates = append(updates, e.ScoreUpdate())
		}

		b.PublishRoundEvents(updates, request.RoundId, msg.SocketId)
	case "get-round":
		var request struct {
			RoundId int64 `json:"round_id"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error decoding request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		roundData, err := b.loadRound(ctx, request.RoundId)
		if err != nil {
			log.Errorf("Error loading round %d: %s", request.RoundId, err)
			return
		}

		b.PublishRoundResponse(*roundData, msg.SocketId)
	case "create-round":
		var request struct {
			CourseId     int64                `json:"course_id"`
			Participants []models.Participant `json:"participants"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error decoding request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		round, err := b.RoundService.CreateRound(ctx, request.CourseId, request.Participants)
		if err != nil {
			log.Errorf("Error [RoundService.CreateRound] %s", err)
			b.PublishRes(comm.Res{Status: false, Error: err.Error()}, "create-round-response", msg.SocketId)
			return
		}

		roundData, err := b.loadRound(ctx, round.ID)
		if err != nil {
			log.Errorf("Error loading round %d: %s", round.ID, err)
			return
		}

		b.PublishRoundResponse(*roundData, msg.SocketId)
	case "update-score":
		var request struct {
			UserId string           `json:"user_id"`
			Update comm.ScoreUpdate `json:"update"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error decoding request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		u := request.Update
		err = b.RoundService.UpdateScore(ctx, request.UserId, u.RoundId, u.Hole, u.Participant, u.Score)
		if err != nil {
			log.Errorf("Error [RoundService.UpdateScore] %s", err)
			b.PublishRes(comm.Res{Status: false, Error: updateError(err)}, "update-score-response", msg.SocketId)
			return
		}

		b.RecordAndBroadcast(ctx, u, msg.SocketId)
	case "delete-scores":
		var request struct {
			UserId      string             `json:"user_id"`
			RoundId     int64              `json:"round_id"`
			Participant models.Participant `json:"participant"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error decoding request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err = b.RoundService.DeleteParticipantScores(ctx, request.UserId, request.RoundId, request.Participant)
		if err != nil {
			log.Errorf("Error [RoundService.DeleteParticipantScores] %s", err)
			b.PublishRes(comm.Res{Status: false, Error: updateError(err)}, "delete-scores-response", msg.SocketId)
			return
		}

		b.PublishScoresDeleted(request.RoundId, request.Participant, msg.SocketId)
	case "list-rounds":
		var request struct {
			UserId string             `json:"user_id"`
			Before *store.RoundCursor `json:"before,omitempty"`
			Limit  int                `json:"limit"`
		}
		err := json.Unmarshal(msg.Data, &request)
		if err != nil {
			log.Errorf("Error decoding request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := b.DashboardService.ListRounds(ctx, request.UserId, request.Before, request.Limit)
		if err != nil {
			log.Errorf("Error [DashboardService.ListRounds] %s", err)
			return
		}

		b.PublishRoundPage(comm.RoundPageData{Page: page}, msg.SocketId)
	default:
		log.Errorf("Unknown message type %q", msg.Type)
		return
	}
}

func (b *Broker) loadRound(ctx context.Context, roundID int64) (*comm.RoundData, error) {
	round, err := b.RoundService.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	scores, err := b.RoundService.GetScores(ctx, roundID)
	if err != nil {
		return nil, err
	}

	course, err := b.CourseService.GetCourse(ctx, round.CourseID)
	if err != nil {
		return nil, err
	}

	holePars, err := b.CourseService.ResolveHolePars(ctx, round.CourseID)
	if err != nil {
		return nil, err
	}

	return &comm.RoundData{
		Round:    round,
		Scores:   scores,
		HolePars: holePars,
		Course:   course,
	}, nil
}

// updateError maps service errors to messages safe to send to a client.
func updateError(err error) string {
	switch {
	case errors.Is(err, service.ErrNotParticipant):
		return "not a participant of this round"
	case errors.Is(err, service.ErrInvalidScore):
		return "invalid score"
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNoRowsAffected):
		return "score row not found"
	}
	return "internal error"
}

func (b *Broker) PublishInitResponse(p comm.PlayerData, socketId string) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Errorf("unable to marshal playerData %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     "init-response",
		Data:     data,
		SocketId: socketId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

func (b *Broker) PublishRoundResponse(rdata comm.RoundData, socketId string) {
	data, err := json.Marshal(rdata)
	if err != nil {
		log.Errorf("[PublishRoundResponse] unable to marshal round data %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     "round-response",
		Data:     data,
		SocketId: socketId,
		RoundId:  rdata.Round.ID,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

func (b *Broker) PublishRoundEvents(updates []comm.ScoreUpdate, roundId int64, socketId string) {
	data, err := json.Marshal(updates)
	if err != nil {
		log.Errorf("[PublishRoundEvents] unable to marshal events %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     "round-events-response",
		Data:     data,
		SocketId: socketId,
		RoundId:  roundId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

// RecordAndBroadcast archives an accepted score change and fans it out
// to the round's room. Both the socket path and the HTTP path go
// through here so clients see the same stream either way.
func (b *Broker) RecordAndBroadcast(ctx context.Context, u comm.ScoreUpdate, socketId string) {
	u.At = time.Now().UTC()
	if err := b.EventLog.Append(ctx, u); err != nil {
		log.Errorf("Error [EventLog.Append] %s", err)
	}

	b.PublishScoreUpdated(u, socketId)
}

// PublishScoreUpdated fans the accepted change out to every socket in
// the round's room, including the sender.
func (b *Broker) PublishScoreUpdated(u comm.ScoreUpdate, socketId string) {
	data, err := json.Marshal(u)
	if err != nil {
		log.Errorf("[PublishScoreUpdated] unable to marshal score update %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     "score-updated-broadcast",
		Data:     data,
		SocketId: socketId,
		RoundId:  u.RoundId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

func (b *Broker) PublishScoresDeleted(roundId int64, p models.Participant, socketId string) {
	data, err := json.Marshal(struct {
		RoundId     int64              `json:"round_id"`
		Participant models.Participant `json:"participant"`
	}{RoundId: roundId, Participant: p})
	if err != nil {
		log.Errorf("[PublishScoresDeleted] unable to marshal payload %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     "scores-deleted-broadcast",
		Data:     data,
		SocketId: socketId,
		RoundId:  roundId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

func (b *Broker) PublishRoundPage(pdata comm.RoundPageData, socketId string) {
	data, err := json.Marshal(pdata)
	if err != nil {
		log.Errorf("[PublishRoundPage] unable to marshal page %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     "list-rounds-response",
		Data:     data,
		SocketId: socketId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

func (b *Broker) PublishRes(r comm.Res, msgType, socketId string) {
	data, err := json.Marshal(r)
	if err != nil {
		log.Errorf("[PublishRes] unable to marshal response %s", socketId)
	}

	msg := &comm.WSMessage{
		Type:     msgType,
		Data:     data,
		SocketId: socketId,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
	}

	b.Publish(comm.TopicScoreService, payload)
}

// consume messages from the socket service
func (b *Broker) SubscribSocketService(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessage)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}
