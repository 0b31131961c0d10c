package ws

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-services/internal/comm"
	"github.com/fairwaylabs/golf-services/internal/socketsvc/broker"
)

type Ws struct {
	connMap sync.Map // socketId -> *websocket.Conn
	roomMap sync.Map // socketId -> roomId (one round per socket)
	Broker  *broker.Broker
}

func NewWs() *Ws {
	return &Ws{}
}

// RoomId keys the roomMap by round.
func RoomId(roundId int64) string {
	return "round:" + strconv.FormatInt(roundId, 10)
}

// handle socket message from web clients
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case "init", "create-round", "update-score", "delete-scores", "list-rounds", "get-round":
		s.forward(socketId, message)
	case "join-round":
		s.handleJoinRound(socketId, message)
	case "leave-round":
		s.roomMap.Delete(socketId)
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

// handleJoinRound puts the socket into the round's room before asking
// the score service for the replay, so no broadcast lands in the gap.
func (s *Ws) handleJoinRound(socketId string, msg *comm.WSMessage) {
	var payload struct {
		RoundId int64 `json:"round_id"`
	}

	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		log.Errorf("Error: invalid join-round payload %s", err)
		return
	}

	if payload.RoundId == 0 {
		log.Error("Invalid join-round payload: missing round id")
		return
	}

	s.StoreRoom(socketId, RoomId(payload.RoundId))
	s.forward(socketId, msg)
}

// forward stamps the socket id and relays the message to the score
// service over NATS.
func (s *Ws) forward(socketId string, msg *comm.WSMessage) {
	msg.SocketId = socketId

	bytes, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Failed to marshal WSMessage for NATS: %v", err)
		return
	}

	if err := s.Broker.Publish(comm.TopicSocketService, bytes); err != nil {
		log.Errorf("Failed to publish to NATS topic %s: %v", comm.TopicSocketService, err)
		return
	}

	log.Debugf("Published %s message for socket %s", msg.Type, socketId)
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

func (s *Ws) StoreRoom(socketId string, roomId string) {
	s.roomMap.Store(socketId, roomId)
}

func (s *Ws) GetRoom(socketId string) (string, bool) {
	room, ok := s.roomMap.Load(socketId)
	if !ok {
		return "", false
	}
	return room.(string), true
}

func (s *Ws) GetRoomSockets(roomId string) ([]string, bool) {
	var sockets []string
	found := false

	s.roomMap.Range(func(key, value interface{}) bool {
		if value.(string) == roomId {
			sockets = append(sockets, key.(string))
			found = true
		}
		return true // continue iterating
	})

	return sockets, found
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
	s.roomMap.Delete(socketId)
}
