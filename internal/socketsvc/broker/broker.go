package broker

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-services/internal/comm"
)

type Broker struct {
	Conn           *nats.Conn
	GetConnection  func(string) (*websocket.Conn, bool)
	GetRoomSockets func(string) ([]string, bool)
	RoomId         func(int64) string
}

func NewBroker(conn *nats.Conn, fncGetConnection func(string) (*websocket.Conn, bool),
	fncGetRoomSockets func(string) ([]string, bool), fncRoomId func(int64) string) *Broker {
	return &Broker{
		Conn:           conn,
		GetConnection:  fncGetConnection,
		GetRoomSockets: fncGetRoomSockets,
		RoomId:         fncRoomId,
	}
}

// consume messages from the score service
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// publish message to the score service
func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}

// handleMessages receives messages from the score service
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	message := &comm.WSMessage{}
	err := json.Unmarshal(msgNats.Data, &message)
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	switch message.Type {
	case "init-response", "round-response", "round-events-response",
		"list-rounds-response", "create-round-response",
		"update-score-response", "delete-scores-response":
		b.sendMessage(message)
	case "score-updated-broadcast", "scores-deleted-broadcast":
		b.broadcastToRoom(message)
	default:
		log.Errorf("Unknown message type %q", message.Type)
		return
	}
}

// send socket message to the web client
func (b *Broker) sendMessage(m *comm.WSMessage) {
	socketId := m.SocketId
	if conn, ok := b.GetConnection(socketId); ok {
		if err := conn.WriteJSON(m); err != nil {
			log.Errorf("Error writing to socket %s: %s", socketId, err)
		}
	}
}

// broadcastToRoom delivers a round-scoped message to every socket in
// the round's room, the sender included so its view confirms the write.
func (b *Broker) broadcastToRoom(m *comm.WSMessage) {
	if m.RoundId == 0 {
		log.Errorf("broadcast message %q without round id", m.Type)
		return
	}

	sockets, ok := b.GetRoomSockets(b.RoomId(m.RoundId))
	if !ok {
		return
	}

	for _, socketId := range sockets {
		if conn, ok := b.GetConnection(socketId); ok {
			if err := conn.WriteJSON(m); err != nil {
				log.Errorf("Error writing to socket %s: %s", socketId, err)
			}
		}
	}
}
