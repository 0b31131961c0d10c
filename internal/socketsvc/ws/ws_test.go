package ws

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomBookkeeping(t *testing.T) {
	s := NewWs()

	s.StoreRoom("sock-a", RoomId(7))
	s.StoreRoom("sock-b", RoomId(7))
	s.StoreRoom("sock-c", RoomId(9))

	sockets, ok := s.GetRoomSockets(RoomId(7))
	assert.True(t, ok)
	sort.Strings(sockets)
	assert.Equal(t, []string{"sock-a", "sock-b"}, sockets)

	room, ok := s.GetRoom("sock-c")
	assert.True(t, ok)
	assert.Equal(t, "round:9", room)

	_, ok = s.GetRoomSockets(RoomId(11))
	assert.False(t, ok)
}

func TestHandleDisconnectLeavesRoom(t *testing.T) {
	s := NewWs()

	s.StoreRoom("sock-a", RoomId(7))
	s.StoreRoom("sock-b", RoomId(7))

	s.HandleDisconnect("sock-a")

	sockets, ok := s.GetRoomSockets(RoomId(7))
	assert.True(t, ok)
	assert.Equal(t, []string{"sock-b"}, sockets)

	_, ok = s.GetRoom("sock-a")
	assert.False(t, ok)
}
