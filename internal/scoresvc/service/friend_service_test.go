package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

func newFriendFixture(t *testing.T) (*memStore, *FriendService) {
	t.Helper()
	m := newMemStore()
	m.seedProfile("aaaa", "alice")
	m.seedProfile("bbbb", "bob")
	return m, NewFriendService(m, m)
}

func TestFriendRequestLifecycle(t *testing.T) {
	_, svc := newFriendFixture(t)
	ctx := context.Background()

	req, err := svc.SendRequest(ctx, "aaaa", "bbbb")
	require.NoError(t, err)
	assert.Equal(t, "pending", req.Status)

	// visible to the receiver with sender joined in
	pending, err := svc.ListPendingRequests(ctx, "bbbb")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "alice", pending[0].Sender.Username)

	// only the receiver may accept
	err = svc.AcceptRequest(ctx, "aaaa", req.ID)
	assert.ErrorIs(t, err, store.ErrNoRowsAffected)

	require.NoError(t, svc.AcceptRequest(ctx, "bbbb", req.ID))

	// friendship is undirected in effect
	friendsOfA, err := svc.ListFriendIDs(ctx, "aaaa")
	require.NoError(t, err)
	assert.Equal(t, []string{"bbbb"}, friendsOfA)

	friendsOfB, err := svc.ListFriendIDs(ctx, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, []string{"aaaa"}, friendsOfB)
}

func TestSendRequestRejections(t *testing.T) {
	_, svc := newFriendFixture(t)
	ctx := context.Background()

	_, err := svc.SendRequest(ctx, "aaaa", "aaaa")
	assert.ErrorIs(t, err, ErrSelfFriendship)

	_, err = svc.SendRequest(ctx, "aaaa", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.SendRequest(ctx, "aaaa", "bbbb")
	require.NoError(t, err)

	// a second edge between the same pair is rejected either way around
	_, err = svc.SendRequest(ctx, "bbbb", "aaaa")
	assert.ErrorIs(t, err, store.ErrFriendshipExists)
}
