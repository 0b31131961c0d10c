package service

import (
	"context"
	"errors"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

var ErrSelfFriendship = errors.New("cannot befriend yourself")

// FriendRequest pairs a pending friendship with the sender's profile
// for display.
type FriendRequest struct {
	Friendship *models.Friendship `json:"friendship"`
	Sender     *models.Profile    `json:"sender"`
}

type FriendService struct {
	friendshipStore FriendshipStore
	profileStore    ProfileStore
}

func NewFriendService(friendshipStore FriendshipStore, profileStore ProfileStore) *FriendService {
	return &FriendService{friendshipStore: friendshipStore, profileStore: profileStore}
}

// SendRequest creates a pending edge after checking the receiver exists.
func (s *FriendService) SendRequest(ctx context.Context, senderID, receiverID string) (*models.Friendship, error) {
	if senderID == receiverID {
		return nil, ErrSelfFriendship
	}
	if _, err := s.profileStore.GetProfileByID(ctx, receiverID); err != nil {
		return nil, err
	}
	return s.friendshipStore.CreateRequest(ctx, senderID, receiverID)
}

func (s *FriendService) AcceptRequest(ctx context.Context, receiverID string, requestID int64) error {
	return s.friendshipStore.AcceptRequest(ctx, requestID, receiverID)
}

// ListFriendIDs returns the accepted friends of userID regardless of
// who sent the original request.
func (s *FriendService) ListFriendIDs(ctx context.Context, userID string) ([]string, error) {
	friendships, err := s.friendshipStore.ListAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(friendships))
	for _, f := range friendships {
		ids = append(ids, f.Other(userID))
	}
	return ids, nil
}

func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]*models.Profile, error) {
	ids, err := s.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profileStore.GetProfilesByIDs(ctx, ids)
}

// ListPendingRequests lists requests awaiting userID's answer, with the
// sender profiles joined in.
func (s *FriendService) ListPendingRequests(ctx context.Context, userID string) ([]*FriendRequest, error) {
	pending, err := s.friendshipStore.ListPendingForReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, nil
	}

	senderIDs := make([]string, 0, len(pending))
	for _, f := range pending {
		senderIDs = append(senderIDs, f.SenderID)
	}
	senders, err := s.profileStore.GetProfilesByIDs(ctx, senderIDs)
	if err != nil {
		return nil, err
	}
	senderByID := make(map[string]*models.Profile, len(senders))
	for _, p := range senders {
		senderByID[p.ID] = p
	}

	requests := make([]*FriendRequest, 0, len(pending))
	for _, f := range pending {
		requests = append(requests, &FriendRequest{Friendship: f, Sender: senderByID[f.SenderID]})
	}
	return requests, nil
}
