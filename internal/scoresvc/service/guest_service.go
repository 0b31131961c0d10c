package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

var ErrEmptyGuestName = errors.New("guest name cannot be empty")

type GuestService struct {
	guestStore GuestStore
}

func NewGuestService(guestStore GuestStore) *GuestService {
	return &GuestService{guestStore: guestStore}
}

func (s *GuestService) CreateGuest(ctx context.Context, ownerID, username string) (*models.Guest, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyGuestName
	}
	return s.guestStore.CreateGuest(ctx, ownerID, username)
}

func (s *GuestService) ListGuests(ctx context.Context, ownerID string) ([]*models.Guest, error) {
	return s.guestStore.GetGuestsByOwner(ctx, ownerID)
}

func (s *GuestService) DeleteGuest(ctx context.Context, guestID int64, ownerID string) error {
	return s.guestStore.DeleteGuest(ctx, guestID, ownerID)
}
