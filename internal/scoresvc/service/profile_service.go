package service

import (
	"context"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

type ProfileService struct {
	profileStore ProfileStore
}

func NewProfileService(profileStore ProfileStore) *ProfileService {
	return &ProfileService{profileStore: profileStore}
}

func (s *ProfileService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	return s.profileStore.GetProfileByID(ctx, profileID)
}

func (s *ProfileService) SearchProfiles(ctx context.Context, query string, limit int) ([]*models.Profile, error) {
	return s.profileStore.SearchProfilesByUsername(ctx, query, limit)
}
