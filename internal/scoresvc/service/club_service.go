package service

import (
	"context"

	"github.com/fairwaylabs/golf-services/internal/scoresvc/models"
)

type ClubService struct {
	clubStore ClubStore
}

func NewClubService(clubStore ClubStore) *ClubService {
	return &ClubService{clubStore: clubStore}
}

func (s *ClubService) SearchClubs(ctx context.Context, query string, limit int) ([]*models.Club, error) {
	return s.clubStore.SearchClubsByName(ctx, query, limit)
}
