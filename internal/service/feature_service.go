package service

import (
	"context"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/repository"
)

// FeatureService serves the promotional feature listing.
type FeatureService struct {
	repo *repository.FeatureRepository
}

// NewFeatureService creates a new FeatureService.
func NewFeatureService(repo *repository.FeatureRepository) *FeatureService {
	return &FeatureService{repo: repo}
}

// ListAll returns every feature document.
func (s *FeatureService) ListAll(ctx context.Context) ([]model.Feature, error) {
	return s.repo.ListAll(ctx)
}
