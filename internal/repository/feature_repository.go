package repository

import (
	"context"
	"fmt"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

// FeatureRepository reads the promotional feature collection.
type FeatureRepository struct {
	coll Collection
}

// NewFeatureRepository creates a new FeatureRepository.
func NewFeatureRepository(coll Collection) *FeatureRepository {
	return &FeatureRepository{coll: coll}
}

// ListAll returns every feature document unchanged.
func (r *FeatureRepository) ListAll(ctx context.Context) ([]model.Feature, error) {
	out, err := findAll[model.Feature](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return out, nil
}

// Create inserts one feature document.
func (r *FeatureRepository) Create(ctx context.Context, f model.Feature) (model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert feature: %w", err)
	}
	return insertResult(res), nil
}
