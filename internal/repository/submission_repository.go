package repository

import (
	"context"
	"fmt"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s *model.Submission) (model.InsertResult, error)
	ListByStatus(ctx context.Context, status model.SubmissionStatus) ([]model.Submission, error)
	ListByOwner(ctx context.Context, email string) ([]model.Submission, error)
	GetByID(ctx context.Context, id string) ([]model.Submission, error)
	Grade(ctx context.Context, id string, grade model.Grade) (model.UpdateResult, error)
	ListCompletedRanked(ctx context.Context, direction string) ([]model.RankedSubmission, error)
}

type submissionRepository struct {
	coll Collection
}

func NewSubmissionRepository(coll Collection) SubmissionRepository {
	return &submissionRepository{coll: coll}
}

func (r *submissionRepository) Create(ctx context.Context, s *model.Submission) (model.InsertResult, error) {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert submission: %w", err)
	}
	return insertResult(res), nil
}

func (r *submissionRepository) ListByStatus(ctx context.Context, status model.SubmissionStatus) ([]model.Submission, error) {
	out, err := findAll[model.Submission](ctx, r.coll, StatusFilter(status))
	if err != nil {
		return nil, fmt.Errorf("list submissions by status: %w", err)
	}
	return out, nil
}

func (r *submissionRepository) ListByOwner(ctx context.Context, email string) ([]model.Submission, error) {
	out, err := findAll[model.Submission](ctx, r.coll, OwnerFilter(email))
	if err != nil {
		return nil, fmt.Errorf("list submissions by owner: %w", err)
	}
	return out, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) ([]model.Submission, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	out, err := findAll[model.Submission](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return out, nil
}

// Grade sets mark, feedback and status in a single update. An unknown id
// matches nothing and creates nothing.
func (r *submissionRepository) Grade(ctx context.Context, id string, grade model.Grade) (model.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": grade})
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("grade submission: %w", err)
	}
	return updateResult(res), nil
}

func (r *submissionRepository) ListCompletedRanked(ctx context.Context, direction string) ([]model.RankedSubmission, error) {
	out, err := findAll[model.RankedSubmission](ctx, r.coll, StatusFilter(model.StatusCompleted), RankedOptions(direction))
	if err != nil {
		return nil, fmt.Errorf("list ranked submissions: %w", err)
	}
	return out, nil
}
