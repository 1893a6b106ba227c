package repository

import (
	"context"
	"fmt"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a *model.Assignment) (model.InsertResult, error)
	Count(ctx context.Context) (int64, error)
	ListByDifficulty(ctx context.Context, difficulty model.Difficulty) ([]model.Assignment, error)
	ListPage(ctx context.Context, difficulty model.Difficulty, page, size int64) ([]model.Assignment, error)
	GetByID(ctx context.Context, id string) ([]model.Assignment, error)
	Update(ctx context.Context, id string, fields model.AssignmentFields) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
	ListAll(ctx context.Context) ([]model.Assignment, error)
}

type assignmentRepository struct {
	coll Collection
}

func NewAssignmentRepository(coll Collection) AssignmentRepository {
	return &assignmentRepository{coll: coll}
}

func (r *assignmentRepository) Create(ctx context.Context, a *model.Assignment) (model.InsertResult, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert assignment: %w", err)
	}
	return insertResult(res), nil
}

// Count returns the collection's metadata count. It can lag behind
// concurrent writes and is only meant for pagination hints.
func (r *assignmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return n, nil
}

func (r *assignmentRepository) ListByDifficulty(ctx context.Context, difficulty model.Difficulty) ([]model.Assignment, error) {
	out, err := findAll[model.Assignment](ctx, r.coll, DifficultyFilter(difficulty))
	if err != nil {
		return nil, fmt.Errorf("list assignments by difficulty: %w", err)
	}
	return out, nil
}

func (r *assignmentRepository) ListPage(ctx context.Context, difficulty model.Difficulty, page, size int64) ([]model.Assignment, error) {
	out, err := findAll[model.Assignment](ctx, r.coll, DifficultyFilter(difficulty), PageOptions(page, size))
	if err != nil {
		return nil, fmt.Errorf("list assignment page: %w", err)
	}
	return out, nil
}

// GetByID returns the matching assignment as a singleton, or an empty slice.
func (r *assignmentRepository) GetByID(ctx context.Context, id string) ([]model.Assignment, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	out, err := findAll[model.Assignment](ctx, r.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return out, nil
}

// Update replaces every mutable field. A missing document is created under
// the requested id.
func (r *assignmentRepository) Update(ctx context.Context, id string, fields model.AssignmentFields) (model.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": fields}, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update assignment: %w", err)
	}
	return updateResult(res), nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return model.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete assignment: %w", err)
	}
	return deleteResult(res), nil
}

func (r *assignmentRepository) ListAll(ctx context.Context) ([]model.Assignment, error) {
	out, err := findAll[model.Assignment](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return out, nil
}
