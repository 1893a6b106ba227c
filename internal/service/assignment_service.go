package service

import (
	"context"
	"strings"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/repository"
)

type AssignmentService interface {
	Create(ctx context.Context, req model.CreateAssignmentRequest) (model.InsertResult, error)
	Count(ctx context.Context) (int64, error)
	ListByDifficulty(ctx context.Context, difficulty string) ([]model.Assignment, error)
	ListPage(ctx context.Context, difficulty string, q model.PageQuery) ([]model.Assignment, error)
	Get(ctx context.Context, id string) ([]model.Assignment, error)
	Update(ctx context.Context, id string, req model.UpdateAssignmentRequest) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
	ListBanner(ctx context.Context) ([]model.Assignment, error)
}

type assignmentService struct {
	repo repository.AssignmentRepository
}

func NewAssignmentService(repo repository.AssignmentRepository) AssignmentService {
	return &assignmentService{repo: repo}
}

func (s *assignmentService) Create(ctx context.Context, req model.CreateAssignmentRequest) (model.InsertResult, error) {
	a := &model.Assignment{
		Title:       req.Title,
		PhotoURL:    req.PhotoURL,
		Difficulty:  normalizeDifficulty(req.Difficulty),
		Marks:       deref(req.Marks),
		DueDate:     req.DueDate,
		Description: req.Description,
	}
	return s.repo.Create(ctx, a)
}

func (s *assignmentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *assignmentService) ListByDifficulty(ctx context.Context, difficulty string) ([]model.Assignment, error) {
	return s.repo.ListByDifficulty(ctx, model.Difficulty(difficulty))
}

func (s *assignmentService) ListPage(ctx context.Context, difficulty string, q model.PageQuery) ([]model.Assignment, error) {
	return s.repo.ListPage(ctx, model.Difficulty(difficulty), q.Page, q.Size)
}

func (s *assignmentService) Get(ctx context.Context, id string) ([]model.Assignment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces all mutable fields. The edit form sends the due date as
// updatedDueDate; dueDate is accepted as a fallback.
func (s *assignmentService) Update(ctx context.Context, id string, req model.UpdateAssignmentRequest) (model.UpdateResult, error) {
	due := req.UpdatedDueDate
	if due == "" {
		due = req.DueDate
	}

	fields := model.AssignmentFields{
		Title:       req.Title,
		PhotoURL:    req.PhotoURL,
		Difficulty:  normalizeDifficulty(req.Difficulty),
		Marks:       deref(req.Marks),
		DueDate:     due,
		Description: req.Description,
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *assignmentService) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

func (s *assignmentService) ListBanner(ctx context.Context) ([]model.Assignment, error) {
	return s.repo.ListAll(ctx)
}

// normalizeDifficulty stores labels in lower case so exact-match listings
// find them whatever casing the form sent.
func normalizeDifficulty(d string) model.Difficulty {
	return model.Difficulty(strings.ToLower(strings.TrimSpace(d)))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
