package service

import (
	"context"
	"errors"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/repository"
)

// Submission errors.
var (
	ErrOwnerRequired = errors.New("submission owner is required")
	ErrOwnerMismatch = errors.New("submission owner does not match the signed-in user")
)

type SubmissionService interface {
	Submit(ctx context.Context, req model.SubmitAssignmentRequest, caller *model.Identity) (model.InsertResult, error)
	ListByStatus(ctx context.Context, status string) ([]model.Submission, error)
	ListByOwner(ctx context.Context, email string) ([]model.Submission, error)
	Get(ctx context.Context, id string) ([]model.Submission, error)
	Grade(ctx context.Context, id string, req model.GradeRequest) (model.UpdateResult, error)
	Ranked(ctx context.Context, direction string) ([]model.RankedSubmission, error)
}

type submissionService struct {
	repo repository.SubmissionRepository
}

func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

// Submit stores a new Pending submission. When the request is authenticated
// the owner defaults to the caller and may not name anyone else.
func (s *submissionService) Submit(ctx context.Context, req model.SubmitAssignmentRequest, caller *model.Identity) (model.InsertResult, error) {
	owner := req.SubmittedBy
	if caller != nil {
		switch {
		case owner == "":
			owner = caller.Email
		case owner != caller.Email:
			return model.InsertResult{}, ErrOwnerMismatch
		}
	}
	if owner == "" {
		return model.InsertResult{}, ErrOwnerRequired
	}

	sub := &model.Submission{
		SubmittedBy:   owner,
		Title:         req.Title,
		PhotoURL:      req.PhotoURL,
		SubmittedUser: req.SubmittedUser,
		PendingStatus: model.StatusPending,
	}
	return s.repo.Create(ctx, sub)
}

func (s *submissionService) ListByStatus(ctx context.Context, status string) ([]model.Submission, error) {
	return s.repo.ListByStatus(ctx, model.SubmissionStatus(status))
}

func (s *submissionService) ListByOwner(ctx context.Context, email string) ([]model.Submission, error) {
	return s.repo.ListByOwner(ctx, email)
}

func (s *submissionService) Get(ctx context.Context, id string) ([]model.Submission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *submissionService) Grade(ctx context.Context, id string, req model.GradeRequest) (model.UpdateResult, error) {
	grade := model.Grade{
		ObtainedMark: deref(req.ObtainedMark),
		Feedback:     req.Feedback,
		Status:       model.SubmissionStatus(req.Status),
	}
	return s.repo.Grade(ctx, id, grade)
}

func (s *submissionService) Ranked(ctx context.Context, direction string) ([]model.RankedSubmission, error) {
	return s.repo.ListCompletedRanked(ctx, direction)
}
