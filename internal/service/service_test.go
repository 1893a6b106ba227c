package service

import (
	"context"
	"testing"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssignmentRepo struct {
	created *model.Assignment
	id      string
	fields  model.AssignmentFields
	page    [2]int64
}

func (r *stubAssignmentRepo) Create(_ context.Context, a *model.Assignment) (model.InsertResult, error) {
	r.created = a
	return model.InsertResult{Acknowledged: true, InsertedID: "new"}, nil
}
func (r *stubAssignmentRepo) Count(context.Context) (int64, error) { return 0, nil }
func (r *stubAssignmentRepo) ListByDifficulty(context.Context, model.Difficulty) ([]model.Assignment, error) {
	return nil, nil
}
func (r *stubAssignmentRepo) ListPage(_ context.Context, _ model.Difficulty, page, size int64) ([]model.Assignment, error) {
	r.page = [2]int64{page, size}
	return nil, nil
}
func (r *stubAssignmentRepo) GetByID(context.Context, string) ([]model.Assignment, error) {
	return nil, nil
}
func (r *stubAssignmentRepo) Update(_ context.Context, id string, f model.AssignmentFields) (model.UpdateResult, error) {
	r.id, r.fields = id, f
	return model.UpdateResult{Acknowledged: true}, nil
}
func (r *stubAssignmentRepo) Delete(context.Context, string) (model.DeleteResult, error) {
	return model.DeleteResult{}, nil
}
func (r *stubAssignmentRepo) ListAll(context.Context) ([]model.Assignment, error) { return nil, nil }

type stubSubmissionRepo struct {
	created *model.Submission
	grade   model.Grade
}

func (r *stubSubmissionRepo) Create(_ context.Context, s *model.Submission) (model.InsertResult, error) {
	r.created = s
	return model.InsertResult{Acknowledged: true}, nil
}
func (r *stubSubmissionRepo) ListByStatus(context.Context, model.SubmissionStatus) ([]model.Submission, error) {
	return nil, nil
}
func (r *stubSubmissionRepo) ListByOwner(context.Context, string) ([]model.Submission, error) {
	return nil, nil
}
func (r *stubSubmissionRepo) GetByID(context.Context, string) ([]model.Submission, error) {
	return nil, nil
}
func (r *stubSubmissionRepo) Grade(_ context.Context, _ string, g model.Grade) (model.UpdateResult, error) {
	r.grade = g
	return model.UpdateResult{Acknowledged: true}, nil
}
func (r *stubSubmissionRepo) ListCompletedRanked(context.Context, string) ([]model.RankedSubmission, error) {
	return nil, nil
}

func mark(v float64) *float64 { return &v }

func TestAssignmentService_UpdatePrefersUpdatedDueDate(t *testing.T) {
	repo := &stubAssignmentRepo{}
	svc := NewAssignmentService(repo)

	_, err := svc.Update(context.Background(), "abc", model.UpdateAssignmentRequest{
		Title:          "T",
		Difficulty:     "hard",
		Marks:          mark(40),
		UpdatedDueDate: "2026-12-01",
		DueDate:        "2026-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", repo.id)
	assert.Equal(t, "2026-12-01", repo.fields.DueDate)
	assert.Equal(t, 40.0, repo.fields.Marks)

	_, err = svc.Update(context.Background(), "abc", model.UpdateAssignmentRequest{Title: "T", Difficulty: "hard", Marks: mark(1), DueDate: "2026-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", repo.fields.DueDate)
}

func TestAssignmentService_CreateAndPage(t *testing.T) {
	repo := &stubAssignmentRepo{}
	svc := NewAssignmentService(repo)

	_, err := svc.Create(context.Background(), model.CreateAssignmentRequest{Title: "T", Difficulty: "easy", Marks: mark(10), DueDate: "d"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, model.DifficultyEasy, repo.created.Difficulty)
	assert.Equal(t, 10.0, repo.created.Marks)

	_, err = svc.ListPage(context.Background(), "All", model.PageQuery{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, [2]int64{2, 10}, repo.page)
}

func TestAssignmentService_NormalizesDifficulty(t *testing.T) {
	repo := &stubAssignmentRepo{}
	svc := NewAssignmentService(repo)

	_, err := svc.Create(context.Background(), model.CreateAssignmentRequest{Title: "T", Difficulty: "Hard", Marks: mark(5), DueDate: "d"})
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyHard, repo.created.Difficulty)

	_, err = svc.Update(context.Background(), "abc", model.UpdateAssignmentRequest{Title: "T", Difficulty: "MEDIUM", Marks: mark(5)})
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyMedium, repo.fields.Difficulty)
}

func TestSubmissionService_Submit(t *testing.T) {
	caller := &model.Identity{Email: "a@x.com"}

	tests := []struct {
		name    string
		req     model.SubmitAssignmentRequest
		caller  *model.Identity
		owner   string
		wantErr error
	}{
		{name: "defaults to caller", req: model.SubmitAssignmentRequest{Title: "t"}, caller: caller, owner: "a@x.com"},
		{name: "explicit matching owner", req: model.SubmitAssignmentRequest{Title: "t", SubmittedBy: "a@x.com"}, caller: caller, owner: "a@x.com"},
		{name: "owner differs in case", req: model.SubmitAssignmentRequest{Title: "t", SubmittedBy: "A@X.com"}, caller: caller, wantErr: ErrOwnerMismatch},
		{name: "foreign owner", req: model.SubmitAssignmentRequest{Title: "t", SubmittedBy: "b@x.com"}, caller: caller, wantErr: ErrOwnerMismatch},
		{name: "anonymous with owner", req: model.SubmitAssignmentRequest{Title: "t", SubmittedBy: "b@x.com"}, owner: "b@x.com"},
		{name: "anonymous without owner", req: model.SubmitAssignmentRequest{Title: "t"}, wantErr: ErrOwnerRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubSubmissionRepo{}
			_, err := NewSubmissionService(repo).Submit(context.Background(), tt.req, tt.caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, repo.created.SubmittedBy)
			assert.Equal(t, model.StatusPending, repo.created.PendingStatus)
		})
	}
}

func TestSubmissionService_GradeMapsAllThreeFields(t *testing.T) {
	repo := &stubSubmissionRepo{}
	_, err := NewSubmissionService(repo).Grade(context.Background(), "id", model.GradeRequest{
		ObtainedMark: mark(90),
		Feedback:     "Good",
		Status:       "Completed",
	})
	require.NoError(t, err)
	assert.Equal(t, model.Grade{ObtainedMark: 90, Feedback: "Good", Status: model.StatusCompleted}, repo.grade)
}
