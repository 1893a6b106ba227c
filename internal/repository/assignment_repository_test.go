package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedAssignments(t *testing.T, n int) (*memCollection, []primitive.ObjectID) {
	t.Helper()
	difficulties := []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}

	var docs []interface{}
	var ids []primitive.ObjectID
	for i := 0; i < n; i++ {
		a := model.Assignment{
			ID:          primitive.NewObjectID(),
			Title:       fmt.Sprintf("Assignment %02d", i),
			PhotoURL:    "https://img.example.com/a.png",
			Difficulty:  difficulties[i%len(difficulties)],
			Marks:       float64(10 * (i + 1)),
			DueDate:     "2026-11-01",
			Description: "desc",
		}
		docs = append(docs, a)
		ids = append(ids, a.ID)
	}
	return newMemCollection(t, docs...), ids
}

func TestAssignmentRepository_ListPage(t *testing.T) {
	coll, _ := seedAssignments(t, 25)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()

	first, err := repo.ListPage(ctx, model.DifficultyAll, 0, 10)
	require.NoError(t, err)
	assert.Len(t, first, 10)
	assert.Equal(t, "Assignment 00", first[0].Title)

	last, err := repo.ListPage(ctx, model.DifficultyAll, 2, 10)
	require.NoError(t, err)
	assert.Len(t, last, 5)
	assert.Equal(t, "Assignment 20", last[0].Title)

	beyond, err := repo.ListPage(ctx, model.DifficultyAll, 3, 10)
	require.NoError(t, err)
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}

func TestAssignmentRepository_ListPageFiltersDifficulty(t *testing.T) {
	coll, _ := seedAssignments(t, 25)
	repo := NewAssignmentRepository(coll)

	page, err := repo.ListPage(context.Background(), model.DifficultyHard, 0, 5)
	require.NoError(t, err)
	require.Len(t, page, 5)
	for _, a := range page {
		assert.Equal(t, model.DifficultyHard, a.Difficulty)
	}
}

func TestAssignmentRepository_ListPageNegativeSkipSurfacesStoreError(t *testing.T) {
	coll, _ := seedAssignments(t, 3)
	repo := NewAssignmentRepository(coll)

	_, err := repo.ListPage(context.Background(), model.DifficultyAll, -1, 10)
	assert.Error(t, err)
}

func TestAssignmentRepository_ListByDifficulty(t *testing.T) {
	coll, _ := seedAssignments(t, 25)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()

	hard, err := repo.ListByDifficulty(ctx, model.DifficultyHard)
	require.NoError(t, err)
	assert.Len(t, hard, 8)
	for _, a := range hard {
		assert.Equal(t, model.DifficultyHard, a.Difficulty)
	}

	all, err := repo.ListByDifficulty(ctx, model.DifficultyAll)
	require.NoError(t, err)
	assert.Len(t, all, 25)

	none, err := repo.ListByDifficulty(ctx, "Hard")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAssignmentRepository_CreateAndCount(t *testing.T) {
	coll := newMemCollection(t)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()

	a := &model.Assignment{Title: "Essay", Difficulty: model.DifficultyMedium, Marks: 50}
	res, err := repo.Create(ctx, a)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.False(t, a.ID.IsZero())
	assert.Equal(t, a.ID, res.InsertedID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAssignmentRepository_DeleteThenGet(t *testing.T) {
	coll, ids := seedAssignments(t, 3)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()
	id := ids[1].Hex()

	found, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ids[1], found[0].ID)

	res, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	found, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAssignmentRepository_UpdateReplacesFields(t *testing.T) {
	coll, ids := seedAssignments(t, 2)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()

	fields := model.AssignmentFields{
		Title:       "Renamed",
		PhotoURL:    "https://img.example.com/b.png",
		Difficulty:  model.DifficultyHard,
		Marks:       75,
		DueDate:     "2026-12-24",
		Description: "new",
	}
	res, err := repo.Update(ctx, ids[0].Hex(), fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.Nil(t, res.UpsertedID)

	got, err := repo.GetByID(ctx, ids[0].Hex())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Renamed", got[0].Title)
	assert.Equal(t, model.DifficultyHard, got[0].Difficulty)
	assert.Equal(t, 75.0, got[0].Marks)
	assert.Equal(t, "2026-12-24", got[0].DueDate)
}

func TestAssignmentRepository_UpdateUpsertsMissingID(t *testing.T) {
	coll := newMemCollection(t)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()
	id := primitive.NewObjectID()

	res, err := repo.Update(ctx, id.Hex(), model.AssignmentFields{Title: "Fresh", Difficulty: model.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.Equal(t, id, res.UpsertedID)

	got, err := repo.GetByID(ctx, id.Hex())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fresh", got[0].Title)
}

func TestAssignmentRepository_InvalidIDNeverReachesStore(t *testing.T) {
	coll := newMemCollection(t)
	repo := NewAssignmentRepository(coll)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = repo.Update(ctx, "123", model.AssignmentFields{})
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = repo.Delete(ctx, "zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.Zero(t, coll.calls)
}

func TestAssignmentRepository_ListAll(t *testing.T) {
	coll, _ := seedAssignments(t, 4)
	repo := NewAssignmentRepository(coll)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
