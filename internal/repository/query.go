package repository

import (
	"github.com/groupstudy/groupstudy-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DifficultyFilter matches every document for "All" and otherwise the exact label.
func DifficultyFilter(difficulty model.Difficulty) bson.M {
	if difficulty == model.DifficultyAll {
		return bson.M{}
	}
	return bson.M{"difficulty": difficulty}
}

// PageOptions skips page*size documents and returns at most size.
// Values are not range checked here.
func PageOptions(page, size int64) *options.FindOptions {
	return options.Find().
		SetSkip(page * size).
		SetLimit(size)
}

// OwnerFilter matches submissions by submitter email; empty matches all.
func OwnerFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{"submittedBy": email}
}

// StatusFilter matches submissions in the given grading state.
func StatusFilter(status model.SubmissionStatus) bson.M {
	return bson.M{"pendingStatus": status}
}

// rankedProjection hides the identifier from the public leaderboard.
var rankedProjection = bson.D{
	{Key: "_id", Value: 0},
	{Key: "photoUrl", Value: 1},
	{Key: "title", Value: 1},
	{Key: "submittedUser", Value: 1},
	{Key: "obtainedMark", Value: 1},
	{Key: "feedback", Value: 1},
}

// RankedOptions sorts by obtained mark, descending for "High to Low" and
// ascending for anything else.
func RankedOptions(direction string) *options.FindOptions {
	order := 1
	if direction == model.RankHighToLow {
		order = -1
	}
	return options.Find().
		SetSort(bson.D{{Key: "obtainedMark", Value: order}}).
		SetProjection(rankedProjection)
}

func insertResult(r *mongo.InsertOneResult) model.InsertResult {
	return model.InsertResult{Acknowledged: true, InsertedID: r.InsertedID}
}

func updateResult(r *mongo.UpdateResult) model.UpdateResult {
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

func deleteResult(r *mongo.DeleteResult) model.DeleteResult {
	return model.DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}
