package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// SubmissionStatus is the grading state of a submission.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "Pending"
	StatusCompleted SubmissionStatus = "Completed"
)

// RankHighToLow orders completed submissions by descending mark.
// Any other rank value orders ascending.
const RankHighToLow = "High to Low"

// Submission is a document of the submittedAssignments collection.
type Submission struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SubmittedBy   string             `json:"submittedBy" bson:"submittedBy"`
	Title         string             `json:"title" bson:"title"`
	PhotoURL      string             `json:"photoUrl" bson:"photoUrl"`
	SubmittedUser string             `json:"submittedUser" bson:"submittedUser"`
	PendingStatus SubmissionStatus   `json:"pendingStatus" bson:"pendingStatus"`
	ObtainedMark  *float64           `json:"obtainedMark,omitempty" bson:"obtainedMark,omitempty"`
	Feedback      *string            `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// RankedSubmission is the projected view served by the leaderboard listing.
type RankedSubmission struct {
	PhotoURL      string   `json:"photoUrl" bson:"photoUrl"`
	Title         string   `json:"title" bson:"title"`
	SubmittedUser string   `json:"submittedUser" bson:"submittedUser"`
	ObtainedMark  *float64 `json:"obtainedMark,omitempty" bson:"obtainedMark,omitempty"`
	Feedback      *string  `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// Grade is the mark, feedback and status applied together by a grader.
type Grade struct {
	ObtainedMark float64          `bson:"obtainedMark"`
	Feedback     string           `bson:"feedback"`
	Status       SubmissionStatus `bson:"pendingStatus"`
}

// SubmitAssignmentRequest is the payload for a student submission.
// New submissions always start Pending.
type SubmitAssignmentRequest struct {
	SubmittedBy   string `json:"submittedBy" binding:"omitempty,email"`
	Title         string `json:"title" binding:"required,max=200"`
	PhotoURL      string `json:"photoUrl" binding:"omitempty,url"`
	SubmittedUser string `json:"submittedUser" binding:"max=120"`
}

// GradeRequest is the payload for grading a submission.
type GradeRequest struct {
	ObtainedMark *float64 `json:"obtainedMark" binding:"required,gte=0"`
	Feedback     string   `json:"feedback" binding:"max=5000"`
	Status       string   `json:"status" binding:"required,gradestatus"`
}
