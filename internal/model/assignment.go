package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Difficulty is the free-form difficulty label of an assignment.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyAll disables the difficulty filter on listings.
	DifficultyAll Difficulty = "All"
)

// Assignment is a document of the assignments collection.
type Assignment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	PhotoURL    string             `json:"photoUrl" bson:"photoUrl"`
	Difficulty  Difficulty         `json:"difficulty" bson:"difficulty"`
	Marks       float64            `json:"marks" bson:"marks"`
	DueDate     string             `json:"dueDate" bson:"dueDate"`
	Description string             `json:"description" bson:"description"`
}

// AssignmentFields are the mutable fields replaced by an update.
type AssignmentFields struct {
	Title       string     `bson:"title"`
	PhotoURL    string     `bson:"photoUrl"`
	Difficulty  Difficulty `bson:"difficulty"`
	Marks       float64    `bson:"marks"`
	DueDate     string     `bson:"dueDate"`
	Description string     `bson:"description"`
}

// CreateAssignmentRequest is the payload for creating an assignment.
type CreateAssignmentRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	PhotoURL    string   `json:"photoUrl" binding:"omitempty,url"`
	Difficulty  string   `json:"difficulty" binding:"required,difficulty"`
	Marks       *float64 `json:"marks" binding:"required,gte=0"`
	DueDate     string   `json:"dueDate" binding:"required"`
	Description string   `json:"description" binding:"max=5000"`
}

// UpdateAssignmentRequest is the payload for replacing an assignment.
// The edit form posts the new due date as updatedDueDate.
type UpdateAssignmentRequest struct {
	Title          string   `json:"title" binding:"required,max=200"`
	PhotoURL       string   `json:"photoUrl" binding:"omitempty,url"`
	Difficulty     string   `json:"difficulty" binding:"required,difficulty"`
	Marks          *float64 `json:"marks" binding:"required,gte=0"`
	UpdatedDueDate string   `json:"updatedDueDate"`
	DueDate        string   `json:"dueDate"`
	Description    string   `json:"description" binding:"max=5000"`
}

// PageQuery is the pagination query string of the assignment listing.
type PageQuery struct {
	Page int64 `form:"page" binding:"min=0"`
	Size int64 `form:"size,default=10" binding:"min=1"`
}
