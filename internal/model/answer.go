package model

import (
	"time"
)

// Answer records the option a student selected for one question of an
// assignment. The (assignment, question) pair is unique, so a resubmission
// updates the row instead of inserting a second one; a concurrent double
// insert fails on the index rather than producing a duplicate.
type Answer struct {
	ID               uint `gorm:"primarykey" json:"id"`
	QuizAssignmentID uint `json:"quiz_assignment_id" gorm:"not null;index;uniqueIndex:idx_answers_assignment_question"`
	QuestionID       uint `json:"question_id" gorm:"not null;index;uniqueIndex:idx_answers_assignment_question"`
	// SelectedOption is A-E, or empty when no option was chosen.
	SelectedOption string    `json:"selected_option"`
	Correct        bool      `json:"correct" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
