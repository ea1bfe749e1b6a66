package model

import (
	"time"
)

// QuizAssignmentStatus is the lifecycle state of an assignment. Transitions
// only move forward: ASSIGNED -> IN_PROGRESS -> COMPLETED.
type QuizAssignmentStatus string

const (
	StatusAssigned   QuizAssignmentStatus = "ASSIGNED"
	StatusInProgress QuizAssignmentStatus = "IN_PROGRESS"
	StatusCompleted  QuizAssignmentStatus = "COMPLETED"
)

// QuizAssignment pairs one student with one quiz and tracks progress and score.
// The (student, quiz) pair is unique.
type QuizAssignment struct {
	ID                 uint                 `gorm:"primarykey" json:"id"`
	StudentID          uint                 `json:"student_id" gorm:"not null;index;uniqueIndex:idx_assignments_student_quiz"`
	QuizID             uint                 `json:"quiz_id" gorm:"not null;index;uniqueIndex:idx_assignments_student_quiz"`
	Status             QuizAssignmentStatus `json:"status" gorm:"not null;default:'ASSIGNED'"`
	CorrectAnswerCount int                  `json:"correct_answer_count" gorm:"not null;default:0"`
	Score              float64              `json:"score" gorm:"not null;default:0"`
	Answers            []Answer             `json:"answers,omitempty" gorm:"foreignKey:QuizAssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}
