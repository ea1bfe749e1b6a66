package model

import (
	"time"
)

type Quiz struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	Name            string           `json:"name" gorm:"not null;uniqueIndex"`
	Questions       []Question       `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	QuizAssignments []QuizAssignment `json:"quiz_assignments,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
