package model

import (
	"time"
)

type Student struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	// Number is the school-issued student number, 5 to 10 digits.
	Number          string           `json:"number" gorm:"not null;uniqueIndex"`
	QuizAssignments []QuizAssignment `json:"quiz_assignments,omitempty" gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
