package model

import (
	"time"
)

type Question struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	QuizID uint   `json:"quiz_id" gorm:"not null;index;uniqueIndex:idx_questions_quiz_text"`
	Text   string `json:"text" gorm:"type:text;not null;uniqueIndex:idx_questions_quiz_text"`
	// CorrectAnswer is the letter of the correct option: A, B, C, D or E.
	CorrectAnswer string    `json:"correct_answer" gorm:"not null"`
	Options       []Option  `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
