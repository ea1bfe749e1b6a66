package model

import (
	"time"
)

// Option is one multiple-choice answer for a question. Both the letter and the
// text are unique within their question.
type Option struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index;uniqueIndex:idx_options_question_letter;uniqueIndex:idx_options_question_text"`
	Text       string    `json:"text" gorm:"not null;uniqueIndex:idx_options_question_text"`
	Letter     string    `json:"letter" gorm:"not null;uniqueIndex:idx_options_question_letter"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
