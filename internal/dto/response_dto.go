package dto

import "quiz-service/internal/model"

// StudentInfoDTO is the list/summary projection of a student.
type StudentInfoDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Number    string `json:"number"`
}

// QuizInfoDTO is the list/summary projection of a quiz.
type QuizInfoDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// QuestionWithoutAnswerDTO exposes a question to a student taking a quiz: the
// options are included, the correct answer letter is not.
type QuestionWithoutAnswerDTO struct {
	ID      uint           `json:"id"`
	Text    string         `json:"text"`
	Options []model.Option `json:"options"`
	QuizID  uint           `json:"quiz_id"`
}

// CompletedQuizDTO summarizes one completed assignment for a student.
type CompletedQuizDTO struct {
	QuizName           string  `json:"quiz_name"`
	CorrectAnswerCount int     `json:"correct_answer_count"`
	Score              float64 `json:"score"`
}

// MessageResponse is the body for delete and workflow acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for domain errors: a stable message plus the
// taxonomy code.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ValidationErrorResponse maps each invalid field to its message.
type ValidationErrorResponse struct {
	Code   int               `json:"code"`
	Errors map[string]string `json:"errors"`
}

// IntegrityErrorResponse reports a uniqueness/integrity conflict (HTTP 409).
type IntegrityErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// UnexpectedErrorResponse is the catch-all 500 body.
type UnexpectedErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
