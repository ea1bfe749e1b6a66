// Package apperror carries the domain error taxonomy. Every domain failure is
// an *Error with a stable integer code and the HTTP status it maps to; the
// controller layer dispatches on it without knowing which operation failed.
package apperror

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindStudentNotFound Kind = iota
	KindQuizNotFound
	KindQuestionNotFound
	KindOptionNotFound
	KindQuizAssignmentNotFound
	KindQuizCompletedAlready
	KindQuizNotInProgress
)

type Error struct {
	Kind   Kind
	Code   int
	Status int
	// Message is the stable client-facing text for this kind.
	Message string
	// Detail identifies the offending entity; logged, never sent to clients.
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Message, e.Detail, e.Code)
}

func StudentNotFound(id uint) *Error {
	return &Error{
		Kind:    KindStudentNotFound,
		Code:    1001,
		Status:  http.StatusNotFound,
		Message: "Student not found",
		Detail:  fmt.Sprintf("student id %d", id),
	}
}

func QuizNotFound(id uint) *Error {
	return &Error{
		Kind:    KindQuizNotFound,
		Code:    1002,
		Status:  http.StatusNotFound,
		Message: "Quiz not found",
		Detail:  fmt.Sprintf("quiz id %d", id),
	}
}

func QuestionNotFound(id uint) *Error {
	return &Error{
		Kind:    KindQuestionNotFound,
		Code:    1003,
		Status:  http.StatusNotFound,
		Message: "Question not found",
		Detail:  fmt.Sprintf("question id %d", id),
	}
}

func OptionNotFound(id uint) *Error {
	return &Error{
		Kind:    KindOptionNotFound,
		Code:    1004,
		Status:  http.StatusNotFound,
		Message: "Option not found",
		Detail:  fmt.Sprintf("option id %d", id),
	}
}

func QuizAssignmentNotFound(id uint) *Error {
	return &Error{
		Kind:    KindQuizAssignmentNotFound,
		Code:    1005,
		Status:  http.StatusNotFound,
		Message: "Quiz assignment not found",
		Detail:  fmt.Sprintf("quiz assignment id %d", id),
	}
}

func QuizCompletedAlready(assignmentID uint) *Error {
	return &Error{
		Kind:    KindQuizCompletedAlready,
		Code:    1006,
		Status:  http.StatusBadRequest,
		Message: "The quiz has already been completed",
		Detail:  fmt.Sprintf("quiz assignment id %d", assignmentID),
	}
}

func QuizNotInProgress(assignmentID uint) *Error {
	return &Error{
		Kind:    KindQuizNotInProgress,
		Code:    1007,
		Status:  http.StatusBadRequest,
		Message: "The quiz is not currently in progress",
		Detail:  fmt.Sprintf("quiz assignment id %d", assignmentID),
	}
}

// Validation and data-integrity errors are detected at the HTTP boundary and
// rendered with their own body shapes; the codes live here so the whole
// taxonomy is in one place.
const (
	ValidationCode    = 1008
	DataIntegrityCode = 1009
)
