package dto

// StudentDTO creates or fully overwrites a student.
type StudentDTO struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	// 5 to 10 digits, unique across students.
	Number string `json:"number" binding:"required,number,min=5,max=10"`
}

// QuizDTO creates or fully overwrites a quiz.
type QuizDTO struct {
	Name string `json:"name" binding:"required"`
}

// QuestionDTO creates or fully overwrites a question.
type QuestionDTO struct {
	Text          string `json:"text" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required,oneof=A B C D E"`
	QuizID        uint   `json:"quizId" binding:"required"`
}

// OptionDTO creates or fully overwrites an option.
type OptionDTO struct {
	Text       string `json:"text" binding:"required"`
	Letter     string `json:"letter" binding:"required,oneof=A B C D E"`
	QuestionID uint   `json:"questionId" binding:"required"`
}

// QuizAssignmentDTO assigns a quiz to a student.
type QuizAssignmentDTO struct {
	StudentID uint `json:"studentId" binding:"required"`
	QuizID    uint `json:"quizId" binding:"required"`
}

// AnswerDTO submits (or resubmits) the selected option for one question of an
// in-progress assignment. An empty SelectedOption means no option was chosen.
type AnswerDTO struct {
	QuizAssignmentID uint   `json:"quizAssignmentId" binding:"required"`
	QuestionID       uint   `json:"questionId" binding:"required"`
	SelectedOption   string `json:"selectedOption" binding:"omitempty,oneof=A B C D E"`
}
