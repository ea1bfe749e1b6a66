package controller

import (
	"quiz-service/internal/dto"
	"quiz-service/internal/model"
)

// Service stubs with overridable function fields. A nil field means the route
// under test never reaches that method; returning zero values keeps the
// handlers on their happy path.

type stubStudentService struct {
	findAll              func() ([]dto.StudentInfoDTO, error)
	findByID             func(id uint) (*model.Student, error)
	findAssignments      func(studentID uint) ([]model.QuizAssignment, error)
	findQuizzes          func(studentID uint) ([]dto.QuizInfoDTO, error)
	findCompletedQuizzes func(studentID uint) ([]dto.CompletedQuizDTO, error)
	create               func(req dto.StudentDTO) (*model.Student, error)
	update               func(id uint, req dto.StudentDTO) (*model.Student, error)
	delete               func(id uint) error
}

func (s *stubStudentService) FindAll() ([]dto.StudentInfoDTO, error) {
	if s.findAll == nil {
		return nil, nil
	}
	return s.findAll()
}

func (s *stubStudentService) FindByID(id uint) (*model.Student, error) {
	if s.findByID == nil {
		return &model.Student{}, nil
	}
	return s.findByID(id)
}

func (s *stubStudentService) FindQuizAssignmentsByStudentID(studentID uint) ([]model.QuizAssignment, error) {
	if s.findAssignments == nil {
		return nil, nil
	}
	return s.findAssignments(studentID)
}

func (s *stubStudentService) FindQuizzesByStudentID(studentID uint) ([]dto.QuizInfoDTO, error) {
	if s.findQuizzes == nil {
		return nil, nil
	}
	return s.findQuizzes(studentID)
}

func (s *stubStudentService) FindCompletedQuizzesByStudentID(studentID uint) ([]dto.CompletedQuizDTO, error) {
	if s.findCompletedQuizzes == nil {
		return nil, nil
	}
	return s.findCompletedQuizzes(studentID)
}

func (s *stubStudentService) Create(req dto.StudentDTO) (*model.Student, error) {
	if s.create == nil {
		return &model.Student{}, nil
	}
	return s.create(req)
}

func (s *stubStudentService) Update(id uint, req dto.StudentDTO) (*model.Student, error) {
	if s.update == nil {
		return &model.Student{}, nil
	}
	return s.update(id, req)
}

func (s *stubStudentService) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubQuizService struct {
	findAll         func() ([]dto.QuizInfoDTO, error)
	findByID        func(id uint) (*model.Quiz, error)
	findAssignments func(quizID uint) ([]model.QuizAssignment, error)
	findStudents    func(quizID uint) ([]dto.StudentInfoDTO, error)
	findQuestions   func(quizID uint) ([]model.Question, error)
	create          func(req dto.QuizDTO) (*model.Quiz, error)
	update          func(id uint, req dto.QuizDTO) (*model.Quiz, error)
	delete          func(id uint) error
}

func (s *stubQuizService) FindAll() ([]dto.QuizInfoDTO, error) {
	if s.findAll == nil {
		return nil, nil
	}
	return s.findAll()
}

func (s *stubQuizService) FindByID(id uint) (*model.Quiz, error) {
	if s.findByID == nil {
		return &model.Quiz{}, nil
	}
	return s.findByID(id)
}

func (s *stubQuizService) FindQuizAssignmentsByQuizID(quizID uint) ([]model.QuizAssignment, error) {
	if s.findAssignments == nil {
		return nil, nil
	}
	return s.findAssignments(quizID)
}

func (s *stubQuizService) FindStudentsByQuizID(quizID uint) ([]dto.StudentInfoDTO, error) {
	if s.findStudents == nil {
		return nil, nil
	}
	return s.findStudents(quizID)
}

func (s *stubQuizService) FindQuestionsByQuizID(quizID uint) ([]model.Question, error) {
	if s.findQuestions == nil {
		return nil, nil
	}
	return s.findQuestions(quizID)
}

func (s *stubQuizService) Create(req dto.QuizDTO) (*model.Quiz, error) {
	if s.create == nil {
		return &model.Quiz{}, nil
	}
	return s.create(req)
}

func (s *stubQuizService) Update(id uint, req dto.QuizDTO) (*model.Quiz, error) {
	if s.update == nil {
		return &model.Quiz{}, nil
	}
	return s.update(id, req)
}

func (s *stubQuizService) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubQuestionService struct {
	findByID          func(id uint) (*model.Question, error)
	findWithoutAnswer func(id uint) (*dto.QuestionWithoutAnswerDTO, error)
	findOptions       func(questionID uint) ([]model.Option, error)
	create            func(req dto.QuestionDTO) (*model.Question, error)
	update            func(id uint, req dto.QuestionDTO) (*model.Question, error)
	delete            func(id uint) error
}

func (s *stubQuestionService) FindByID(id uint) (*model.Question, error) {
	if s.findByID == nil {
		return &model.Question{}, nil
	}
	return s.findByID(id)
}

func (s *stubQuestionService) FindWithoutAnswerByID(id uint) (*dto.QuestionWithoutAnswerDTO, error) {
	if s.findWithoutAnswer == nil {
		return &dto.QuestionWithoutAnswerDTO{}, nil
	}
	return s.findWithoutAnswer(id)
}

func (s *stubQuestionService) FindOptionsByQuestionID(questionID uint) ([]model.Option, error) {
	if s.findOptions == nil {
		return nil, nil
	}
	return s.findOptions(questionID)
}

func (s *stubQuestionService) Create(req dto.QuestionDTO) (*model.Question, error) {
	if s.create == nil {
		return &model.Question{}, nil
	}
	return s.create(req)
}

func (s *stubQuestionService) Update(id uint, req dto.QuestionDTO) (*model.Question, error) {
	if s.update == nil {
		return &model.Question{}, nil
	}
	return s.update(id, req)
}

func (s *stubQuestionService) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubOptionService struct {
	findByID func(id uint) (*model.Option, error)
	create   func(req dto.OptionDTO) (*model.Option, error)
	update   func(id uint, req dto.OptionDTO) (*model.Option, error)
	delete   func(id uint) error
}

func (s *stubOptionService) FindByID(id uint) (*model.Option, error) {
	if s.findByID == nil {
		return &model.Option{}, nil
	}
	return s.findByID(id)
}

func (s *stubOptionService) Create(req dto.OptionDTO) (*model.Option, error) {
	if s.create == nil {
		return &model.Option{}, nil
	}
	return s.create(req)
}

func (s *stubOptionService) Update(id uint, req dto.OptionDTO) (*model.Option, error) {
	if s.update == nil {
		return &model.Option{}, nil
	}
	return s.update(id, req)
}

func (s *stubOptionService) Delete(id uint) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubAssignmentService struct {
	findAll     func() ([]model.QuizAssignment, error)
	findByID    func(id uint) (*model.QuizAssignment, error)
	findAnswers func(assignmentID uint) ([]model.Answer, error)
	create      func(req dto.QuizAssignmentDTO) (*model.QuizAssignment, error)
	start       func(assignmentID uint) error
	answer      func(req dto.AnswerDTO) error
	complete    func(assignmentID uint) error
}

func (s *stubAssignmentService) FindAll() ([]model.QuizAssignment, error) {
	if s.findAll == nil {
		return nil, nil
	}
	return s.findAll()
}

func (s *stubAssignmentService) FindByID(id uint) (*model.QuizAssignment, error) {
	if s.findByID == nil {
		return &model.QuizAssignment{}, nil
	}
	return s.findByID(id)
}

func (s *stubAssignmentService) FindAnswersByAssignmentID(assignmentID uint) ([]model.Answer, error) {
	if s.findAnswers == nil {
		return nil, nil
	}
	return s.findAnswers(assignmentID)
}

func (s *stubAssignmentService) Create(req dto.QuizAssignmentDTO) (*model.QuizAssignment, error) {
	if s.create == nil {
		return &model.QuizAssignment{}, nil
	}
	return s.create(req)
}

func (s *stubAssignmentService) Start(assignmentID uint) error {
	if s.start == nil {
		return nil
	}
	return s.start(assignmentID)
}

func (s *stubAssignmentService) Answer(req dto.AnswerDTO) error {
	if s.answer == nil {
		return nil
	}
	return s.answer(req)
}

func (s *stubAssignmentService) Complete(assignmentID uint) error {
	if s.complete == nil {
		return nil
	}
	return s.complete(assignmentID)
}
