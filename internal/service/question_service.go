package service

import (
	"github.com/rs/zerolog/log"

	"quiz-service/internal/apperror"
	"quiz-service/internal/dto"
	"quiz-service/internal/model"
	"quiz-service/internal/repository"
)

type QuestionService interface {
	FindByID(id uint) (*model.Question, error)
	FindWithoutAnswerByID(id uint) (*dto.QuestionWithoutAnswerDTO, error)
	FindOptionsByQuestionID(questionID uint) ([]model.Option, error)
	Create(req dto.QuestionDTO) (*model.Question, error)
	Update(id uint, req dto.QuestionDTO) (*model.Question, error)
	Delete(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
	quizRepo     repository.QuizRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
	quizRepo repository.QuizRepository,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		quizRepo:     quizRepo,
	}
}

func (s *questionService) FindByID(id uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.QuestionNotFound(id)
		}
		return nil, err
	}
	return question, nil
}

// FindWithoutAnswerByID is the student-facing projection: options included,
// correct answer letter suppressed.
func (s *questionService) FindWithoutAnswerByID(id uint) (*dto.QuestionWithoutAnswerDTO, error) {
	question, err := s.questionRepo.FindByIDWithOptions(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.QuestionNotFound(id)
		}
		return nil, err
	}
	return &dto.QuestionWithoutAnswerDTO{
		ID:      question.ID,
		Text:    question.Text,
		Options: question.Options,
		QuizID:  question.QuizID,
	}, nil
}

func (s *questionService) FindOptionsByQuestionID(questionID uint) ([]model.Option, error) {
	exists, err := s.questionRepo.ExistsByID(questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.QuestionNotFound(questionID)
	}
	return s.optionRepo.FindByQuestionID(questionID)
}

func (s *questionService) Create(req dto.QuestionDTO) (*model.Question, error) {
	exists, err := s.quizRepo.ExistsByID(req.QuizID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.QuizNotFound(req.QuizID)
	}

	question := model.Question{
		QuizID:        req.QuizID,
		Text:          req.Text,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("Failed to create question")
		return nil, err
	}
	return &question, nil
}

func (s *questionService) Update(id uint, req dto.QuestionDTO) (*model.Question, error) {
	exists, err := s.quizRepo.ExistsByID(req.QuizID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.QuizNotFound(req.QuizID)
	}

	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.QuestionNotFound(id)
		}
		return nil, err
	}

	question.Text = req.Text
	question.CorrectAnswer = req.CorrectAnswer
	question.QuizID = req.QuizID
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, err
	}
	return question, nil
}

func (s *questionService) Delete(id uint) error {
	exists, err := s.questionRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.QuestionNotFound(id)
	}
	if err := s.questionRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return err
	}
	return nil
}
