package service

import (
	"github.com/rs/zerolog/log"

	"quiz-service/internal/apperror"
	"quiz-service/internal/cache"
	"quiz-service/internal/dto"
	"quiz-service/internal/model"
	"quiz-service/internal/repository"
)

// QuizAssignmentService drives the assignment lifecycle:
// ASSIGNED -> IN_PROGRESS -> COMPLETED. Transitions only move forward and
// COMPLETED is terminal.
type QuizAssignmentService interface {
	FindAll() ([]model.QuizAssignment, error)
	FindByID(id uint) (*model.QuizAssignment, error)
	FindAnswersByAssignmentID(assignmentID uint) ([]model.Answer, error)
	Create(req dto.QuizAssignmentDTO) (*model.QuizAssignment, error)
	Start(assignmentID uint) error
	Answer(req dto.AnswerDTO) error
	Complete(assignmentID uint) error
}

type quizAssignmentService struct {
	assignmentRepo repository.QuizAssignmentRepository
	answerRepo     repository.AnswerRepository
	questionRepo   repository.QuestionRepository
	studentRepo    repository.StudentRepository
	quizRepo       repository.QuizRepository
	cache          *cache.Store
}

func NewQuizAssignmentService(
	assignmentRepo repository.QuizAssignmentRepository,
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	studentRepo repository.StudentRepository,
	quizRepo repository.QuizRepository,
	cacheStore *cache.Store,
) QuizAssignmentService {
	return &quizAssignmentService{
		assignmentRepo: assignmentRepo,
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
		studentRepo:    studentRepo,
		quizRepo:       quizRepo,
		cache:          cacheStore,
	}
}

func (s *quizAssignmentService) FindAll() ([]model.QuizAssignment, error) {
	return cache.Fetch(s.cache, collectionQuizAssignments, cacheKeyAll, func() ([]model.QuizAssignment, error) {
		return s.assignmentRepo.FindAll()
	})
}

func (s *quizAssignmentService) FindByID(id uint) (*model.QuizAssignment, error) {
	return cache.Fetch(s.cache, collectionQuizAssignments, cacheKeyID(id), func() (*model.QuizAssignment, error) {
		assignment, err := s.assignmentRepo.FindByID(id)
		if err != nil {
			if isNotFound(err) {
				return nil, apperror.QuizAssignmentNotFound(id)
			}
			return nil, err
		}
		return assignment, nil
	})
}

func (s *quizAssignmentService) FindAnswersByAssignmentID(assignmentID uint) ([]model.Answer, error) {
	exists, err := s.assignmentRepo.ExistsByID(assignmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.QuizAssignmentNotFound(assignmentID)
	}
	return s.answerRepo.FindByAssignmentID(assignmentID)
}

func (s *quizAssignmentService) Create(req dto.QuizAssignmentDTO) (*model.QuizAssignment, error) {
	exists, err := s.studentRepo.ExistsByID(req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.StudentNotFound(req.StudentID)
	}

	exists, err = s.quizRepo.ExistsByID(req.QuizID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.QuizNotFound(req.QuizID)
	}

	assignment := model.QuizAssignment{
		StudentID: req.StudentID,
		QuizID:    req.QuizID,
		Status:    model.StatusAssigned,
	}
	if err := s.assignmentRepo.Create(&assignment); err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Uint("quizID", req.QuizID).
			Msg("Failed to create quiz assignment")
		return nil, err
	}
	s.cache.EvictCollection(collectionQuizAssignments)
	return &assignment, nil
}

// Start moves the assignment to IN_PROGRESS. Starting an assignment that is
// already IN_PROGRESS succeeds as a no-op transition; only COMPLETED is
// rejected.
func (s *quizAssignmentService) Start(assignmentID uint) error {
	assignment, err := s.findAssignment(assignmentID)
	if err != nil {
		return err
	}

	if assignment.Status == model.StatusCompleted {
		return apperror.QuizCompletedAlready(assignmentID)
	}

	assignment.Status = model.StatusInProgress
	if err := s.assignmentRepo.Update(assignment); err != nil {
		log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Failed to start quiz")
		return err
	}
	s.cache.EvictCollection(collectionQuizAssignments)
	return nil
}

// Answer upserts the student's answer for one question of an in-progress
// assignment. Correctness is recomputed from the question's correct-answer
// letter on every submission and never taken from the client; an empty
// selected option can never match a letter and always scores incorrect.
func (s *quizAssignmentService) Answer(req dto.AnswerDTO) error {
	assignment, err := s.findAssignment(req.QuizAssignmentID)
	if err != nil {
		return err
	}

	if assignment.Status != model.StatusInProgress {
		return apperror.QuizNotInProgress(req.QuizAssignmentID)
	}

	answer, err := s.answerRepo.FindByAssignmentAndQuestion(req.QuizAssignmentID, req.QuestionID)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		answer = &model.Answer{
			QuizAssignmentID: req.QuizAssignmentID,
			QuestionID:       req.QuestionID,
		}
	}

	correct, err := s.checkAnswer(req.QuestionID, req.SelectedOption)
	if err != nil {
		return err
	}

	answer.SelectedOption = req.SelectedOption
	answer.Correct = correct
	if err := s.answerRepo.Save(answer); err != nil {
		log.Error().Err(err).Uint("assignmentID", req.QuizAssignmentID).Uint("questionID", req.QuestionID).
			Msg("Failed to save answer")
		return err
	}
	s.cache.EvictCollection(collectionQuizAssignments)
	return nil
}

// Complete marks the assignment COMPLETED regardless of its current state and
// evaluates the score.
func (s *quizAssignmentService) Complete(assignmentID uint) error {
	assignment, err := s.findAssignment(assignmentID)
	if err != nil {
		return err
	}

	assignment.Status = model.StatusCompleted
	if err := s.evaluateScore(assignment); err != nil {
		return err
	}
	if err := s.assignmentRepo.Update(assignment); err != nil {
		log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("Failed to complete quiz")
		return err
	}
	s.cache.EvictCollection(collectionQuizAssignments)
	return nil
}

// evaluateScore recomputes the correct-answer count and the score. The score
// keeps the integer-division semantics of the legacy system: anything short of
// all-correct truncates toward zero (1 of 3 scores 0, 3 of 3 scores 100).
// A quiz that lost all its questions completes with score 0.
func (s *quizAssignmentService) evaluateScore(assignment *model.QuizAssignment) error {
	correct, err := s.answerRepo.CountCorrectByAssignmentID(assignment.ID)
	if err != nil {
		return err
	}
	total, err := s.questionRepo.CountByQuizID(assignment.QuizID)
	if err != nil {
		return err
	}

	assignment.CorrectAnswerCount = int(correct)
	if total == 0 {
		assignment.Score = 0
		return nil
	}
	assignment.Score = float64(int(correct) / int(total) * 100)
	return nil
}

func (s *quizAssignmentService) checkAnswer(questionID uint, selectedOption string) (bool, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if isNotFound(err) {
			return false, apperror.QuestionNotFound(questionID)
		}
		return false, err
	}
	return question.CorrectAnswer == selectedOption, nil
}

func (s *quizAssignmentService) findAssignment(id uint) (*model.QuizAssignment, error) {
	assignment, err := s.assignmentRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.QuizAssignmentNotFound(id)
		}
		return nil, err
	}
	return assignment, nil
}
