package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"quiz-service/internal/apperror"
	"quiz-service/internal/cache"
	"quiz-service/internal/dto"
	"quiz-service/internal/model"
	"quiz-service/internal/repository"
)

type QuizService interface {
	FindAll() ([]dto.QuizInfoDTO, error)
	FindByID(id uint) (*model.Quiz, error)
	FindQuizAssignmentsByQuizID(quizID uint) ([]model.QuizAssignment, error)
	FindStudentsByQuizID(quizID uint) ([]dto.StudentInfoDTO, error)
	FindQuestionsByQuizID(quizID uint) ([]model.Question, error)
	Create(req dto.QuizDTO) (*model.Quiz, error)
	Update(id uint, req dto.QuizDTO) (*model.Quiz, error)
	Delete(id uint) error
}

type quizService struct {
	quizRepo       repository.QuizRepository
	studentRepo    repository.StudentRepository
	questionRepo   repository.QuestionRepository
	assignmentRepo repository.QuizAssignmentRepository
	cache          *cache.Store
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	studentRepo repository.StudentRepository,
	questionRepo repository.QuestionRepository,
	assignmentRepo repository.QuizAssignmentRepository,
	cacheStore *cache.Store,
) QuizService {
	return &quizService{
		quizRepo:       quizRepo,
		studentRepo:    studentRepo,
		questionRepo:   questionRepo,
		assignmentRepo: assignmentRepo,
		cache:          cacheStore,
	}
}

func (s *quizService) FindAll() ([]dto.QuizInfoDTO, error) {
	return cache.Fetch(s.cache, collectionQuizzes, cacheKeyAll, func() ([]dto.QuizInfoDTO, error) {
		quizzes, err := s.quizRepo.FindAll()
		if err != nil {
			log.Error().Err(err).Msg("Failed to list quizzes")
			return nil, err
		}
		infos := make([]dto.QuizInfoDTO, 0, len(quizzes))
		if err := copier.Copy(&infos, &quizzes); err != nil {
			return nil, err
		}
		return infos, nil
	})
}

func (s *quizService) FindByID(id uint) (*model.Quiz, error) {
	return cache.Fetch(s.cache, collectionQuizzes, cacheKeyID(id), func() (*model.Quiz, error) {
		quiz, err := s.quizRepo.FindByID(id)
		if err != nil {
			if isNotFound(err) {
				return nil, apperror.QuizNotFound(id)
			}
			return nil, err
		}
		return quiz, nil
	})
}

func (s *quizService) FindQuizAssignmentsByQuizID(quizID uint) ([]model.QuizAssignment, error) {
	if err := s.requireQuiz(quizID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.FindByQuizID(quizID)
}

func (s *quizService) FindStudentsByQuizID(quizID uint) ([]dto.StudentInfoDTO, error) {
	if err := s.requireQuiz(quizID); err != nil {
		return nil, err
	}
	students, err := s.studentRepo.FindByAssignedQuizID(quizID)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.StudentInfoDTO, 0, len(students))
	if err := copier.Copy(&infos, &students); err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *quizService) FindQuestionsByQuizID(quizID uint) ([]model.Question, error) {
	if err := s.requireQuiz(quizID); err != nil {
		return nil, err
	}
	return s.questionRepo.FindByQuizID(quizID)
}

func (s *quizService) Create(req dto.QuizDTO) (*model.Quiz, error) {
	quiz := model.Quiz{Name: req.Name}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create quiz")
		return nil, err
	}
	s.cache.EvictCollection(collectionQuizzes)
	return &quiz, nil
}

func (s *quizService) Update(id uint, req dto.QuizDTO) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.QuizNotFound(id)
		}
		return nil, err
	}

	quiz.Name = req.Name
	if err := s.quizRepo.Update(quiz); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to update quiz")
		return nil, err
	}
	s.cache.EvictCollection(collectionQuizzes)
	return quiz, nil
}

func (s *quizService) Delete(id uint) error {
	exists, err := s.quizRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.QuizNotFound(id)
	}
	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return err
	}
	// Questions, options and assignments cascade with the quiz.
	s.cache.EvictCollection(collectionQuizzes)
	s.cache.EvictCollection(collectionQuizAssignments)
	return nil
}

func (s *quizService) requireQuiz(id uint) error {
	exists, err := s.quizRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.QuizNotFound(id)
	}
	return nil
}
