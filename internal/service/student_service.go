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

type StudentService interface {
	FindAll() ([]dto.StudentInfoDTO, error)
	FindByID(id uint) (*model.Student, error)
	FindQuizAssignmentsByStudentID(studentID uint) ([]model.QuizAssignment, error)
	FindQuizzesByStudentID(studentID uint) ([]dto.QuizInfoDTO, error)
	FindCompletedQuizzesByStudentID(studentID uint) ([]dto.CompletedQuizDTO, error)
	Create(req dto.StudentDTO) (*model.Student, error)
	Update(id uint, req dto.StudentDTO) (*model.Student, error)
	Delete(id uint) error
}

type studentService struct {
	studentRepo    repository.StudentRepository
	quizRepo       repository.QuizRepository
	assignmentRepo repository.QuizAssignmentRepository
	cache          *cache.Store
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	quizRepo repository.QuizRepository,
	assignmentRepo repository.QuizAssignmentRepository,
	cacheStore *cache.Store,
) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		quizRepo:       quizRepo,
		assignmentRepo: assignmentRepo,
		cache:          cacheStore,
	}
}

func (s *studentService) FindAll() ([]dto.StudentInfoDTO, error) {
	return cache.Fetch(s.cache, collectionStudents, cacheKeyAll, func() ([]dto.StudentInfoDTO, error) {
		students, err := s.studentRepo.FindAll()
		if err != nil {
			log.Error().Err(err).Msg("Failed to list students")
			return nil, err
		}
		infos := make([]dto.StudentInfoDTO, 0, len(students))
		if err := copier.Copy(&infos, &students); err != nil {
			return nil, err
		}
		return infos, nil
	})
}

func (s *studentService) FindByID(id uint) (*model.Student, error) {
	return cache.Fetch(s.cache, collectionStudents, cacheKeyID(id), func() (*model.Student, error) {
		student, err := s.studentRepo.FindByID(id)
		if err != nil {
			if isNotFound(err) {
				return nil, apperror.StudentNotFound(id)
			}
			return nil, err
		}
		return student, nil
	})
}

func (s *studentService) FindQuizAssignmentsByStudentID(studentID uint) ([]model.QuizAssignment, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.FindByStudentID(studentID)
}

func (s *studentService) FindQuizzesByStudentID(studentID uint) ([]dto.QuizInfoDTO, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	quizzes, err := s.quizRepo.FindByAssignedStudentID(studentID)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.QuizInfoDTO, 0, len(quizzes))
	if err := copier.Copy(&infos, &quizzes); err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *studentService) FindCompletedQuizzesByStudentID(studentID uint) ([]dto.CompletedQuizDTO, error) {
	if err := s.requireStudent(studentID); err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	completed := make([]dto.CompletedQuizDTO, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.Status != model.StatusCompleted {
			continue
		}
		quiz, err := s.quizRepo.FindByID(assignment.QuizID)
		if err != nil {
			if isNotFound(err) {
				// Quiz removed underneath the assignment; skip the orphan.
				log.Warn().Uint("quizID", assignment.QuizID).Uint("assignmentID", assignment.ID).
					Msg("Completed assignment references a missing quiz")
				continue
			}
			return nil, err
		}
		completed = append(completed, dto.CompletedQuizDTO{
			QuizName:           quiz.Name,
			CorrectAnswerCount: assignment.CorrectAnswerCount,
			Score:              assignment.Score,
		})
	}
	return completed, nil
}

func (s *studentService) Create(req dto.StudentDTO) (*model.Student, error) {
	student := model.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Number:    req.Number,
	}
	if err := s.studentRepo.Create(&student); err != nil {
		log.Error().Err(err).Str("number", req.Number).Msg("Failed to create student")
		return nil, err
	}
	s.cache.EvictCollection(collectionStudents)
	return &student, nil
}

func (s *studentService) Update(id uint, req dto.StudentDTO) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.StudentNotFound(id)
		}
		return nil, err
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Number = req.Number
	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("studentID", id).Msg("Failed to update student")
		return nil, err
	}
	s.cache.EvictCollection(collectionStudents)
	return student, nil
}

func (s *studentService) Delete(id uint) error {
	exists, err := s.studentRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.StudentNotFound(id)
	}
	if err := s.studentRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("studentID", id).Msg("Failed to delete student")
		return err
	}
	// The delete cascades into assignments, so both collections are stale.
	s.cache.EvictCollection(collectionStudents)
	s.cache.EvictCollection(collectionQuizAssignments)
	return nil
}

func (s *studentService) requireStudent(id uint) error {
	exists, err := s.studentRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.StudentNotFound(id)
	}
	return nil
}
