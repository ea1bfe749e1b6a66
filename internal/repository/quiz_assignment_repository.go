package repository

import (
	"quiz-service/internal/model"

	"gorm.io/gorm"
)

type QuizAssignmentRepository interface {
	Create(assignment *model.QuizAssignment) error
	FindByID(id uint) (*model.QuizAssignment, error)
	FindAll() ([]model.QuizAssignment, error)
	FindByStudentID(studentID uint) ([]model.QuizAssignment, error)
	FindByQuizID(quizID uint) ([]model.QuizAssignment, error)
	ExistsByID(id uint) (bool, error)
	Update(assignment *model.QuizAssignment) error
}

type quizAssignmentRepository struct {
	db *gorm.DB
}

func NewQuizAssignmentRepository(db *gorm.DB) QuizAssignmentRepository {
	return &quizAssignmentRepository{db: db}
}

func (r *quizAssignmentRepository) Create(assignment *model.QuizAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *quizAssignmentRepository) FindByID(id uint) (*model.QuizAssignment, error) {
	var assignment model.QuizAssignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *quizAssignmentRepository) FindAll() ([]model.QuizAssignment, error) {
	var assignments []model.QuizAssignment
	if err := r.db.Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *quizAssignmentRepository) FindByStudentID(studentID uint) ([]model.QuizAssignment, error) {
	var assignments []model.QuizAssignment
	if err := r.db.Where("student_id = ?", studentID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *quizAssignmentRepository) FindByQuizID(quizID uint) ([]model.QuizAssignment, error) {
	var assignments []model.QuizAssignment
	if err := r.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *quizAssignmentRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.QuizAssignment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *quizAssignmentRepository) Update(assignment *model.QuizAssignment) error {
	return r.db.Save(assignment).Error
}
