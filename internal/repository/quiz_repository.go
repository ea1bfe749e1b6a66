package repository

import (
	"quiz-service/internal/model"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindByAssignedStudentID(studentID uint) ([]model.Quiz, error)
	ExistsByID(id uint) (bool, error)
	Update(quiz *model.Quiz) error
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// FindByAssignedStudentID lists the quizzes assigned to the student.
func (r *quizRepository) FindByAssignedStudentID(studentID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Joins("JOIN quiz_assignments ON quiz_assignments.quiz_id = quizzes.id").
		Where("quiz_assignments.student_id = ?", studentID).
		Order("quizzes.id ASC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Quiz{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *quizRepository) Update(quiz *model.Quiz) error {
	return r.db.Save(quiz).Error
}

func (r *quizRepository) Delete(id uint) error {
	// Questions, options and assignments go with the quiz via the FK cascades.
	return r.db.Delete(&model.Quiz{}, id).Error
}
