package repository

import (
	"quiz-service/internal/model"

	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindAll() ([]model.Student, error)
	FindByAssignedQuizID(quizID uint) ([]model.Student, error)
	ExistsByID(id uint) (bool, error)
	Update(student *model.Student) error
	Delete(id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	if err := r.db.Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// FindByAssignedQuizID lists the students that have an assignment for the quiz.
func (r *studentRepository) FindByAssignedQuizID(quizID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.db.
		Joins("JOIN quiz_assignments ON quiz_assignments.student_id = students.id").
		Where("quiz_assignments.quiz_id = ?", quizID).
		Order("students.id ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *studentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepository) Delete(id uint) error {
	// Assignments (and their answers) go with the student via the FK cascade.
	return r.db.Delete(&model.Student{}, id).Error
}
