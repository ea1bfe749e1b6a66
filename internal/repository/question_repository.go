package repository

import (
	"quiz-service/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithOptions(id uint) (*model.Question, error)
	FindByQuizID(quizID uint) ([]model.Question, error)
	CountByQuizID(quizID uint) (int64, error)
	ExistsByID(id uint) (bool, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithOptions(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.letter ASC")
	}).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByQuizID(quizID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *questionRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
