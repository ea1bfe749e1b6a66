package repository

import (
	"quiz-service/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Save(answer *model.Answer) error
	FindByAssignmentID(assignmentID uint) ([]model.Answer, error)
	// FindByAssignmentAndQuestion returns gorm.ErrRecordNotFound when the
	// question has not been answered yet; the workflow upserts on that.
	FindByAssignmentAndQuestion(assignmentID, questionID uint) (*model.Answer, error)
	CountCorrectByAssignmentID(assignmentID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Save(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByAssignmentID(assignmentID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("quiz_assignment_id = ?", assignmentID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByAssignmentAndQuestion(assignmentID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("quiz_assignment_id = ? AND question_id = ?", assignmentID, questionID).First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) CountCorrectByAssignmentID(assignmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Answer{}).
		Where("quiz_assignment_id = ? AND correct = ?", assignmentID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
