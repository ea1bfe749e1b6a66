package service

import (
	"github.com/rs/zerolog/log"

	"quiz-service/internal/apperror"
	"quiz-service/internal/dto"
	"quiz-service/internal/model"
	"quiz-service/internal/repository"
)

type OptionService interface {
	FindByID(id uint) (*model.Option, error)
	Create(req dto.OptionDTO) (*model.Option, error)
	Update(id uint, req dto.OptionDTO) (*model.Option, error)
	Delete(id uint) error
}

type optionService struct {
	optionRepo   repository.OptionRepository
	questionRepo repository.QuestionRepository
}

func NewOptionService(
	optionRepo repository.OptionRepository,
	questionRepo repository.QuestionRepository,
) OptionService {
	return &optionService{optionRepo: optionRepo, questionRepo: questionRepo}
}

func (s *optionService) FindByID(id uint) (*model.Option, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.OptionNotFound(id)
		}
		return nil, err
	}
	return option, nil
}

func (s *optionService) Create(req dto.OptionDTO) (*model.Option, error) {
	exists, err := s.questionRepo.ExistsByID(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.QuestionNotFound(req.QuestionID)
	}

	option := model.Option{
		QuestionID: req.QuestionID,
		Text:       req.Text,
		Letter:     req.Letter,
	}
	if err := s.optionRepo.Create(&option); err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Str("letter", req.Letter).
			Msg("Failed to create option")
		return nil, err
	}
	return &option, nil
}

// Update overwrites the option's text and letter. The owning question is left
// as-is; options do not move between questions.
func (s *optionService) Update(id uint, req dto.OptionDTO) (*model.Option, error) {
	option, err := s.optionRepo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.OptionNotFound(id)
		}
		return nil, err
	}

	option.Text = req.Text
	option.Letter = req.Letter
	if err := s.optionRepo.Update(option); err != nil {
		log.Error().Err(err).Uint("optionID", id).Msg("Failed to update option")
		return nil, err
	}
	return option, nil
}

func (s *optionService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	if err := s.optionRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("optionID", id).Msg("Failed to delete option")
		return err
	}
	return nil
}
