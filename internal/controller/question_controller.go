package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-service/internal/dto"
	"quiz-service/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// GetQuestionByID godoc
// @Summary Get a question by ID, correct answer included
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} model.Question
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (ctrl *QuestionController) GetQuestionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionService.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// GetQuestionWithoutAnswerByID godoc
// @Summary Get a question with its options but without the correct answer
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionWithoutAnswerDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/without-answer [get]
func (ctrl *QuestionController) GetQuestionWithoutAnswerByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionService.FindWithoutAnswerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// GetOptionsByQuestionID godoc
// @Summary List the options of a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {array} model.Option
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/options [get]
func (ctrl *QuestionController) GetOptionsByQuestionID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	options, err := ctrl.questionService.FindOptionsByQuestionID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// CreateQuestion godoc
// @Summary Create a question in a quiz
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionDTO true "Question data"
// @Success 201 {object} model.Question
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	question, err := ctrl.questionService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a question (full overwrite)
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionDTO true "Question data"
// @Success 200 {object} model.Question
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [patch]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	question, err := ctrl.questionService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question and its options
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}
