package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-service/internal/dto"
	"quiz-service/internal/service"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GetAllQuizzes godoc
// @Summary List all quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizInfoDTO
// @Router /quizzes [get]
func (ctrl *QuizController) GetAllQuizzes(c *gin.Context) {
	quizzes, err := ctrl.quizService.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuizByID godoc
// @Summary Get a quiz by ID
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (ctrl *QuizController) GetQuizByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	quiz, err := ctrl.quizService.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuizAssignmentsByQuizID godoc
// @Summary List the assignments of a quiz
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {array} model.QuizAssignment
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/quiz-assignments [get]
func (ctrl *QuizController) GetQuizAssignmentsByQuizID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	assignments, err := ctrl.quizService.FindQuizAssignmentsByQuizID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetStudentsByQuizID godoc
// @Summary List the students assigned to a quiz
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.StudentInfoDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/students [get]
func (ctrl *QuizController) GetStudentsByQuizID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	students, err := ctrl.quizService.FindStudentsByQuizID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetQuestionsByQuizID godoc
// @Summary List the questions of a quiz
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {array} model.Question
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id}/questions [get]
func (ctrl *QuizController) GetQuestionsByQuizID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	questions, err := ctrl.quizService.FindQuestionsByQuizID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizDTO true "Quiz data"
// @Success 201 {object} model.Quiz
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.IntegrityErrorResponse "Duplicate quiz name"
// @Router /quizzes [post]
func (ctrl *QuizController) CreateQuiz(c *gin.Context) {
	var req dto.QuizDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	quiz, err := ctrl.quizService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz godoc
// @Summary Update a quiz (full overwrite)
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizDTO true "Quiz data"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [patch]
func (ctrl *QuizController) UpdateQuiz(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.QuizDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	quiz, err := ctrl.quizService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz, its questions, options and assignments
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (ctrl *QuizController) DeleteQuiz(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.quizService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz deleted successfully"})
}
