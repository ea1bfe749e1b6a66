package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-service/internal/dto"
	"quiz-service/internal/service"
)

type QuizAssignmentController struct {
	assignmentService service.QuizAssignmentService
}

func NewQuizAssignmentController(assignmentService service.QuizAssignmentService) *QuizAssignmentController {
	return &QuizAssignmentController{assignmentService: assignmentService}
}

// GetAllQuizAssignments godoc
// @Summary List all quiz assignments
// @Tags quiz-assignments
// @Produce json
// @Success 200 {array} model.QuizAssignment
// @Router /quiz-assignments [get]
func (ctrl *QuizAssignmentController) GetAllQuizAssignments(c *gin.Context) {
	assignments, err := ctrl.assignmentService.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetQuizAssignmentByID godoc
// @Summary Get a quiz assignment by ID
// @Tags quiz-assignments
// @Produce json
// @Param id path int true "Quiz assignment ID"
// @Success 200 {object} model.QuizAssignment
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-assignments/{id} [get]
func (ctrl *QuizAssignmentController) GetQuizAssignmentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	assignment, err := ctrl.assignmentService.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// GetAnswersByQuizAssignmentID godoc
// @Summary List the answers submitted for a quiz assignment
// @Tags quiz-assignments
// @Produce json
// @Param id path int true "Quiz assignment ID"
// @Success 200 {array} model.Answer
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-assignments/{id}/answers [get]
func (ctrl *QuizAssignmentController) GetAnswersByQuizAssignmentID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	answers, err := ctrl.assignmentService.FindAnswersByAssignmentID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

// CreateQuizAssignment godoc
// @Summary Assign a quiz to a student
// @Tags quiz-assignments
// @Accept json
// @Produce json
// @Param assignment body dto.QuizAssignmentDTO true "Student and quiz IDs"
// @Success 201 {object} model.QuizAssignment
// @Failure 404 {object} dto.ErrorResponse "Student or quiz not found"
// @Failure 409 {object} dto.IntegrityErrorResponse "Quiz already assigned to the student"
// @Router /quiz-assignments [post]
func (ctrl *QuizAssignmentController) CreateQuizAssignment(c *gin.Context) {
	var req dto.QuizAssignmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	assignment, err := ctrl.assignmentService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// StartQuiz godoc
// @Summary Start an assigned quiz
// @Tags quiz-assignments
// @Produce json
// @Param id path int true "Quiz assignment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Quiz already completed"
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-assignments/{id}/start [patch]
func (ctrl *QuizAssignmentController) StartQuiz(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.assignmentService.Start(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz started successfully"})
}

// AnswerQuestion godoc
// @Summary Submit or change the answer for one question
// @Tags quiz-assignments
// @Accept json
// @Produce json
// @Param answer body dto.AnswerDTO true "Assignment, question and selected option"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Quiz not in progress"
// @Failure 404 {object} dto.ErrorResponse "Assignment or question not found"
// @Router /quiz-assignments/answer [patch]
func (ctrl *QuizAssignmentController) AnswerQuestion(c *gin.Context) {
	var req dto.AnswerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := ctrl.assignmentService.Answer(req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Answer submitted successfully"})
}

// CompleteQuiz godoc
// @Summary Complete a quiz and evaluate the score
// @Tags quiz-assignments
// @Produce json
// @Param id path int true "Quiz assignment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz-assignments/{id}/complete [patch]
func (ctrl *QuizAssignmentController) CompleteQuiz(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.assignmentService.Complete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz completed successfully"})
}
