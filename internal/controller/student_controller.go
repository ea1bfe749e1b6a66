package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-service/internal/dto"
	"quiz-service/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents godoc
// @Summary List all students
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentInfoDTO
// @Router /students [get]
func (ctrl *StudentController) GetAllStudents(c *gin.Context) {
	students, err := ctrl.studentService.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudentByID godoc
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} model.Student
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (ctrl *StudentController) GetStudentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	student, err := ctrl.studentService.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// GetQuizAssignmentsByStudentID godoc
// @Summary List a student's quiz assignments
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} model.QuizAssignment
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/quiz-assignments [get]
func (ctrl *StudentController) GetQuizAssignmentsByStudentID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	assignments, err := ctrl.studentService.FindQuizAssignmentsByStudentID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetQuizzesByStudentID godoc
// @Summary List the quizzes assigned to a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} dto.QuizInfoDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/quizzes [get]
func (ctrl *StudentController) GetQuizzesByStudentID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	quizzes, err := ctrl.studentService.FindQuizzesByStudentID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetCompletedQuizzesByStudentID godoc
// @Summary List a student's completed quizzes with scores
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} dto.CompletedQuizDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/completed-quizzes [get]
func (ctrl *StudentController) GetCompletedQuizzesByStudentID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	completed, err := ctrl.studentService.FindCompletedQuizzesByStudentID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, completed)
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body dto.StudentDTO true "Student data"
// @Success 201 {object} model.Student
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.IntegrityErrorResponse "Duplicate student number"
// @Router /students [post]
func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	var req dto.StudentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	student, err := ctrl.studentService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent godoc
// @Summary Update a student (full overwrite)
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param student body dto.StudentDTO true "Student data"
// @Success 200 {object} model.Student
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [patch]
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.StudentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	student, err := ctrl.studentService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student and their assignments
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (ctrl *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.studentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully"})
}
