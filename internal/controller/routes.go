package controller

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every controller onto the engine. Paths mirror the
// public API: one resource group per aggregate, workflow transitions as PATCH
// subresources of /quiz-assignments.
func RegisterRoutes(
	router *gin.Engine,
	studentCtrl *StudentController,
	quizCtrl *QuizController,
	questionCtrl *QuestionController,
	optionCtrl *OptionController,
	assignmentCtrl *QuizAssignmentController,
) {
	students := router.Group("/students")
	{
		students.GET("", studentCtrl.GetAllStudents)
		students.GET("/:id", studentCtrl.GetStudentByID)
		students.GET("/:id/quiz-assignments", studentCtrl.GetQuizAssignmentsByStudentID)
		students.GET("/:id/quizzes", studentCtrl.GetQuizzesByStudentID)
		students.GET("/:id/completed-quizzes", studentCtrl.GetCompletedQuizzesByStudentID)
		students.POST("", studentCtrl.CreateStudent)
		students.PATCH("/:id", studentCtrl.UpdateStudent)
		students.DELETE("/:id", studentCtrl.DeleteStudent)
	}

	quizzes := router.Group("/quizzes")
	{
		quizzes.GET("", quizCtrl.GetAllQuizzes)
		quizzes.GET("/:id", quizCtrl.GetQuizByID)
		quizzes.GET("/:id/quiz-assignments", quizCtrl.GetQuizAssignmentsByQuizID)
		quizzes.GET("/:id/students", quizCtrl.GetStudentsByQuizID)
		quizzes.GET("/:id/questions", quizCtrl.GetQuestionsByQuizID)
		quizzes.POST("", quizCtrl.CreateQuiz)
		quizzes.PATCH("/:id", quizCtrl.UpdateQuiz)
		quizzes.DELETE("/:id", quizCtrl.DeleteQuiz)
	}

	questions := router.Group("/questions")
	{
		questions.GET("/:id", questionCtrl.GetQuestionByID)
		questions.GET("/:id/without-answer", questionCtrl.GetQuestionWithoutAnswerByID)
		questions.GET("/:id/options", questionCtrl.GetOptionsByQuestionID)
		questions.POST("", questionCtrl.CreateQuestion)
		questions.PATCH("/:id", questionCtrl.UpdateQuestion)
		questions.DELETE("/:id", questionCtrl.DeleteQuestion)
	}

	options := router.Group("/options")
	{
		options.GET("/:id", optionCtrl.GetOptionByID)
		options.POST("", optionCtrl.CreateOption)
		options.PATCH("/:id", optionCtrl.UpdateOption)
		options.DELETE("/:id", optionCtrl.DeleteOption)
	}

	assignments := router.Group("/quiz-assignments")
	{
		assignments.GET("", assignmentCtrl.GetAllQuizAssignments)
		assignments.GET("/:id", assignmentCtrl.GetQuizAssignmentByID)
		assignments.GET("/:id/answers", assignmentCtrl.GetAnswersByQuizAssignmentID)
		assignments.POST("", assignmentCtrl.CreateQuizAssignment)
		assignments.PATCH("/:id/start", assignmentCtrl.StartQuiz)
		assignments.PATCH("/answer", assignmentCtrl.AnswerQuestion)
		assignments.PATCH("/:id/complete", assignmentCtrl.CompleteQuiz)
	}
}
