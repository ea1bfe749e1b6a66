package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quiz-service/config"
	"quiz-service/database"
	"quiz-service/internal/cache"
	"quiz-service/internal/controller"
	"quiz-service/internal/logger"
	"quiz-service/internal/model"
	"quiz-service/internal/repository"
	"quiz-service/internal/service"
)

// @title Quiz Service API
// @version 1.0
// @description Quiz management backend: students, quizzes, questions, options and the assignment workflow (assign, start, answer, complete).
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			cache.New,
		),

		fx.Provide(
			repository.NewStudentRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewQuizAssignmentRepository,
			repository.NewAnswerRepository,
		),

		fx.Provide(
			service.NewStudentService,
			service.NewQuizService,
			service.NewQuestionService,
			service.NewOptionService,
			service.NewQuizAssignmentService,
		),

		fx.Provide(
			controller.NewStudentController,
			controller.NewQuizController,
			controller.NewQuestionController,
			controller.NewOptionController,
			controller.NewQuizAssignmentController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studentCtrl *controller.StudentController,
	quizCtrl *controller.QuizController,
	questionCtrl *controller.QuestionController,
	optionCtrl *controller.OptionController,
	assignmentCtrl *controller.QuizAssignmentController,
) {
	controller.RegisterRoutes(router, studentCtrl, quizCtrl, questionCtrl, optionCtrl, assignmentCtrl)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz service starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Student{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.QuizAssignment{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}
