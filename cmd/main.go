package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hqdat/workpulse/config"
	"github.com/hqdat/workpulse/database"
	_ "github.com/hqdat/workpulse/docs" // Swagger docs - auto-generated
	employeectrl "github.com/hqdat/workpulse/internal/controller/employee"
	hrctrl "github.com/hqdat/workpulse/internal/controller/hr"
	"github.com/hqdat/workpulse/internal/logger"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"github.com/hqdat/workpulse/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Workforce Survey & Scoring API
// @version 1.0
// @description Assigns questionnaires to employees, scores typed responses against per-question guides and aggregates factor-weighted totals per assignment.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewFactorRepository,
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewAssignmentRepository,
			repository.NewResponseRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoringService,
			service.NewAggregationService,
			service.NewDirectoryService,
			service.NewFactorService,
			service.NewSurveyService,
			service.NewAssignmentService,
			service.NewResponseService,
			// SubmissionService and RescoringService need *gorm.DB for
			// transaction handling around write-then-aggregate.
			func(
				questionRepo repository.QuestionRepository,
				assignmentRepo repository.AssignmentRepository,
				scorer service.ScoringService,
				aggregator service.AggregationService,
				db *gorm.DB,
			) service.SubmissionService {
				return service.NewSubmissionService(questionRepo, assignmentRepo, scorer, aggregator, db)
			},
			func(responseRepo repository.ResponseRepository, aggregator service.AggregationService, db *gorm.DB) service.RescoringService {
				return service.NewRescoringService(responseRepo, aggregator, db)
			},
		),

		// API Controllers Layer
		fx.Provide(
			hrctrl.NewFactorController,
			hrctrl.NewSurveyController,
			hrctrl.NewAssignmentController,
			employeectrl.NewSurveyController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	factorCtrl *hrctrl.FactorController,
	surveyCtrl *hrctrl.SurveyController,
	assignmentCtrl *hrctrl.AssignmentController,
	employeeSurveyCtrl *employeectrl.SurveyController,
) {
	// HR Routes (prefixed with /api/v1/hr)
	hrAPIGroup := router.Group("/api/v1/hr")
	{
		factorsGroup := hrAPIGroup.Group("/factors")
		factorsGroup.POST("", factorCtrl.CreateFactor)
		factorsGroup.GET("", factorCtrl.GetFactors)
		factorsGroup.PUT("/:factor_id", factorCtrl.UpdateFactor)
		factorsGroup.DELETE("/:factor_id", factorCtrl.DeleteFactor)

		surveysGroup := hrAPIGroup.Group("/surveys")
		surveysGroup.POST("", surveyCtrl.CreateSurvey)
		surveysGroup.GET("", surveyCtrl.GetSurveys)
		surveysGroup.GET("/:survey_id", surveyCtrl.GetSurvey)
		surveysGroup.GET("/:survey_id/statistics", surveyCtrl.GetSurveyStatistics)
		surveysGroup.GET("/:survey_id/responses", surveyCtrl.GetSurveyResponses)

		assignmentsGroup := hrAPIGroup.Group("/assignments")
		assignmentsGroup.POST("", assignmentCtrl.CreateAssignment)
		assignmentsGroup.GET("", assignmentCtrl.GetAssignments)

		hrAPIGroup.PATCH("/responses/:response_id/score", assignmentCtrl.RescoreResponse)
	}

	// Employee Routes (prefixed with /api/v1)
	employeeAPIGroup := router.Group("/api/v1")
	{
		employeeAPIGroup.GET("/my-assignments", employeeSurveyCtrl.MyAssignments)
		employeeAPIGroup.GET("/surveys/:survey_id", employeeSurveyCtrl.GetSurvey)
		employeeAPIGroup.POST("/surveys/:survey_id/submit", employeeSurveyCtrl.SubmitSurvey)
		employeeAPIGroup.GET("/assignments/:assignment_id/responses", employeeSurveyCtrl.AssignmentResponses)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Workforce survey API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Department{},
		&model.User{},
		&model.Employee{},
		&model.Factor{},
		&model.Survey{},
		&model.Question{},
		&model.SurveyAssignment{},
		&model.SurveyResponse{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
