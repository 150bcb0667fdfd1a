package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/ironlog/internal/config"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/handler"
	"github.com/mansoorceksport/ironlog/internal/middleware"
	"github.com/mansoorceksport/ironlog/internal/repository"
	"github.com/mansoorceksport/ironlog/internal/service"
	"github.com/mansoorceksport/ironlog/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Initialize repositories
	profileRepo := repository.NewMongoProfileRepository(deps.MongoDB)
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)
	planRepo := repository.NewMongoTrainingPlanRepository(deps.MongoDB)
	workoutRepo := repository.NewMongoWorkoutRepository(deps.MongoDB)
	maxLogRepo := repository.NewMongoMaxLogRepository(deps.MongoDB)
	refreshTokenRepo := repository.NewMongoRefreshTokenRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	// Attachments are optional: without an S3 endpoint the API still runs,
	// uploads just return an error
	var fileRepo domain.FileRepository
	if deps.Config.S3.Enabled {
		s3Repo, err := repository.NewS3AttachmentRepository(context.Background(), deps.Config.S3)
		if err != nil {
			log.Printf("Warning: Failed to initialize S3 repository: %v", err)
		} else {
			fileRepo = s3Repo
		}
	}

	// Initialize services
	tokenService := service.NewTokenService(deps.Config.JWT, refreshTokenRepo, profileRepo)
	recordService := service.NewRecordService(maxLogRepo, cacheRepo)
	maxLogService := service.NewMaxLogService(maxLogRepo, exerciseRepo, recordService, fileRepo)
	workoutService := service.NewWorkoutService(workoutRepo, planRepo, exerciseRepo, maxLogRepo, recordService)
	dashboardService := service.NewDashboardService(recordService, workoutRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(profileRepo, tokenService)
	profileHandler := handler.NewProfileHandler(profileRepo)
	exerciseHandler := handler.NewExerciseHandler(exerciseRepo)
	planHandler := handler.NewPlanHandler(planRepo)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	maxLogHandler := handler.NewMaxLogHandler(maxLogService, deps.Config.Server.MaxUploadSizeMB)
	analyticsHandler := handler.NewAnalyticsHandler(recordService, dashboardService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "IronLog API",
		BodyLimit:    int(deps.Config.Server.MaxUploadSizeMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	if deps.Config.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "ironlog",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Auth endpoints (public)
	auth := v1.Group("/auth")
	auth.Post("/token", authHandler.IssueToken)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	// Profiles: listing and creating is public, device setup happens before
	// any token exists
	v1.Get("/profiles", profileHandler.List)
	v1.Post("/profiles", profileHandler.Create)

	// Exercise library (shared by all profiles on the device). Reads are
	// public, edits require a token.
	requireToken := middleware.VerifyProfileToken(deps.Config.JWT.Secret)
	exercises := v1.Group("/exercises")
	exercises.Get("/", exerciseHandler.List)
	exercises.Get("/:id", exerciseHandler.Get)
	exercises.Post("/", requireToken, exerciseHandler.Create)
	exercises.Put("/:id", requireToken, exerciseHandler.Update)
	exercises.Delete("/:id", requireToken, exerciseHandler.Delete)

	// Profile-scoped API: everything under /v1/me requires an access token
	me := v1.Group("/me")
	me.Use(requireToken)

	me.Get("/profile", profileHandler.Me)
	me.Put("/profile", profileHandler.UpdateMe)
	me.Delete("/profile", profileHandler.DeleteMe)

	mePlans := me.Group("/plans")
	mePlans.Post("/", planHandler.Create)
	mePlans.Get("/", planHandler.List)
	mePlans.Get("/:id", planHandler.Get)
	mePlans.Put("/:id", planHandler.Update)
	mePlans.Delete("/:id", planHandler.Delete)

	meWorkouts := me.Group("/workouts")
	meWorkouts.Post("/", workoutHandler.Start)
	meWorkouts.Get("/", workoutHandler.List)
	meWorkouts.Get("/:id", workoutHandler.Get)
	meWorkouts.Post("/:id/exercises", workoutHandler.AddExercise)
	meWorkouts.Patch("/:id/sets", workoutHandler.LogSet)
	meWorkouts.Post("/:id/complete", workoutHandler.Complete)

	meMaxLogs := me.Group("/maxlogs")
	meMaxLogs.Post("/", maxLogHandler.Create)
	meMaxLogs.Post("/batch", maxLogHandler.CreateBatch)
	meMaxLogs.Get("/", maxLogHandler.List)
	meMaxLogs.Get("/:id", maxLogHandler.Get)
	meMaxLogs.Patch("/:id", maxLogHandler.Update)
	meMaxLogs.Delete("/:id", maxLogHandler.Delete)
	meMaxLogs.Post("/:id/attachment", maxLogHandler.AttachProof)

	meRecords := me.Group("/records")
	meRecords.Get("/", analyticsHandler.Records)
	meRecords.Get("/strongest", analyticsHandler.Strongest)
	meRecords.Get("/:exerciseID/performance", analyticsHandler.Performance)

	me.Get("/dashboard", analyticsHandler.Dashboard)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
