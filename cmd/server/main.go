package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/autoshorts-api/configs"
	"github.com/maheshrc27/autoshorts-api/internal/api/handlers"
	"github.com/maheshrc27/autoshorts-api/internal/api/middleware"
	job "github.com/maheshrc27/autoshorts-api/internal/jobs"
	"github.com/maheshrc27/autoshorts-api/internal/queue"
	"github.com/maheshrc27/autoshorts-api/internal/repository"
	"github.com/maheshrc27/autoshorts-api/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Api-Key",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	videoRepo := repository.NewVideoRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	topicSource := service.NewTopicSource()
	completer := service.NewOpenAICompleter(*cfg)
	scriptService := service.NewScriptService(topicSource, completer, time.Duration(cfg.CompletionTimeoutS)*time.Second)

	var renderer service.Renderer
	if cfg.RenderServiceURL != "" {
		r2Service := service.NewR2Service(*cfg)
		renderer = service.NewRenderClient(*cfg, r2Service)
	} else {
		renderer = service.NewSimulatedRenderer(time.Duration(cfg.RenderDelayS) * time.Second)
	}
	videoService := service.NewVideoService(videoRepo, scheduleRepo, renderer)

	metadataService := service.NewMetadataService()
	publishClient := service.NewYoutubeClient(*cfg, videoRepo)
	publishService := service.NewPublishService(videoRepo, scheduleRepo, metadataService, publishClient, time.Duration(cfg.PublishTimeoutS)*time.Second)
	analyticsService := service.NewAnalyticsService(videoRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg)
	app.Post("/auth/token", auth.CreateToken)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	script := handlers.NewScriptHandler(scriptService)
	api.Post("/scripts/generate", script.GenerateScripts)

	video := handlers.NewVideoHandler(videoService)
	api.Post("/videos/create", video.CreateVideo)
	api.Get("/videos", video.ListVideos)
	api.Post("/videos/remove", video.RemoveVideo)

	publish := handlers.NewPublishHandler(publishService, client)
	api.Post("/videos/publish", publish.PublishVideo)
	api.Post("/videos/schedule", publish.ScheduleVideo)
	api.Get("/videos/scheduled", publish.ListScheduled)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.GetAnalytics)

	// cron jobs
	sweepJob := job.NewPendingSweepJob(scheduleRepo, client)

	// queue
	queueW := queue.NewQueue(publishService)

	c := cron.New()
	c.AddFunc("@every 00h01m00s", sweepJob.SweepOverdue)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishVideo, queueW.HandlePublishVideoTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
