package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careermentor/api/internal/config"
	"careermentor/api/internal/document"
	"careermentor/api/internal/feedback"
	"careermentor/api/internal/handlers"
	"careermentor/api/internal/interview"
	"careermentor/api/internal/llm"
	_ "careermentor/api/internal/llm/gemini"
	"careermentor/api/internal/mentor"
	"careermentor/api/internal/models"
	"careermentor/api/internal/prompts"
	"careermentor/api/internal/reminder"
	"careermentor/api/internal/routers"
	"careermentor/api/internal/speech"
	"careermentor/api/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func registerRoutes(router *chi.Mux, mentorHandler *handlers.MentorHandler, interviewHandler *handlers.InterviewHandler, mediaHandler *handlers.MediaHandler, reminderHandler *handlers.ReminderHandler, feedbackHandler *handlers.FeedbackHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.MentorRoutes(router, mentorHandler, interviewHandler, mediaHandler, reminderHandler)
	if feedbackHandler != nil {
		routers.FeedbackRoutes(router, feedbackHandler)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate feedback tables
	if err := db.AutoMigrate(&models.MentorFeedback{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	// local development convenience; absence of a .env file is fine
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	mentorService := mentor.NewService(aiProvider, promptManager, logger)
	sessions := interview.NewStore(cfg.SessionTTL)

	// speech-to-text is optional; the route answers 503 without it
	var transcriber speech.Transcriber
	if googleTranscriber, err := speech.NewGoogleTranscriber(context.Background(), speech.Config{
		SampleRateHertz: int32(cfg.SpeechSampleRateHertz),
		LanguageCode:    utils.NormalizeLanguageCode(cfg.SpeechLanguageCode),
	}); err != nil {
		logger.Warn("Speech-to-text disabled", zap.Error(err))
	} else {
		transcriber = googleTranscriber
		defer googleTranscriber.Close()
	}

	// reminder delivery falls back to notifications only without SMTP creds
	var mailer reminder.Mailer
	if smtpMailer, err := reminder.NewSMTPMailer(reminder.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	}); err != nil {
		logger.Warn("Reminder emails disabled", zap.Error(err))
		mailer = reminder.LogMailer{}
	} else {
		mailer = smtpMailer
	}

	scheduler := reminder.NewScheduler(mailer, reminder.NewDesktopNotifier(logger), logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("Failed to start reminder scheduler", zap.Error(err))
	}

	mentorHandler := handlers.NewMentorHandler(mentorService, logger)
	interviewHandler := handlers.NewInterviewHandler(mentorService, sessions, logger)
	mediaHandler := handlers.NewMediaHandler(mentorService, document.NewPDFExtractor(), transcriber, logger)
	reminderHandler := handlers.NewReminderHandler(scheduler, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, cfg)

	// Initialize database for feedback storage
	db, err := initDatabase()
	if err != nil {
		logger.Error("Failed to initialize database, feedback system will be disabled", zap.Error(err))
		db = nil
	}

	// Initialize feedback manager (only if database is available)
	var feedbackHandler *handlers.FeedbackHandler
	if db != nil {
		feedbackManager := feedback.NewManager(db, cfg.FeedbackCacheTTL)
		mentorHandler.SetFeedbackManager(feedbackManager)
		feedbackHandler = handlers.NewFeedbackHandler(feedbackManager)
		logger.Info("Feedback system initialized successfully")
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8501", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))

	registerRoutes(router, mentorHandler, interviewHandler, mediaHandler, reminderHandler, feedbackHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Career mentor service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Career mentor service shutting down...")

	scheduler.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Career mentor service exited")
}
