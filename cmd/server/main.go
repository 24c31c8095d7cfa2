package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nihongoclass/internal/config"
	"nihongoclass/internal/database"
	"nihongoclass/internal/handlers"
	"nihongoclass/internal/quiz"
	"nihongoclass/internal/repository"
	"nihongoclass/internal/scheduler"
	"nihongoclass/internal/security"
	"nihongoclass/internal/service"
)

const (
	stepStore     = "Opening session store"
	stepTemplates = "Loading templates"
	stepServices  = "Initializing services"
	stepScheduler = "Starting scheduler"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	readiness := handlers.NewReadiness(stepStore, stepTemplates, stepServices, stepScheduler)

	keys, err := security.DeriveKeys(cfg.SessionSecret)
	if err != nil {
		log.Fatalf("Failed to derive keys: %v", err)
	}
	if cfg.SessionSecret == "" {
		log.Println("Warning: SESSION_SECRET is not set, sessions will not survive a restart")
	}
	log.Printf("Session key fingerprint: %s", security.Fingerprint(keys.Session))

	// Quiz sessions live in memory unless a shared SQL store is configured
	readiness.SetCurrentStep(stepStore)
	var store service.QuizStore
	if cfg.UsesSQLStore() {
		db, err := database.InitializeWithConfig(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

		if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")

		store = repository.NewQuizStateRepository(db)
	} else {
		store = service.NewMemoryQuizStore()
		log.Println("Using in-memory quiz session store")
	}
	readiness.CompleteStep(stepStore)

	// Load templates
	readiness.SetCurrentStep(stepTemplates)
	templates, err := handlers.LoadTemplates(os.DirFS(cfg.TemplatesPath))
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	log.Println("Templates loaded successfully")
	readiness.CompleteStep(stepTemplates)

	// Initialize services
	readiness.SetCurrentStep(stepServices)
	quizService := service.NewQuizService(store, quiz.Hiragana(), quiz.DefaultRandom())

	ctx := context.Background()
	contactService, err := service.NewContactService(ctx, service.ContactConfig{
		AWSRegion: cfg.AWSRegion,
		FromEmail: cfg.SESFromEmail,
		FromName:  cfg.SESFromName,
		ToEmail:   cfg.ContactToEmail,
		Debug:     cfg.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize contact service: %v", err)
	}
	if !contactService.IsEnabled() {
		log.Println("Contact delivery disabled: messages are only logged")
	}

	limiter := security.NewRateLimiter(cfg.ContactRateLimit, time.Minute)
	readiness.CompleteStep(stepServices)

	// Initialize handlers
	middleware := handlers.NewMiddleware(
		security.NewSessionTokens(keys.Session),
		security.NewCSRFGenerator(keys.CSRF),
		limiter,
		cfg.SessionDuration,
	)
	pageHandler := handlers.NewPageHandler(templates)
	toolsHandler := handlers.NewToolsHandler(quizService, templates)
	contactHandler := handlers.NewContactHandler(contactService, templates)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))
	mux.HandleFunc("GET /healthz", readiness.Healthz)

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithSession(pageHandler.Home))
	mux.HandleFunc("GET /why", middleware.WithSession(pageHandler.Why))
	mux.HandleFunc("GET /courses", middleware.WithSession(pageHandler.Courses))
	mux.HandleFunc("GET /activities", middleware.WithSession(pageHandler.Activities))
	mux.HandleFunc("GET /calendar", middleware.WithSession(pageHandler.Calendar))
	mux.HandleFunc("GET /faq", middleware.WithSession(pageHandler.FAQ))
	mux.HandleFunc("POST /contact", middleware.WithSession(middleware.CSRFProtect(middleware.RateLimit(contactHandler.Submit))))

	// Mini tools
	mux.HandleFunc("GET /tools", middleware.WithSession(toolsHandler.Show))
	mux.HandleFunc("POST /tools/quiz/answer", middleware.WithSession(middleware.CSRFProtect(toolsHandler.Answer)))
	mux.HandleFunc("POST /tools/quiz/skip", middleware.WithSession(middleware.CSRFProtect(toolsHandler.Skip)))
	mux.HandleFunc("POST /tools/quiz/reset", middleware.WithSession(middleware.CSRFProtect(toolsHandler.Reset)))
	mux.HandleFunc("GET /tools/quiz/state", middleware.WithSession(toolsHandler.State))
	mux.HandleFunc("POST /tools/combine", middleware.WithSession(middleware.CSRFProtect(toolsHandler.Combine)))
	mux.HandleFunc("GET /tools/vocabulary.xlsx", toolsHandler.Vocabulary)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Background cleanup of expired sessions and idle rate limit entries
	readiness.SetCurrentStep(stepScheduler)
	jobs := scheduler.New(quizService, limiter)
	if err := jobs.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer jobs.Stop()
	readiness.CompleteStep(stepScheduler)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()
	readiness.MarkReady()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
