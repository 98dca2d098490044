package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/report"
	"taskboard/internal/repository"
	memoryrepo "taskboard/internal/repository/memory"
	postgresrepo "taskboard/internal/repository/postgres"
	"taskboard/internal/service"
	"taskboard/internal/token"
	"taskboard/internal/transport/http/handlers"
	"taskboard/internal/transport/http/middleware"
	"taskboard/internal/transport/ws"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	// Repositories
	var (
		userRepo repository.UserRepository
		taskRepo repository.TaskRepository
	)
	if cfg.DevMode {
		logger.Info("dev mode: using in-memory repositories")
		userRepo = memoryrepo.NewUserRepo()
		taskRepo = memoryrepo.NewTaskRepo()
	} else {
		pool, err := database.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.EnsureSchema(context.Background(), pool); err != nil {
			logger.Fatal("ensuring schema", zap.Error(err))
		}
		logger.Info("connected to database")
		userRepo = postgresrepo.NewUserRepo(pool)
		taskRepo = postgresrepo.NewTaskRepo(pool)
	}

	// Event feed
	hub := ws.NewHub(logger)
	go hub.Run()

	// Services
	tokens := token.NewService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo, userRepo, hub)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	taskHandler := handlers.NewTaskHandler(taskService, logger)
	reportHandler := handlers.NewReportHandler(report.NewExecGenerator(cfg.ReportCommand), logger)

	auth := middleware.Auth(tokens)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/users/register", authHandler.Register)
	mux.HandleFunc("POST /api/users/login", authHandler.Login)

	// Protected - Users
	mux.Handle("GET /api/users", auth(http.HandlerFunc(userHandler.List)))

	// Protected - Tasks
	mux.Handle("POST /api/tasks", auth(http.HandlerFunc(taskHandler.Create)))
	mux.Handle("GET /api/tasks", auth(http.HandlerFunc(taskHandler.List)))
	mux.Handle("GET /api/tasks/{taskId}", auth(http.HandlerFunc(taskHandler.Get)))
	mux.Handle("PUT /api/tasks/{taskId}", auth(http.HandlerFunc(taskHandler.Update)))
	mux.Handle("DELETE /api/tasks/{taskId}", auth(http.HandlerFunc(taskHandler.Delete)))
	mux.Handle("GET /api/tasks/report/generate", auth(http.HandlerFunc(reportHandler.Generate)))

	// Feed authenticates via query param inside its own handler.
	mux.HandleFunc("GET /api/tasks/events", ws.Serve(hub, tokens, logger))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(mux),
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	hub.Stop()
}
