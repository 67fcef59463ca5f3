// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_vocab_mastery/internal/analytics"
	"go_vocab_mastery/internal/config"
	"go_vocab_mastery/internal/handlers"
	"go_vocab_mastery/internal/middleware"
	"go_vocab_mastery/internal/model"
	"go_vocab_mastery/internal/repository"
	"go_vocab_mastery/internal/reward"
	"go_vocab_mastery/internal/service"
	"go_vocab_mastery/internal/srs"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマのマイグレーション
	if err := db.AutoMigrate(
		&model.Word{},
		&model.MasteryState{},
		&model.AttemptRecord{},
		&model.GemAward{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	masteryRepo := repository.NewGormMasteryRepository()
	gemRepo := repository.NewGormGemRepository()

	scheduler := srs.NewScheduler(config.Cfg.App.SRS.SchedulerConfig())
	engine := reward.NewEngine(config.Cfg.App.Reward.EngineConfig())
	cache := analytics.NewCache()

	analyticsService := service.NewAnalyticsService(db, attemptRepo, wordRepo, masteryRepo, cache, &config.Cfg)
	attemptService := service.NewAttemptService(db, wordRepo, attemptRepo, masteryRepo, gemRepo, scheduler, engine, analyticsService)
	reviewService := service.NewReviewService(db, masteryRepo, &config.Cfg)
	wordService := service.NewWordService(db, wordRepo)

	wordHandler := handlers.NewWordHandler(wordService, logger)
	attemptHandler := handlers.NewAttemptHandler(attemptService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- 単語カタログ（学習者非依存の管理用API） ---
		r.Route("/words", func(r chi.Router) {
			r.Post("/", wordHandler.PostWord)
			r.Get("/", wordHandler.GetWords)
			r.Get("/{word_id}", wordHandler.GetWord)
			r.Put("/{word_id}", wordHandler.PutWord)
			r.Patch("/{word_id}", wordHandler.PatchWord)
			r.Delete("/{word_id}", wordHandler.DeleteWord)
		})

		// --- 学習者コンテキストが必要なAPI ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.LearnerContextMiddleware)

			r.Post("/attempts", attemptHandler.PostAttempt)
			r.Get("/gems", attemptHandler.GetGems)

			r.Route("/review", func(r chi.Router) {
				r.Get("/words", reviewHandler.GetDueWords)
				r.Get("/words/count", reviewHandler.GetDueWordsCount)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/summary", analyticsHandler.GetSummary)
				r.Post("/cache/clear", analyticsHandler.ClearCache)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
