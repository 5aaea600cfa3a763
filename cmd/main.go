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

	"curriculum_keep/internal/config"
	"curriculum_keep/internal/handlers"
	"curriculum_keep/internal/middleware"
	"curriculum_keep/internal/repository"
	"curriculum_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
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

	// 開発時は tint の色付きログ、それ以外はJSONログ
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

	slog.Info("Application starting...", slog.String("app", config.AppName))

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

	// スキーマのマイグレーションとレガシー親参照の正規化
	if err := repository.Migrate(db, logger); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	quarterRepo := repository.NewGormQuarterRepository()
	moduleRepo := repository.NewGormModuleRepository()
	lessonRepo := repository.NewGormLessonRepository()
	reviewRepo := repository.NewGormReviewRepository()
	sequenceRepo := repository.NewGormSequenceRepository()
	userRepo := repository.NewGormUserRepository()

	mailer := service.NewMailer(&config.Cfg)
	resolver := service.NewActorResolver(db, userRepo)

	quarterService := service.NewQuarterService(db, &config.Cfg, quarterRepo, moduleRepo, lessonRepo, reviewRepo, resolver)
	moduleService := service.NewModuleService(db, &config.Cfg, quarterRepo, moduleRepo, lessonRepo, reviewRepo, sequenceRepo, resolver)
	lessonService := service.NewLessonService(db, &config.Cfg, moduleRepo, lessonRepo, reviewRepo, sequenceRepo, resolver)
	reviewService := service.NewReviewService(db, &config.Cfg, quarterRepo, moduleRepo, lessonRepo, reviewRepo, userRepo, resolver, mailer)

	quarterHandler := handlers.NewQuarterHandler(quarterService, logger)
	moduleHandler := handlers.NewModuleHandler(moduleService, logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
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
		// 実行者の特定。本番はJWTクレーム、開発時は X-Actor-* ヘッダー。
		if strings.ToLower(appEnv) == "dev" {
			slog.Info("Applying development actor middleware (X-Actor-* headers)")
			r.Use(middleware.DevActorContextMiddleware)
		} else {
			slog.Info("Applying JWT actor middleware")
			r.Use(middleware.JWTActorMiddleware(&config.Cfg))
		}

		// Quarter routes
		r.Route("/quarters", func(r chi.Router) {
			r.Post("/", quarterHandler.PostQuarter)
			r.Get("/", quarterHandler.GetQuarters)
			r.Get("/{quarter_id}", quarterHandler.GetQuarter)
			r.Delete("/{quarter_id}", quarterHandler.DeleteQuarter)
			r.Post("/{quarter_id}/approve", reviewHandler.ApproveQuarter)
			r.Post("/{quarter_id}/reject", reviewHandler.RejectQuarter)
			r.Get("/{quarter_id}/reviews", reviewHandler.GetQuarterReviews)
		})

		// Module routes
		r.Route("/modules", func(r chi.Router) {
			r.Post("/", moduleHandler.PostModule)
			r.Get("/", moduleHandler.GetModules)
			r.Get("/{module_id}", moduleHandler.GetModule)
			r.Patch("/{module_id}", moduleHandler.PatchModule)
			r.Delete("/{module_id}", moduleHandler.DeleteModule)
			r.Post("/{module_id}/approve", reviewHandler.ApproveModule)
			r.Post("/{module_id}/reject", reviewHandler.RejectModule)
			r.Get("/{module_id}/reviews", reviewHandler.GetModuleReviews)
		})

		// Lesson routes
		r.Route("/lessons", func(r chi.Router) {
			r.Post("/", lessonHandler.PostLesson)
			r.Get("/", lessonHandler.GetLessons)
			r.Get("/{lesson_id}", lessonHandler.GetLesson)
			r.Patch("/{lesson_id}", lessonHandler.PatchLesson)
			r.Delete("/{lesson_id}", lessonHandler.DeleteLesson)
			r.Post("/{lesson_id}/approve", reviewHandler.ApproveLesson)
			r.Post("/{lesson_id}/reject", reviewHandler.RejectLesson)
			r.Get("/{lesson_id}/reviews", reviewHandler.GetLessonReviews)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
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
			os.Exit(1) // Listen失敗は致命的
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
