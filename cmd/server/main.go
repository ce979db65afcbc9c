package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"inkwell/internal/config"
	"inkwell/internal/crypto"
	"inkwell/internal/db"
	"inkwell/internal/handlers"
	mw "inkwell/internal/middleware"
	"inkwell/internal/service"
	"inkwell/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.New()
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	dbConn, err := sqlx.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open db", slog.Any("err", err))
		os.Exit(1)
	}
	dbConn.SetMaxOpenConns(10)
	dbConn.SetConnMaxLifetime(2 * time.Hour)
	if err = dbConn.Ping(); err != nil {
		slog.Error("failed to ping db", slog.Any("err", err))
		os.Exit(1)
	}
	if err := db.RunMigrations(dbConn); err != nil {
		slog.Error("failed migrations", slog.Any("err", err))
		os.Exit(1)
	}
	if err := db.SeedReferenceData(dbConn); err != nil {
		slog.Error("failed seeding reference data", slog.Any("err", err))
		os.Exit(1)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		slog.Error("failed to build request logger", slog.Any("err", err))
		os.Exit(1)
	}
	defer zapLogger.Sync()

	hasher, err := crypto.NewHasher(cfg.KDFIterations)
	if err != nil {
		slog.Error("invalid kdf config", slog.Any("err", err))
		os.Exit(1)
	}

	st := store.New(dbConn)
	streakSvc := service.NewStreakService(st.Streaks, st.Entries)
	authSvc := service.NewAuthService(st.Users, st.Streaks, hasher)
	entrySvc := service.NewEntryService(st.Entries, streakSvc)
	searchSvc := service.NewSearchService(st.Entries)
	analyticsSvc := service.NewAnalyticsService(st.Entries, st.Moods, st.Tags, streakSvc)
	tagSvc := service.NewTagService(st.Tags)

	authHandler := handlers.NewAuthHandler(authSvc, []byte(cfg.JWTSecret))
	journalHandler := handlers.NewJournalHandler(entrySvc)
	searchHandler := handlers.NewSearchHandler(searchSvc)
	dashboardHandler := handlers.NewDashboardHandler(analyticsSvc, streakSvc)
	tagHandler := handlers.NewTagHandler(tagSvc, st.Moods, st.Categories)
	exportHandler := handlers.NewExportHandler(entrySvc, st.Moods, st.Tags, st.Categories)
	authMW := mw.NewAuthMiddleware([]byte(cfg.JWTSecret))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger(zapLogger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authHandler.Register)
		api.Post("/auth/login", authHandler.Login)
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Post("/auth/pin", authHandler.SetPin)
			pr.Post("/auth/pin/verify", authHandler.VerifyPin)

			pr.Post("/journal", journalHandler.Create)
			pr.Get("/journal", journalHandler.List)
			pr.Put("/journal/{id}", journalHandler.Update)
			pr.Delete("/journal/{id}", journalHandler.Delete)
			pr.Get("/journal/date/{date}", journalHandler.GetByDate)

			pr.Get("/search", searchHandler.Search)

			pr.Get("/dashboard", dashboardHandler.Get)
			pr.Get("/analytics", dashboardHandler.Analytics)
			pr.Get("/streak", dashboardHandler.Streak)
			pr.Get("/streak/missed", dashboardHandler.MissedDays)

			pr.Get("/tags", tagHandler.List)
			pr.Post("/tags", tagHandler.Create)
			pr.Delete("/tags/{id}", tagHandler.Delete)
			pr.Get("/moods", tagHandler.Moods)
			pr.Get("/categories", tagHandler.Categories)

			pr.Get("/export", exportHandler.Export)
		})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		slog.Info("server starting", slog.String("addr", ":"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.Any("err", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	slog.Info("server stopped")
}
