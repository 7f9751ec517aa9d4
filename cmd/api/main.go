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
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/bizledger/bizledger-go/internal/config"
	"github.com/bizledger/bizledger-go/internal/crypto"
	"github.com/bizledger/bizledger-go/internal/handler"
	"github.com/bizledger/bizledger-go/internal/middleware"
	"github.com/bizledger/bizledger-go/internal/model"
	"github.com/bizledger/bizledger-go/internal/repository"
	"github.com/bizledger/bizledger-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","message":"Accounting Platform API is running"}`))
	})

	db, err := repository.NewDB(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — API routes disabled", "error", err)
	} else {
		userRepo := repository.NewUserRepository(db)

		if cfg.DBDriver == "sqlite3" {
			if err := repository.InitSchema(context.Background(), db); err != nil {
				slog.Error("schema initialization failed", "error", err)
				os.Exit(1)
			}
			seedAdminUser(context.Background(), userRepo)
		}

		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		businessService := service.NewBusinessService(repository.NewBusinessRepository(db))
		businessHandler := handler.NewBusinessHandler(businessService)

		dashboardService := service.NewDashboardService(repository.NewDashboardRepository(db))
		dashboardHandler := handler.NewDashboardHandler(dashboardService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/auth/register", authHandler.HandleRegister)
			r.Post("/api/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/auth/me", authHandler.HandleMe)

			r.Get("/api/businesses", businessHandler.HandleList)
			r.Post("/api/businesses", businessHandler.HandleCreate)

			r.Get("/api/dashboard/stats", dashboardHandler.HandleStats)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// seedAdminUser creates the default admin account for a fresh SQLite
// database. Existing databases are left untouched.
func seedAdminUser(ctx context.Context, repo *repository.UserRepository) {
	const adminEmail = "admin@business.com"

	exists, err := repo.ExistsByEmailOrUsername(ctx, adminEmail, "admin")
	if err != nil {
		slog.Error("checking for admin user failed", "error", err)
		return
	}
	if exists {
		return
	}

	hash, err := crypto.HashPassword("admin123")
	if err != nil {
		slog.Error("hashing admin password failed", "error", err)
		return
	}

	admin := &model.User{
		UserID:       uuid.NewString(),
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		slog.Error("creating admin user failed", "error", err)
		return
	}

	slog.Info("default admin user created", "email", adminEmail)
}
