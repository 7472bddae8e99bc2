package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	api "fintrack-backend/cmd/api"
	authdomain "fintrack-backend/internal/auth/domain"
	authRepo "fintrack-backend/internal/auth/repository"
	authUsecase "fintrack-backend/internal/auth/usecase"
	financedomain "fintrack-backend/internal/finance/domain"
	financeRepo "fintrack-backend/internal/finance/repository"
	financeUsecase "fintrack-backend/internal/finance/usecase"
	"fintrack-backend/pkg/config"
	"fintrack-backend/pkg/database"
	"fintrack-backend/pkg/logger"
	"fintrack-backend/pkg/mailer"
)

func main() {
	log := logger.New("fintrack-api")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&financedomain.Category{},
		&financedomain.Expense{},
		&financedomain.Income{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	categoryRepo := financeRepo.NewGormCategoryRepository(db)
	expenseRepo := financeRepo.NewGormExpenseRepository(db)
	incomeRepo := financeRepo.NewGormIncomeRepository(db)

	// Initialize outbound mail
	mailSender := mailer.NewSMTPSender(cfg)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepo, mailSender, cfg)
	financeUc := financeUsecase.NewFinanceUsecase(categoryRepo, expenseRepo, incomeRepo)

	// Initialize router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(log.RequestLogger(), gin.Recovery())
	api.SetupRoutes(router, authUc, financeUc, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}
