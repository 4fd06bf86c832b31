package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-match-connect/config"
	_ "ai-match-connect/docs" // Important for Swagger
	v1 "ai-match-connect/internal/delivery/http/v1"
	"ai-match-connect/internal/repository/postgres"
	"ai-match-connect/internal/usecase"
	"ai-match-connect/pkg/auth"
	"ai-match-connect/pkg/database"
	"ai-match-connect/pkg/logger"
	"ai-match-connect/pkg/matchclient"

	"github.com/go-playground/validator/v10"
)

// @title           AI Match Connect API
// @version         1.0
// @description     Job board backend with AI-assisted candidate screening.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ai-match-connect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateProfileRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	skillRepo := postgres.NewCandidateSkillRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterProfileRepository(dbPool)
	jobRepo := postgres.NewJobPostingRepository(dbPool)
	applicationRepo := postgres.NewJobApplicationRepository(dbPool)

	// 5. Setup Token Service and Matching Engine Client
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.AccessTokenExpireMinutes, cfg.RefreshTokenExpireMinutes)
	matcher := matchclient.New(cfg.AIMatchURL, time.Duration(cfg.AIMatchTimeoutSeconds)*time.Second)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, educationRepo, experienceRepo, skillRepo, validate)
	recruiterUC := usecase.NewRecruiterUsecase(recruiterRepo, jobRepo, applicationRepo, userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	adminUC := usecase.NewAdminUsecase(userRepo, recruiterRepo)
	matchUC := usecase.NewMatchUsecase(jobRepo, candidateRepo, matcher)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CandidateUC:   candidateUC,
		RecruiterUC:   recruiterUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		MatchUC:       matchUC,
		UserRepo:      userRepo,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
