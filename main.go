package main

import (
	"log"

	api "habitly-backend/cmd/api"
	authdomain "habitly-backend/internal/auth/domain"
	authRepo "habitly-backend/internal/auth/repository"
	"habitly-backend/internal/auth/token"
	authUsecase "habitly-backend/internal/auth/usecase"
	"habitly-backend/pkg/config"
	"habitly-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize dependencies
	userRepo := authRepo.NewUserRepository(db)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, issuer)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, issuer, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
