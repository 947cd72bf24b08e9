package api

import (
	"net/http"

	"habitly-backend/internal/auth/delivery"
	"habitly-backend/internal/auth/token"
	authUsecase "habitly-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, issuer *token.Issuer) {
	authHandler := delivery.NewAuthHandler(authUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/v1/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.Signin)
			auth.POST("/social-login", authHandler.SocialLogin)
			auth.PATCH("/social-login", authHandler.UpdateSocialLogin)
			auth.GET("/me", delivery.AuthMiddleware(issuer), authHandler.Me)
		}
	}
}
