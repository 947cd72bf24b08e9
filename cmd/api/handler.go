package api

import (
	"net/http"

	"habitly-backend/internal/auth/token"
	authUsecase "habitly-backend/internal/auth/usecase"
	"habitly-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	issuer      *token.Issuer
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, issuer *token.Issuer, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		issuer:      issuer,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(requestID())
	r.Use(cors(h.config.AllowedOrigins))

	SetupRoutes(r, h.authUsecase, h.issuer)

	return r.Run(addr)
}

// requestID tags every request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func cors(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (allowedOrigins == "*" || allowedOrigins == origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
