package delivery

import (
	"errors"
	"net/http"

	authdomain "habitly-backend/internal/auth/domain"
	authdto "habitly-backend/internal/auth/dto"
	"habitly-backend/internal/auth/token"
	"habitly-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req authdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SocialLogin(c *gin.Context) {
	var req authdto.SocialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.SocialLogin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) UpdateSocialLogin(c *gin.Context) {
	var req authdto.SocialLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.UpdateSocialLogin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the public projection of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := h.authUsecase.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authdto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Purpose:      user.Purpose,
		AuthProvider: user.Provider,
	})
}

// respondError maps service and token failures to HTTP statuses:
// conflict for duplicate email, not-found for missing users, unauthorized
// for bad credentials and every token failure, internal otherwise.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, token.ErrBadSignature),
		errors.Is(err, token.ErrMalformed),
		errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrUnsupportedFormat),
		errors.Is(err, token.ErrEmptyClaims):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
