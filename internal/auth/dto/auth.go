package dto

import authdomain "habitly-backend/internal/auth/domain"

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
	Purpose  string `json:"purpose"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SocialLoginRequest carries the provider-issued token. The token is used
// as the provider subject directly; verification against the provider is
// not performed here.
type SocialLoginRequest struct {
	Token    string                  `json:"token" binding:"required"`
	Provider authdomain.AuthProvider `json:"provider" binding:"required,oneof=LOCAL GOOGLE KAKAO APPLE"`
}

// UserResponse is the public projection of a user. Password hash and
// provider subject never appear here.
type UserResponse struct {
	ID           uint                    `json:"id"`
	Email        *string                 `json:"email"`
	Username     string                  `json:"username"`
	Purpose      string                  `json:"purpose"`
	AuthProvider authdomain.AuthProvider `json:"authProvider"`
}

// AuthResponse is the envelope returned by every auth operation.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// NewAuthResponse builds the envelope from a persisted user and a freshly
// minted token pair.
func NewAuthResponse(user *authdomain.User, accessToken, refreshToken string) *AuthResponse {
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:           user.ID,
			Email:        user.Email,
			Username:     user.Username,
			Purpose:      user.Purpose,
			AuthProvider: user.Provider,
		},
	}
}
