package usecase

import (
	authdomain "habitly-backend/internal/auth/domain"
	authdto "habitly-backend/internal/auth/dto"
)

// AuthUsecase defines the auth business operations
type AuthUsecase interface {
	Signup(req *authdto.SignUpRequest) (*authdto.AuthResponse, error)
	Signin(req *authdto.SignInRequest) (*authdto.AuthResponse, error)
	SocialLogin(req *authdto.SocialLoginRequest) (*authdto.AuthResponse, error)
	UpdateSocialLogin(req *authdto.SocialLoginRequest) (*authdto.AuthResponse, error)
	GetUser(id uint) (*authdomain.User, error)
}
