package usecase

import (
	"fmt"

	authdomain "habitly-backend/internal/auth/domain"
	authdto "habitly-backend/internal/auth/dto"
	"habitly-backend/internal/auth/repository"
	"habitly-backend/internal/auth/token"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, issuer *token.Issuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Signup creates a LOCAL account. The existence check is advisory; if a
// concurrent signup wins the race, the store's unique constraint reports
// the same ErrDuplicateEmail on Save.
func (u *authUsecase) Signup(req *authdto.SignUpRequest) (*authdto.AuthResponse, error) {
	exists, err := u.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, authdomain.ErrDuplicateEmail
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &authdomain.User{
		Email:    &req.Email,
		Password: &hashed,
		Username: req.Username,
		Purpose:  req.Purpose,
		Provider: authdomain.ProviderLocal,
	}
	if err := u.userRepo.Save(user); err != nil {
		return nil, err
	}

	return u.issueTokens(user)
}

func (u *authUsecase) Signin(req *authdto.SignInRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	// Social accounts have no password hash; treat a local signin attempt
	// against one as bad credentials rather than faulting.
	if user.Password == nil || !repository.CheckPasswordHash(req.Password, *user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return u.issueTokens(user)
}

// SocialLogin is create-or-fetch: a miss on (provider, subject) creates the
// social user. The provider token is trusted as the provider subject; it is
// not verified against the issuing provider.
func (u *authUsecase) SocialLogin(req *authdto.SocialLoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByProviderAndSubject(req.Provider, req.Token)
	if err != nil {
		return nil, fmt.Errorf("finding social user: %w", err)
	}

	if user == nil {
		subject := req.Token
		user = &authdomain.User{
			Provider:   req.Provider,
			ProviderID: &subject,
		}
		if err := u.userRepo.Save(user); err != nil {
			return nil, err
		}
	}

	return u.issueTokens(user)
}

// UpdateSocialLogin re-issues tokens for an existing social account and
// fails if the (provider, subject) pair is unknown. Unlike SocialLogin it
// never creates a record; it also leaves the stored fields untouched.
func (u *authUsecase) UpdateSocialLogin(req *authdto.SocialLoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByProviderAndSubject(req.Provider, req.Token)
	if err != nil {
		return nil, fmt.Errorf("finding social user: %w", err)
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	return u.issueTokens(user)
}

// GetUser loads a user by id for authenticated routes.
func (u *authUsecase) GetUser(id uint) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) issueTokens(user *authdomain.User) (*authdto.AuthResponse, error) {
	accessToken, err := u.issuer.CreateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("minting access token: %w", err)
	}
	refreshToken, err := u.issuer.CreateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("minting refresh token: %w", err)
	}
	return authdto.NewAuthResponse(user, accessToken, refreshToken), nil
}
