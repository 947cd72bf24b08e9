package usecase

import (
	"errors"
	"testing"
	"time"

	authdomain "habitly-backend/internal/auth/domain"
	authdto "habitly-backend/internal/auth/dto"
	"habitly-backend/internal/auth/token"
)

// mockUserRepo implements repository.UserRepository with per-test hooks.
type mockUserRepo struct {
	findByEmailFn              func(email string) (*authdomain.User, error)
	findByIDFn                 func(id uint) (*authdomain.User, error)
	findByProviderAndSubjectFn func(provider authdomain.AuthProvider, subject string) (*authdomain.User, error)
	existsByEmailFn            func(email string) (bool, error)
	saveFn                     func(user *authdomain.User) error
}

func (m *mockUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(id uint) (*authdomain.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByProviderAndSubject(provider authdomain.AuthProvider, subject string) (*authdomain.User, error) {
	if m.findByProviderAndSubjectFn != nil {
		return m.findByProviderAndSubjectFn(provider, subject)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(email)
	}
	return false, nil
}

func (m *mockUserRepo) Save(user *authdomain.User) error {
	if m.saveFn != nil {
		return m.saveFn(user)
	}
	return nil
}

func testIssuer() *token.Issuer {
	return token.NewIssuer("test-secret", 15*time.Minute, 168*time.Hour)
}

func TestSignup(t *testing.T) {
	var saved *authdomain.User
	repo := &mockUserRepo{
		saveFn: func(user *authdomain.User) error {
			user.ID = 1
			saved = user
			return nil
		},
	}
	issuer := testIssuer()
	uc := NewAuthUsecase(repo, issuer)

	resp, err := uc.Signup(&authdto.SignUpRequest{
		Email:    "a@x.com",
		Password: "pw1",
		Username: "Ann",
		Purpose:  "study",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected user to be persisted")
	}
	if saved.Provider != authdomain.ProviderLocal {
		t.Errorf("expected LOCAL provider, got %s", saved.Provider)
	}
	if saved.Password == nil || *saved.Password == "pw1" {
		t.Error("expected password to be stored hashed")
	}

	if resp.User.ID != 1 || resp.User.Username != "Ann" || resp.User.Purpose != "study" {
		t.Errorf("unexpected user projection: %+v", resp.User)
	}
	if resp.User.Email == nil || *resp.User.Email != "a@x.com" {
		t.Errorf("unexpected email in projection: %v", resp.User.Email)
	}

	for _, tokenString := range []string{resp.AccessToken, resp.RefreshToken} {
		id, err := issuer.Validate(tokenString)
		if err != nil {
			t.Fatalf("minted token failed validation: %v", err)
		}
		if id != 1 {
			t.Errorf("expected token subject 1, got %d", id)
		}
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		existsByEmailFn: func(email string) (bool, error) {
			return true, nil
		},
		saveFn: func(user *authdomain.User) error {
			t.Fatal("Save should not be called for a duplicate email")
			return nil
		},
	}
	uc := NewAuthUsecase(repo, testIssuer())

	_, err := uc.Signup(&authdto.SignUpRequest{Email: "a@x.com", Password: "pw1", Username: "Ann"})
	if !errors.Is(err, authdomain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

// A concurrent signup can slip past the advisory existence check; the
// store's unique constraint then reports the duplicate on Save, and the
// caller must see the same failure.
func TestSignup_DuplicateEmailOnSave(t *testing.T) {
	repo := &mockUserRepo{
		saveFn: func(user *authdomain.User) error {
			return authdomain.ErrDuplicateEmail
		},
	}
	uc := NewAuthUsecase(repo, testIssuer())

	_, err := uc.Signup(&authdto.SignUpRequest{Email: "a@x.com", Password: "pw1", Username: "Ann"})
	if !errors.Is(err, authdomain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSignin(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewAuthUsecase(repo, testIssuer())

	// Seed via Signup so the stored hash is real.
	repo.saveFn = func(user *authdomain.User) error {
		user.ID = 7
		repo.findByEmailFn = func(email string) (*authdomain.User, error) {
			if user.Email != nil && email == *user.Email {
				return user, nil
			}
			return nil, nil
		}
		return nil
	}
	if _, err := uc.Signup(&authdto.SignUpRequest{Email: "a@x.com", Password: "pw1", Username: "Ann"}); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	resp, err := uc.Signin(&authdto.SignInRequest{Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Signin returned error: %v", err)
	}
	if resp.User.ID != 7 {
		t.Errorf("expected user id 7, got %d", resp.User.ID)
	}

	_, err = uc.Signin(&authdto.SignInRequest{Email: "a@x.com", Password: "wrong"})
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignin_UserNotFound(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, testIssuer())

	_, err := uc.Signin(&authdto.SignInRequest{Email: "missing@x.com", Password: "pw"})
	if !errors.Is(err, authdomain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// A social account has no password hash; a local signin against it must
// fail cleanly with bad credentials.
func TestSignin_SocialAccountWithoutPassword(t *testing.T) {
	email := "social@x.com"
	subject := "google-sub-1"
	repo := &mockUserRepo{
		findByEmailFn: func(string) (*authdomain.User, error) {
			return &authdomain.User{
				ID:         3,
				Email:      &email,
				Provider:   authdomain.ProviderGoogle,
				ProviderID: &subject,
			}, nil
		},
	}
	uc := NewAuthUsecase(repo, testIssuer())

	_, err := uc.Signin(&authdto.SignInRequest{Email: email, Password: "anything"})
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// First call creates, second call fetches; both return the same user id.
func TestSocialLogin_CreateThenFetch(t *testing.T) {
	users := map[string]*authdomain.User{}
	repo := &mockUserRepo{
		findByProviderAndSubjectFn: func(provider authdomain.AuthProvider, subject string) (*authdomain.User, error) {
			return users[string(provider)+"/"+subject], nil
		},
		saveFn: func(user *authdomain.User) error {
			user.ID = uint(len(users) + 1)
			users[string(user.Provider)+"/"+*user.ProviderID] = user
			return nil
		},
	}
	uc := NewAuthUsecase(repo, testIssuer())

	req := &authdto.SocialLoginRequest{Token: "kakao-sub-9", Provider: authdomain.ProviderKakao}

	first, err := uc.SocialLogin(req)
	if err != nil {
		t.Fatalf("first SocialLogin returned error: %v", err)
	}
	second, err := uc.SocialLogin(req)
	if err != nil {
		t.Fatalf("second SocialLogin returned error: %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Errorf("expected stable user id, got %d then %d", first.User.ID, second.User.ID)
	}
	if first.User.AuthProvider != authdomain.ProviderKakao {
		t.Errorf("expected KAKAO provider, got %s", first.User.AuthProvider)
	}
	if len(users) != 1 {
		t.Errorf("expected exactly one user created, got %d", len(users))
	}
}

func TestUpdateSocialLogin_UserNotFound(t *testing.T) {
	repo := &mockUserRepo{
		saveFn: func(user *authdomain.User) error {
			t.Fatal("UpdateSocialLogin must not create users")
			return nil
		},
	}
	uc := NewAuthUsecase(repo, testIssuer())

	_, err := uc.UpdateSocialLogin(&authdto.SocialLoginRequest{Token: "unknown", Provider: authdomain.ProviderApple})
	if !errors.Is(err, authdomain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateSocialLogin(t *testing.T) {
	subject := "apple-sub-5"
	stored := &authdomain.User{ID: 11, Provider: authdomain.ProviderApple, ProviderID: &subject}
	repo := &mockUserRepo{
		findByProviderAndSubjectFn: func(provider authdomain.AuthProvider, sub string) (*authdomain.User, error) {
			if provider == authdomain.ProviderApple && sub == subject {
				return stored, nil
			}
			return nil, nil
		},
	}
	issuer := testIssuer()
	uc := NewAuthUsecase(repo, issuer)

	resp, err := uc.UpdateSocialLogin(&authdto.SocialLoginRequest{Token: subject, Provider: authdomain.ProviderApple})
	if err != nil {
		t.Fatalf("UpdateSocialLogin returned error: %v", err)
	}

	id, err := issuer.Validate(resp.AccessToken)
	if err != nil {
		t.Fatalf("minted token failed validation: %v", err)
	}
	if id != stored.ID {
		t.Errorf("expected token subject %d, got %d", stored.ID, id)
	}
}
