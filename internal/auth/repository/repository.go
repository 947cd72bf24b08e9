package repository

import authdomain "habitly-backend/internal/auth/domain"

// UserRepository defines the persistence operations consumed by the auth
// usecase. "Not found" is reported as a nil user with a nil error; the only
// real failures are storage errors and uniqueness violations.
type UserRepository interface {
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id uint) (*authdomain.User, error)
	FindByProviderAndSubject(provider authdomain.AuthProvider, subject string) (*authdomain.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *authdomain.User) error
}
