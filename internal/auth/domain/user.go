package domain

import "time"

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
	ProviderKakao  AuthProvider = "KAKAO"
	ProviderApple  AuthProvider = "APPLE"
)

// User is the identity record. A LOCAL user has an email and a bcrypt
// password hash; a social user has a provider + provider subject and may
// have no email at all. Email and ProviderID are pointers so absent values
// stay NULL and don't collide under the unique indexes.
type User struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Email      *string      `gorm:"uniqueIndex;size:191" json:"email"`
	Password   *string      `gorm:"size:191" json:"-"` // bcrypt hash, never serialized
	Username   string       `gorm:"size:64" json:"username"`
	Purpose    string       `gorm:"size:191" json:"purpose"`
	Provider   AuthProvider `gorm:"type:varchar(16);not null;uniqueIndex:idx_provider_subject" json:"provider"`
	ProviderID *string      `gorm:"size:191;uniqueIndex:idx_provider_subject" json:"-"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
