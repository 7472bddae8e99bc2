package domain

import "time"

// User is the identity record. The password is stored only as a bcrypt hash
// and token fields hold only SHA-256 digests of the plain tokens; none of
// them are ever serialized.
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`

	VerifiedAt              *time.Time `json:"verified_at,omitempty"`
	VerificationToken       *string    `json:"-" gorm:"index"`
	VerificationTokenExpire *time.Time `json:"-"`
	ResetPasswordToken      *string    `json:"-" gorm:"index"`
	ResetPasswordExpire     *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Verified reports whether the user completed email verification.
func (u *User) Verified() bool {
	return u.VerifiedAt != nil
}
