package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fintrack-backend/internal/auth/domain"
)

// UserRepository defines data access for identity records, including the
// atomic consumption of single-use verification/reset tokens.
type UserRepository interface {
	Create(user *domain.User) error
	FindByEmail(email string) (*domain.User, error)
	FindByID(id string) (*domain.User, error)
	Update(user *domain.User) error
	UpdatePassword(userID, passwordHash string) error

	SetVerificationToken(userID, tokenHash string, expire time.Time) error
	ClearVerificationToken(userID string) error
	// ConsumeVerificationToken marks the matching user verified and clears the
	// token fields in one conditional update. Returns (nil, nil) when no user
	// holds an unexpired token with the given hash, or when a concurrent
	// request consumed it first.
	ConsumeVerificationToken(tokenHash string, now time.Time) (*domain.User, error)

	SetResetToken(userID, tokenHash string, expire time.Time) error
	ClearResetToken(userID string) error
	// ConsumeResetToken sets the new password hash and clears the reset token
	// fields in one conditional update. Same (nil, nil) contract as above.
	ConsumeResetToken(tokenHash string, now time.Time, passwordHash string) (*domain.User, error)
}

// userRepository implements UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *userRepository) UpdatePassword(userID, passwordHash string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password":   passwordHash,
			"updated_at": time.Now(),
		}).Error
}

func (r *userRepository) SetVerificationToken(userID, tokenHash string, expire time.Time) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"verification_token":        tokenHash,
			"verification_token_expire": expire,
			"updated_at":                time.Now(),
		}).Error
}

func (r *userRepository) ClearVerificationToken(userID string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"verification_token":        nil,
			"verification_token_expire": nil,
			"updated_at":                time.Now(),
		}).Error
}

func (r *userRepository) ConsumeVerificationToken(tokenHash string, now time.Time) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("verification_token = ? AND verification_token_expire > ?", tokenHash, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Conditional update: only one of two racing requests can win.
	res := r.db.Model(&domain.User{}).
		Where("id = ? AND verification_token = ? AND verification_token_expire > ?", user.ID, tokenHash, now).
		Updates(map[string]interface{}{
			"verified_at":               now,
			"verification_token":        nil,
			"verification_token_expire": nil,
			"updated_at":                now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	user.VerifiedAt = &now
	user.VerificationToken = nil
	user.VerificationTokenExpire = nil
	return &user, nil
}

func (r *userRepository) SetResetToken(userID, tokenHash string, expire time.Time) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_password_token":  tokenHash,
			"reset_password_expire": expire,
			"updated_at":            time.Now(),
		}).Error
}

func (r *userRepository) ClearResetToken(userID string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_password_token":  nil,
			"reset_password_expire": nil,
			"updated_at":            time.Now(),
		}).Error
}

func (r *userRepository) ConsumeResetToken(tokenHash string, now time.Time, passwordHash string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("reset_password_token = ? AND reset_password_expire > ?", tokenHash, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	res := r.db.Model(&domain.User{}).
		Where("id = ? AND reset_password_token = ? AND reset_password_expire > ?", user.ID, tokenHash, now).
		Updates(map[string]interface{}{
			"password":              passwordHash,
			"reset_password_token":  nil,
			"reset_password_expire": nil,
			"updated_at":            now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	user.Password = passwordHash
	user.ResetPasswordToken = nil
	user.ResetPasswordExpire = nil
	return &user, nil
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
