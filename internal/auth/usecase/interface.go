package usecase

import (
	"fintrack-backend/internal/auth/domain"
	"fintrack-backend/internal/auth/dto"
)

// AuthUsecase owns the credential and token lifecycle: password hashing,
// session-token issuance and the single-use verification/reset token flows.
type AuthUsecase interface {
	Register(req *dto.RegisterRequest) (token string, user *domain.User, err error)
	VerifyEmail(plainToken string) error
	Login(req *dto.LoginRequest) (token string, user *domain.User, err error)
	Me(userID string) (*domain.User, error)
	UpdateDetails(userID string, req *dto.UpdateDetailsRequest) (*domain.User, error)
	UpdatePassword(userID string, req *dto.UpdatePasswordRequest) (token string, err error)
	ForgotPassword(email string) error
	ResetPassword(plainToken, newPassword string) (token string, err error)
	ValidateToken(tokenString string) (*domain.User, error)
}
