package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fintrack-backend/internal/auth/domain"
	"fintrack-backend/internal/auth/dto"
	"fintrack-backend/internal/auth/repository"
	"fintrack-backend/pkg/config"
	"fintrack-backend/pkg/mailer"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo repository.UserRepository
	mail     mailer.Sender
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, mail mailer.Sender, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		mail:     mail,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (string, *domain.User, error) {
	if req.Password != req.ConfirmPassword {
		return "", nil, ErrPasswordMismatch
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := u.signSessionToken(user)
	if err != nil {
		return "", nil, err
	}

	plain, hash, err := newOpaqueToken()
	if err != nil {
		return "", nil, err
	}
	if err := u.userRepo.SetVerificationToken(user.ID, hash, time.Now().Add(u.config.VerifyTokenTTL)); err != nil {
		return "", nil, err
	}

	verificationURL := fmt.Sprintf("%s/api/auth/email-verification/%s", u.config.BaseURL, plain)
	message := fmt.Sprintf("You are receiving this email because you (or someone else) has requested email verification.\n\nPlease make a PUT request to:\n\n%s", verificationURL)

	if err := u.mail.Send(user.Email, "Email Verification", message); err != nil {
		// Roll back so the user is not left with a dangling unusable token.
		_ = u.userRepo.ClearVerificationToken(user.ID)
		return "", nil, ErrMailDelivery
	}

	return token, user, nil
}

func (u *authUsecase) VerifyEmail(plainToken string) error {
	user, err := u.userRepo.ConsumeVerificationToken(hashToken(plainToken), time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}
	return nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (string, *domain.User, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.signSessionToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *authUsecase) Me(userID string) (*domain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateDetails(userID string, req *dto.UpdateDetailsRequest) (*domain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) UpdatePassword(userID string, req *dto.UpdatePasswordRequest) (string, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return "", ErrWrongPassword
	}

	hashedPassword, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return "", err
	}
	if err := u.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return "", err
	}

	return u.signSessionToken(user)
}

func (u *authUsecase) ForgotPassword(email string) error {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	plain, hash, err := newOpaqueToken()
	if err != nil {
		return err
	}
	if err := u.userRepo.SetResetToken(user.ID, hash, time.Now().Add(u.config.ResetTokenTTL)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/api/auth/reset-password/%s", u.config.BaseURL, plain)
	message := fmt.Sprintf("You are receiving this email because you (or someone else) has requested the reset of a password.\n\nPlease make a PUT request to:\n\n%s", resetURL)

	if err := u.mail.Send(user.Email, "Password Reset", message); err != nil {
		_ = u.userRepo.ClearResetToken(user.ID)
		return ErrMailDelivery
	}
	return nil
}

func (u *authUsecase) ResetPassword(plainToken, newPassword string) (string, error) {
	hashedPassword, err := repository.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	user, err := u.userRepo.ConsumeResetToken(hashToken(plainToken), time.Now(), hashedPassword)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidToken
	}

	return u.signSessionToken(user)
}

func (u *authUsecase) ValidateToken(tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("invalid token subject")
	}

	user, err := u.userRepo.FindByID(sub)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// signSessionToken issues the HS256 bearer credential embedding the user's
// id and display name.
func (u *authUsecase) signSessionToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(u.config.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
