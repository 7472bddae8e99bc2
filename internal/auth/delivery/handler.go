package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack-backend/internal/auth/dto"
	"fintrack-backend/internal/auth/usecase"
	"fintrack-backend/pkg/config"
	"fintrack-backend/pkg/response"
)

// AuthHandler exposes the credential lifecycle over HTTP.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// Register creates a new user, issues a verification mail and returns the
// session token.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, _, err := h.authUsecase.Register(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusCreated, token)
}

// VerifyEmail consumes a verification token.
// PUT /api/auth/email-verification/:verifiedToken
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.authUsecase.VerifyEmail(c.Param("verifiedToken")); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Email verified successfully")
}

// Login authenticates a user and issues the session token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, _, err := h.authUsecase.Login(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusOK, token)
}

// Logout clears the session cookie.
// GET /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(cookieName, "none", 10, "/", "", h.config.IsProduction(), true)
	response.OK(c, http.StatusOK, gin.H{})
}

// Me returns the authenticated user.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.Me(c.GetString("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, user)
}

// UpdateDetails updates name and email of the authenticated user.
// PUT /api/auth/update-details
func (h *AuthHandler) UpdateDetails(c *gin.Context) {
	var req dto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authUsecase.UpdateDetails(c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, http.StatusOK, user)
}

// UpdatePassword changes the password after checking the current one and
// re-issues the session token.
// POST /api/auth/update-password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authUsecase.UpdatePassword(c.GetString("userID"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusOK, token)
}

// ForgotPassword issues a reset token and mails the reset link.
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authUsecase.ForgotPassword(req.Email); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Email sent")
}

// ResetPassword consumes a reset token, sets the new password and re-issues
// the session token.
// PUT /api/auth/reset-password/:resetToken
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authUsecase.ResetPassword(c.Param("resetToken"), req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.sendTokenResponse(c, http.StatusOK, token)
}

// sendTokenResponse sets the session cookie and writes the token envelope.
func (h *AuthHandler) sendTokenResponse(c *gin.Context, status int, token string) {
	maxAge := int(h.config.JWTExpiry.Seconds())
	c.SetCookie(cookieName, token, maxAge, "/", "", h.config.IsProduction(), true)
	response.Token(c, status, token)
}

// respondError maps usecase errors onto HTTP statuses and the uniform error
// envelope.
func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPasswordMismatch):
		response.Error(c, http.StatusBadRequest, "Password does not match with confirmation")
	case errors.Is(err, usecase.ErrInvalidToken):
		response.Error(c, http.StatusBadRequest, "Invalid token")
	case errors.Is(err, usecase.ErrEmailTaken):
		response.Error(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, usecase.ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, "Password is incorrect")
	case errors.Is(err, usecase.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "There is no user with that email")
	case errors.Is(err, usecase.ErrMailDelivery):
		response.Error(c, http.StatusInternalServerError, "Email could not be sent")
	default:
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}
