package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-backend/internal/auth/domain"
	"fintrack-backend/internal/auth/dto"
	"fintrack-backend/internal/auth/usecase"
	"fintrack-backend/pkg/config"
)

// mockAuthUsecase implements usecase.AuthUsecase; each method field can be
// overridden per test case.
type mockAuthUsecase struct {
	registerFn       func(req *dto.RegisterRequest) (string, *domain.User, error)
	verifyEmailFn    func(plainToken string) error
	loginFn          func(req *dto.LoginRequest) (string, *domain.User, error)
	meFn             func(userID string) (*domain.User, error)
	updateDetailsFn  func(userID string, req *dto.UpdateDetailsRequest) (*domain.User, error)
	updatePasswordFn func(userID string, req *dto.UpdatePasswordRequest) (string, error)
	forgotPasswordFn func(email string) error
	resetPasswordFn  func(plainToken, newPassword string) (string, error)
	validateTokenFn  func(tokenString string) (*domain.User, error)
}

func (m *mockAuthUsecase) Register(req *dto.RegisterRequest) (string, *domain.User, error) {
	return m.registerFn(req)
}

func (m *mockAuthUsecase) VerifyEmail(plainToken string) error {
	return m.verifyEmailFn(plainToken)
}

func (m *mockAuthUsecase) Login(req *dto.LoginRequest) (string, *domain.User, error) {
	return m.loginFn(req)
}

func (m *mockAuthUsecase) Me(userID string) (*domain.User, error) {
	return m.meFn(userID)
}

func (m *mockAuthUsecase) UpdateDetails(userID string, req *dto.UpdateDetailsRequest) (*domain.User, error) {
	return m.updateDetailsFn(userID, req)
}

func (m *mockAuthUsecase) UpdatePassword(userID string, req *dto.UpdatePasswordRequest) (string, error) {
	return m.updatePasswordFn(userID, req)
}

func (m *mockAuthUsecase) ForgotPassword(email string) error {
	return m.forgotPasswordFn(email)
}

func (m *mockAuthUsecase) ResetPassword(plainToken, newPassword string) (string, error) {
	return m.resetPasswordFn(plainToken, newPassword)
}

func (m *mockAuthUsecase) ValidateToken(tokenString string) (*domain.User, error) {
	return m.validateTokenFn(tokenString)
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:    "development",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func newRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(uc, testConfig())

	auth := r.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/logout", h.Logout)
	auth.GET("/me", AuthMiddleware(uc), h.Me)
	auth.PUT("/email-verification/:verifiedToken", h.VerifyEmail)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestRegister_PasswordMismatchReturns400(t *testing.T) {
	uc := &mockAuthUsecase{
		registerFn: func(req *dto.RegisterRequest) (string, *domain.User, error) {
			return "", nil, usecase.ErrPasswordMismatch
		},
	}
	r := newRouter(uc)

	body := `{"name":"John","email":"john@example.com","password":"secret123","confirm_password":"other"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	e := decode(t, w)
	assert.False(t, e.Success)
	assert.NotEmpty(t, e.Error)
}

func TestRegister_SuccessReturns201WithTokenAndCookie(t *testing.T) {
	uc := &mockAuthUsecase{
		registerFn: func(req *dto.RegisterRequest) (string, *domain.User, error) {
			return "signed.jwt.token", &domain.User{ID: "user-1"}, nil
		},
	}
	r := newRouter(uc)

	body := `{"name":"John","email":"john@example.com","password":"secret123","confirm_password":"secret123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	e := decode(t, w)
	assert.True(t, e.Success)
	assert.Equal(t, "signed.jwt.token", e.Token)

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "token=signed.jwt.token")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestRegister_InvalidBodyReturns400(t *testing.T) {
	uc := &mockAuthUsecase{}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	uc := &mockAuthUsecase{
		loginFn: func(req *dto.LoginRequest) (string, *domain.User, error) {
			return "signed.jwt.token", &domain.User{ID: "user-1"}, nil
		},
	}
	r := newRouter(uc)

	body := `{"email":"john@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "token=signed.jwt.token")
}

func TestLogin_InvalidCredentialsReturns401(t *testing.T) {
	uc := &mockAuthUsecase{
		loginFn: func(req *dto.LoginRequest) (string, *domain.User, error) {
			return "", nil, usecase.ErrInvalidCredentials
		},
	}
	r := newRouter(uc)

	body := `{"email":"john@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestVerifyEmail_TamperedTokenReturns400(t *testing.T) {
	uc := &mockAuthUsecase{
		verifyEmailFn: func(plainToken string) error {
			return usecase.ErrInvalidToken
		},
	}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/auth/email-verification/tampered", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w).Error)
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := newRouter(&mockAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "token=none")
}

func TestAuthMiddleware(t *testing.T) {
	uc := &mockAuthUsecase{
		meFn: func(userID string) (*domain.User, error) {
			return &domain.User{ID: userID}, nil
		},
		validateTokenFn: func(tokenString string) (*domain.User, error) {
			if tokenString == "valid-token" {
				return &domain.User{ID: "user-1"}, nil
			}
			return nil, usecase.ErrInvalidToken
		},
	}
	r := newRouter(uc)

	t.Run("missing credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "valid-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer header accepted", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cookie accepted", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "valid-token"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
