package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend/internal/auth/usecase"
	"fintrack-backend/pkg/response"
)

// cookieName is the session cookie carrying the bearer token.
const cookieName = "token"

// AuthMiddleware resolves the caller from the Authorization header or the
// session cookie and stores the user in the Gin context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// bearerToken extracts the token from "Authorization: Bearer <t>" or, failing
// that, from the session cookie.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
