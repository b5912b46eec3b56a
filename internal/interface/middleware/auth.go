package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/recetario-api/pkg/helpers"
	"github.com/oksasatya/recetario-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// TokenVerifier is satisfied by helpers.JWTManager.
type TokenVerifier interface {
	Verify(token string) (*helpers.Claims, error)
}

// BearerAuth validates the "Authorization: Bearer <token>" header and sets
// userID and userEmail in the Gin context on success.
func BearerAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "authentication failed", nil)
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil || claims.UserID == "" {
			response.Error(c, http.StatusUnauthorized, "authentication failed", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// UserID returns the authenticated caller set by BearerAuth.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
