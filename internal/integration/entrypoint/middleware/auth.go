// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

const principalKey = "principal"

// AuthMiddleware rejects requests without a valid bearer access token.
type AuthMiddleware struct {
	sessions adapter.SessionService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(sessions adapter.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate stores the verified adapter.Principal on the gin context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, message := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, code, message)
			return
		}

		principal, err := m.sessions.VerifyAccess(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// bearerToken extracts the token or explains why the header is unusable.
func bearerToken(header string) (string, domainerror.AuthErrorCode, string) {
	if header == "" {
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func abortUnauthorized(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// PrincipalFromContext returns the identity set by Authenticate.
func PrincipalFromContext(c *gin.Context) (*adapter.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*adapter.Principal)
	return principal, ok && principal != nil
}

// GetUserIDFromContext is PrincipalFromContext narrowed to the user id.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return uuid.Nil, false
	}
	return principal.UserID, true
}
