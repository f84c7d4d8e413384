package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by the auth middleware
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// bearerClaims extracts and verifies the session token from the
// Authorization header. On failure it returns nil claims and the message to
// send with the 401.
func bearerClaims(c *gin.Context, tokens *utils.JWTManager) (*utils.Claims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "Authorization header required"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Invalid authorization format. Use: Bearer <token>"
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		return nil, "Invalid or expired token"
	}
	return claims, ""
}

// AuthMiddleware validates the session token and attaches the caller's
// identity to the request context. The role is read from the token claim,
// not re-fetched per call, so a role change is not visible until re-login.
func AuthMiddleware(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, msg := bearerClaims(c, tokens)
		if claims == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		c.Next()
	}
}

// RequireRoles checks the authenticated caller's role against an allow-list
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleKey)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "You do not have permission to access this resource")
		c.Abort()
	}
}

// AdminOrBootstrap admits either an authenticated Admin or a caller holding
// the configured bootstrap key. The bootstrap path exists so the first
// hospital can be created before any admin account does.
func AdminOrBootstrap(tokens *utils.JWTManager, bootstrapKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Bootstrap-Key"); bootstrapKey != "" && key != "" &&
			subtle.ConstantTimeCompare([]byte(key), []byte(bootstrapKey)) == 1 {
			c.Next()
			return
		}

		claims, msg := bearerClaims(c, tokens)
		if claims == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}
		if claims.Role != models.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		c.Next()
	}
}
