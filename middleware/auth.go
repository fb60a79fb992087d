package middleware

import (
	"net/http"
	"strings"

	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Gin context keys set by JWTAuthMiddleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Cookies the auth service may set instead of an Authorization header.
var sessionCookies = []string{"session_id", "auth_token"}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	for _, name := range sessionCookies {
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	return ""
}

// JWTAuthMiddleware verifies the access token and stores the caller's id and role.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
			return
		}

		claims, err := utils.ParseClaims(tokenString)
		if err != nil {
			utils.GetLogger().Debug("Token rejected", zap.Error(err), zap.String("ip", getClientIP(c)))
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, models.ParseRole(claims.Role))
		c.Next()
	}
}

// CallerFromContext returns the identity stored by JWTAuthMiddleware.
func CallerFromContext(c *gin.Context) (models.Caller, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return models.Caller{}, false
	}
	role, _ := c.Get(ContextRole)
	r, ok := role.(models.Role)
	if !ok {
		r = models.RoleUser
	}
	return models.Caller{UserID: userID, Role: r}, true
}

// RequireRoles rejects callers whose role is not listed. Admins always pass.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
			return
		}
		if caller.IsAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "access denied", "")
	}
}
