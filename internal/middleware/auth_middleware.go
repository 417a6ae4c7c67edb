package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/errors"
	"github.com/ikkim/matjip-backend/pkg/util"
)

// Context keys for user information
const (
	UserIDKey       = "user_id"
	UserUsernameKey = "user_username"
	UserRoleKey     = "user_role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates JWT token (required)
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "로그인이 필요합니다")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "인증 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			// 토큰 만료 에러인 경우 명확히 표시
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "로그인이 만료되었습니다")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "유효하지 않은 인증 토큰입니다")
			}
			c.Abort()
			return
		}

		// Set user information in context
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserUsernameKey, claims.Username)
		c.Set(UserRoleKey, model.UserRole(claims.Role))

		log.Debug("User authenticated successfully", map[string]interface{}{
			"user_id":  claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		})

		c.Next()
	}
}

// RequireRole checks that the authenticated user has one of the given roles
func (m *AuthMiddleware) RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(UserRoleKey)
		if !exists {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		role, ok := value.(model.UserRole)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		errors.RespondWithError(c, http.StatusForbidden, errors.AuthzAdminOnly, "접근 권한이 없습니다")
		c.Abort()
	}
}

// CurrentUserID returns the authenticated user's ID from the context
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentUserRole returns the authenticated user's role from the context
func CurrentUserRole(c *gin.Context) (model.UserRole, bool) {
	value, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(model.UserRole)
	return role, ok
}
