package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/matjip-backend/internal/app/service"
	apperrors "github.com/ikkim/matjip-backend/internal/errors"
	"github.com/ikkim/matjip-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type OAuthLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

// Register handles user registration
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	// 누락된 필수 항목을 필드별로 안내
	missing := map[string]string{}
	if req.Username == "" {
		missing["username"] = "사용자명은 필수입니다"
	}
	if req.Email == "" {
		missing["email"] = "이메일은 필수입니다"
	}
	if req.Password == "" {
		missing["password"] = "비밀번호는 필수입니다"
	}
	if len(missing) > 0 {
		log.Warn("Registration missing required fields", map[string]interface{}{
			"missing_count": len(missing),
		})
		apperrors.RespondWithValidationError(c, missing)
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Username, req.Email, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "이미 사용 중인 이메일입니다")
			return
		}
		if errors.Is(err, service.ErrUsernameAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthUsernameExists, "이미 사용 중인 사용자명입니다")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "User registered successfully",
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Login handles username/password login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "사용자명과 비밀번호를 입력해주세요")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "사용자명 또는 비밀번호가 올바르지 않습니다")
			return
		}
		if errors.Is(err, service.ErrAccountInactive) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthAccountInactive, "비활성화된 계정입니다")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"username": req.Username,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful",
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Logout records the logout time. Issued tokens stay valid until expiry.
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := ctrl.authService.Logout(userID); err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// OAuthLogin handles social login with a provider-issued token
// POST /api/v1/auth/oauth/:provider
func (ctrl *AuthController) OAuthLogin(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	provider := c.Param("provider")

	var req OAuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "토큰이 필요합니다")
		return
	}

	user, tokens, err := ctrl.authService.OAuthLogin(c.Request.Context(), provider, req.Token)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProvider) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "지원하지 않는 로그인 제공자입니다")
			return
		}
		if errors.Is(err, service.ErrAccountInactive) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthAccountInactive, "비활성화된 계정입니다")
			return
		}
		log.Warn("OAuth login failed", map[string]interface{}{
			"provider": provider,
			"error":    err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthOAuthFailed, "소셜 로그인에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login successful",
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Me returns the authenticated user's information
// GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsers returns all users (admin only)
// GET /api/v1/users
func (ctrl *AuthController) ListUsers(c *gin.Context) {
	users, err := ctrl.authService.ListUsers()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// GetUser returns a single user by ID (admin only)
// GET /api/v1/users/:id
func (ctrl *AuthController) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 사용자 ID입니다")
		return
	}

	user, err := ctrl.authService.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser updates a user's profile fields (admin only)
// PUT /api/v1/users/:id
func (ctrl *AuthController) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 사용자 ID입니다")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, err := ctrl.authService.UpdateUser(uint(id), req.Email, req.Phone, req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser removes a user and all dependent rows (admin only)
// DELETE /api/v1/users/:id
func (ctrl *AuthController) DeleteUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 사용자 ID입니다")
		return
	}

	if err := ctrl.authService.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
