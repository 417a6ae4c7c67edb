package service

import (
	"context"
	"testing"
	"time"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/ikkim/matjip-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func setupAuthServiceTest(t *testing.T) (*gorm.DB, AuthService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(
		userRepo,
		nil,
		testJWTSecret,
		15*time.Minute,
		7*24*time.Hour,
	)
	return testDB, authService
}

func TestAuthService_Register(t *testing.T) {
	_, authService := setupAuthServiceTest(t)

	user, tokens, err := authService.Register("foodie", "foodie@example.com", "password123", "010-1234-5678")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, tokens)

	assert.Equal(t, "foodie", user.Username)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, tokens.AccessToken)

	// 비밀번호는 해시로만 저장된다
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, util.VerifyPassword(user.PasswordHash, "password123"))
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	testDB, authService := setupAuthServiceTest(t)

	_, _, err := authService.Register("foodie", "foodie@example.com", "password123", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{
			name:     "Duplicate email",
			username: "other",
			email:    "foodie@example.com",
			wantErr:  ErrEmailAlreadyExists,
		},
		{
			name:     "Duplicate username",
			username: "foodie",
			email:    "other@example.com",
			wantErr:  ErrUsernameAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Register(tt.username, tt.email, "password123", "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
			assert.Nil(t, tokens)
		})
	}

	// 실패한 등록은 행을 만들지 않는다
	var count int64
	testDB.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Login(t *testing.T) {
	_, authService := setupAuthServiceTest(t)

	registered, _, err := authService.Register("foodie", "foodie@example.com", "password123", "")
	require.NoError(t, err)
	require.Nil(t, registered.LastLogin)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			username: "foodie",
			password: "password123",
		},
		{
			name:     "Wrong password",
			username: "foodie",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown username",
			username: "nobody",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, tokens)
			assert.NotNil(t, user.LastLogin)

			claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, "foodie", claims.Username)
		})
	}
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	testDB, authService := setupAuthServiceTest(t)

	user, _, err := authService.Register("foodie", "foodie@example.com", "password123", "")
	require.NoError(t, err)

	require.NoError(t, testDB.Model(user).Update("is_active", false).Error)

	_, _, err = authService.Login("foodie", "password123")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestAuthService_Logout(t *testing.T) {
	_, authService := setupAuthServiceTest(t)

	user, _, err := authService.Register("foodie", "foodie@example.com", "password123", "")
	require.NoError(t, err)
	require.Nil(t, user.LastLogout)

	require.NoError(t, authService.Logout(user.ID))

	updated, err := authService.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.LastLogout)

	// 존재하지 않는 사용자
	assert.ErrorIs(t, authService.Logout(9999), ErrUserNotFound)
}

func TestAuthService_OAuthLoginUnknownProvider(t *testing.T) {
	_, authService := setupAuthServiceTest(t)

	_, _, err := authService.OAuthLogin(context.Background(), "naver", "some-token")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestAuthService_DeleteUser(t *testing.T) {
	testDB, authService := setupAuthServiceTest(t)

	user, _, err := authService.Register("foodie", "foodie@example.com", "password123", "")
	require.NoError(t, err)

	require.NoError(t, authService.DeleteUser(user.ID))

	var count int64
	testDB.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, authService.DeleteUser(user.ID), ErrUserNotFound)
}
