package service

import (
	"context"
	"errors"
	"time"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"github.com/ikkim/matjip-backend/pkg/oauth"
	"github.com/ikkim/matjip-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUserNotFound          = errors.New("user not found")
	ErrAccountInactive       = errors.New("account is inactive")
	ErrUnknownProvider       = errors.New("unknown oauth provider")
)

type AuthService interface {
	Register(username, email, password, phone string) (*model.User, *util.TokenPair, error)
	Login(username, password string) (*model.User, *util.TokenPair, error)
	Logout(userID uint) error
	OAuthLogin(ctx context.Context, provider, token string) (*model.User, *util.TokenPair, error)
	GetUserByID(id uint) (*model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUser(id uint, email, phone string, isActive *bool) (*model.User, error)
	DeleteUser(id uint) error
}

type authService struct {
	userRepo      repository.UserRepository
	verifiers     map[string]oauth.Verifier
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	verifiers map[string]oauth.Verifier,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		verifiers:     verifiers,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(username, email, password, phone string) (*model.User, *util.TokenPair, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"username": username,
		"email":    email,
	})

	// 이메일/사용자명 중복 확인
	existingUser, err := s.userRepo.FindByEmailOrUsername(email, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}
	if existingUser != nil {
		if existingUser.Email == email {
			logger.Warn("Registration failed: email already exists", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrEmailAlreadyExists
		}
		logger.Warn("Registration failed: username already exists", map[string]interface{}{
			"username": username,
		})
		return nil, nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        phone,
		Role:         model.RoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	tokenPair, err := util.GenerateTokenPair(
		user.ID, user.Username, string(user.Role),
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate token pair", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, tokenPair, nil
}

func (s *authService) Login(username, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Attempting user login", map[string]interface{}{
		"username": username,
	})

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"username": username,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"username": username,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Warn("Login failed: inactive account", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, ErrAccountInactive
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, nil, err
	}

	tokenPair, err := util.GenerateTokenPair(
		user.ID, user.Username, string(user.Role),
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate token pair", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, tokenPair, nil
}

// Logout 마지막 로그아웃 시각만 기록한다. 발급된 토큰은
// 만료 시까지 유효하다 (토큰 폐기 목록 없음)
func (s *authService) Logout(userID uint) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	now := time.Now()
	user.LastLogout = &now
	return s.userRepo.Update(user)
}

// OAuthLogin 외부 제공자 토큰 검증 후 로그인. 이메일로 기존 계정을
// 찾고 없으면 자동 가입한다
func (s *authService) OAuthLogin(ctx context.Context, provider, token string) (*model.User, *util.TokenPair, error) {
	verifier, ok := s.verifiers[provider]
	if !ok {
		return nil, nil, ErrUnknownProvider
	}

	identity, err := verifier.Verify(ctx, token)
	if err != nil {
		logger.Warn("OAuth token verification failed", map[string]interface{}{
			"provider": provider,
		})
		return nil, nil, err
	}

	user, err := s.userRepo.FindByEmail(identity.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.provisionOAuthUser(identity)
		if err != nil {
			return nil, nil, err
		}
	} else if err != nil {
		return nil, nil, err
	}

	if !user.IsActive {
		logger.Warn("OAuth login failed: inactive account", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, ErrAccountInactive
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, nil, err
	}

	tokenPair, err := util.GenerateTokenPair(
		user.ID, user.Username, string(user.Role),
		s.jwtSecret, s.accessExpiry, s.refreshExpiry,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("OAuth login successful", map[string]interface{}{
		"user_id":  user.ID,
		"provider": provider,
	})
	return user, tokenPair, nil
}

// provisionOAuthUser 소셜 로그인 첫 방문 사용자를 자동 가입시킨다.
// 비밀번호는 임의 문자열의 해시로 채워 일반 로그인은 막힌다
func (s *authService) provisionOAuthUser(identity *oauth.Identity) (*model.User, error) {
	placeholder, err := util.RandomString(32)
	if err != nil {
		return nil, err
	}
	hashedPassword, err := util.HashPassword(placeholder)
	if err != nil {
		return nil, err
	}

	username := identity.Name
	if username == "" {
		username = identity.Email
	}

	user := &model.User{
		Username:     username,
		Email:        identity.Email,
		PasswordHash: hashedPassword,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("OAuth user auto-provisioned", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ListUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *authService) UpdateUser(id uint, email, phone string, isActive *bool) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if email != "" {
		user.Email = email
	}
	if phone != "" {
		user.Phone = phone
	}
	if isActive != nil {
		user.IsActive = *isActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User updated successfully", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

func (s *authService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("User deleted successfully", map[string]interface{}{
		"user_id": id,
	})
	return nil
}
