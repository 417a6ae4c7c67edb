package repository

import (
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByEmailOrUsername(email, username string) (*model.User, error)
	FindAll() ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"username": user.Username,
			"email":    user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		logger.Error("Failed to find user by ID in database", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailOrUsername 가입 시 중복 검사용 조회
func (r *userRepository) FindByEmailOrUsername(email, username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ? OR username = ?", email, username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		logger.Error("Failed to list users from database", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

// Delete 사용자와 하위 레코드(리뷰, 알림, 저장한 식당, 포인트)를
// 하나의 트랜잭션에서 함께 삭제한다. 고아 레코드 방지
func (r *userRepository) Delete(id uint) error {
	logger.Debug("Deleting user from database", map[string]interface{}{
		"user_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var feedbackIDs []uint
		if err := tx.Model(&model.Feedback{}).Where("user_id = ?", id).Pluck("id", &feedbackIDs).Error; err != nil {
			return err
		}

		if len(feedbackIDs) > 0 {
			if err := tx.Where("feedback_id IN ?", feedbackIDs).Delete(&model.Reply{}).Error; err != nil {
				return err
			}
			if err := tx.Where("feedback_id IN ?", feedbackIDs).Delete(&model.Media{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM feedback_tags WHERE feedback_id IN ?", feedbackIDs).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.SavedPlace{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Gamification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.User{}, id).Error
	})
	if err != nil {
		logger.Error("Failed to delete user from database", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}

	logger.Debug("User deleted from database", map[string]interface{}{
		"user_id": id,
	})
	return nil
}
