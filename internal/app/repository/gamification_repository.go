package repository

import (
	"errors"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type GamificationRepository interface {
	FindByUserID(userID uint) (*model.Gamification, error)
	AddPoints(userID uint, points int) error
}

type gamificationRepository struct {
	db *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) FindByUserID(userID uint) (*model.Gamification, error) {
	var gamification model.Gamification
	err := r.db.Where("user_id = ?", userID).First(&gamification).Error
	if err != nil {
		return nil, err
	}
	return &gamification, nil
}

// AddPoints 사용자 레코드가 없으면 만들고 포인트를 더한다
func (r *gamificationRepository) AddPoints(userID uint, points int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var gamification model.Gamification
		err := tx.Where("user_id = ?", userID).First(&gamification).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			gamification = model.Gamification{UserID: userID, Points: points}
			if err := tx.Create(&gamification).Error; err != nil {
				logger.Error("Failed to create gamification record in database", err, map[string]interface{}{
					"user_id": userID,
				})
				return err
			}
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Model(&gamification).
			UpdateColumn("points", gorm.Expr("points + ?", points)).Error
	})
}
