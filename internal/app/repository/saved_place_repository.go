package repository

import (
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type SavedPlaceRepository interface {
	Create(savedPlace *model.SavedPlace) error
	FindByUserAndRestaurant(userID, restaurantID uint) (*model.SavedPlace, error)
	FindByUserID(userID uint) ([]model.SavedPlace, error)
	Delete(userID, restaurantID uint) (int64, error)
}

type savedPlaceRepository struct {
	db *gorm.DB
}

func NewSavedPlaceRepository(db *gorm.DB) SavedPlaceRepository {
	return &savedPlaceRepository{db: db}
}

func (r *savedPlaceRepository) Create(savedPlace *model.SavedPlace) error {
	logger.Debug("Creating saved place in database", map[string]interface{}{
		"user_id":       savedPlace.UserID,
		"restaurant_id": savedPlace.RestaurantID,
	})

	if err := r.db.Create(savedPlace).Error; err != nil {
		logger.Error("Failed to create saved place in database", err, map[string]interface{}{
			"user_id":       savedPlace.UserID,
			"restaurant_id": savedPlace.RestaurantID,
		})
		return err
	}
	return nil
}

func (r *savedPlaceRepository) FindByUserAndRestaurant(userID, restaurantID uint) (*model.SavedPlace, error) {
	var savedPlace model.SavedPlace
	err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&savedPlace).Error
	if err != nil {
		return nil, err
	}
	return &savedPlace, nil
}

func (r *savedPlaceRepository) FindByUserID(userID uint) ([]model.SavedPlace, error) {
	var savedPlaces []model.SavedPlace
	err := r.db.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&savedPlaces).Error
	if err != nil {
		logger.Error("Failed to find saved places by user in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return savedPlaces, nil
}

// Delete 삭제된 행 수를 반환한다. 0이면 저장된 적 없는 식당
func (r *savedPlaceRepository) Delete(userID, restaurantID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.SavedPlace{})
	if result.Error != nil {
		logger.Error("Failed to delete saved place from database", result.Error, map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
