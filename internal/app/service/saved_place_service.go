package service

import (
	"errors"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrSavedPlaceNotFound = errors.New("saved place not found")

type SavedPlaceService interface {
	Save(userID, restaurantID uint) (bool, error)
	List(userID uint) ([]model.SavedPlace, error)
	Unsave(userID, restaurantID uint) error
}

type savedPlaceService struct {
	savedPlaceRepo repository.SavedPlaceRepository
	restaurantRepo repository.RestaurantRepository
}

func NewSavedPlaceService(
	savedPlaceRepo repository.SavedPlaceRepository,
	restaurantRepo repository.RestaurantRepository,
) SavedPlaceService {
	return &savedPlaceService{
		savedPlaceRepo: savedPlaceRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Save 식당 즐겨찾기. 이미 저장한 식당이면 에러 없이
// created=false로 응답하고 행은 하나만 유지된다
func (s *savedPlaceService) Save(userID, restaurantID uint) (bool, error) {
	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRestaurantNotFound
		}
		return false, err
	}

	_, err := s.savedPlaceRepo.FindByUserAndRestaurant(userID, restaurantID)
	if err == nil {
		logger.Debug("Restaurant already saved", map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	savedPlace := &model.SavedPlace{
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.savedPlaceRepo.Create(savedPlace); err != nil {
		return false, err
	}

	logger.Info("Restaurant saved", map[string]interface{}{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	})
	return true, nil
}

func (s *savedPlaceService) List(userID uint) ([]model.SavedPlace, error) {
	return s.savedPlaceRepo.FindByUserID(userID)
}

func (s *savedPlaceService) Unsave(userID, restaurantID uint) error {
	rowsAffected, err := s.savedPlaceRepo.Delete(userID, restaurantID)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSavedPlaceNotFound
	}

	logger.Info("Restaurant unsaved", map[string]interface{}{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	})
	return nil
}
