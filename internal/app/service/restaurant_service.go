package service

import (
	"errors"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrNotOwner           = errors.New("not the owner of this restaurant")
)

// RestaurantInput 식당 생성/수정 입력
type RestaurantInput struct {
	Name     string
	Location string
	Cuisine  string
	Contact  string
	Image    string
	Menu     string
	Hours    string
}

type RestaurantService interface {
	Create(ownerID uint, input RestaurantInput) (*model.Restaurant, error)
	GetAll() ([]model.Restaurant, error)
	GetByID(id uint) (*model.Restaurant, error)
	GetMine(ownerID uint) ([]model.Restaurant, error)
	Update(id, callerID uint, input RestaurantInput) (*model.Restaurant, error)
	Delete(id, callerID uint) error
	Search(filter repository.RestaurantFilter) ([]model.Restaurant, error)
	Claim(id, callerID uint) (*model.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepo: restaurantRepo}
}

func (s *restaurantService) Create(ownerID uint, input RestaurantInput) (*model.Restaurant, error) {
	logger.Info("Creating restaurant", map[string]interface{}{
		"owner_id": ownerID,
		"name":     input.Name,
	})

	restaurant := &model.Restaurant{
		Name:     input.Name,
		Location: input.Location,
		Cuisine:  input.Cuisine,
		Contact:  input.Contact,
		Image:    input.Image,
		Menu:     input.Menu,
		Hours:    input.Hours,
		OwnerID:  &ownerID,
		Status:   model.RestaurantStatusPending,
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant created successfully", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	return restaurant, nil
}

func (s *restaurantService) GetAll() ([]model.Restaurant, error) {
	return s.restaurantRepo.FindAll()
}

func (s *restaurantService) GetByID(id uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) GetMine(ownerID uint) ([]model.Restaurant, error) {
	return s.restaurantRepo.FindByOwnerID(ownerID)
}

func (s *restaurantService) Update(id, callerID uint, input RestaurantInput) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if restaurant.OwnerID == nil || *restaurant.OwnerID != callerID {
		logger.Warn("Restaurant update rejected: not owner", map[string]interface{}{
			"restaurant_id": id,
			"caller_id":     callerID,
		})
		return nil, ErrNotOwner
	}

	if input.Name != "" {
		restaurant.Name = input.Name
	}
	if input.Location != "" {
		restaurant.Location = input.Location
	}
	if input.Cuisine != "" {
		restaurant.Cuisine = input.Cuisine
	}
	if input.Contact != "" {
		restaurant.Contact = input.Contact
	}
	if input.Image != "" {
		restaurant.Image = input.Image
	}
	if input.Menu != "" {
		restaurant.Menu = input.Menu
	}
	if input.Hours != "" {
		restaurant.Hours = input.Hours
	}

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant updated successfully", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	return restaurant, nil
}

func (s *restaurantService) Delete(id, callerID uint) error {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}

	if restaurant.OwnerID == nil || *restaurant.OwnerID != callerID {
		logger.Warn("Restaurant delete rejected: not owner", map[string]interface{}{
			"restaurant_id": id,
			"caller_id":     callerID,
		})
		return ErrNotOwner
	}

	if err := s.restaurantRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Restaurant deleted successfully", map[string]interface{}{
		"restaurant_id": id,
	})
	return nil
}

func (s *restaurantService) Search(filter repository.RestaurantFilter) ([]model.Restaurant, error) {
	return s.restaurantRepo.Search(filter)
}

// Claim 인증된 사용자가 식당 소유권을 가져간다.
// TODO: 이미 소유자가 있는 식당의 재할당 정책 결정 필요 (현재는 무조건 덮어씀)
func (s *restaurantService) Claim(id, callerID uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	restaurant.OwnerID = &callerID
	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant claimed", map[string]interface{}{
		"restaurant_id": id,
		"owner_id":      callerID,
	})
	return restaurant, nil
}
