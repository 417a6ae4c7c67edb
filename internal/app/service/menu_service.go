package service

import (
	"errors"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("price must be zero or greater")
)

// MenuItemInput 메뉴 생성 입력
type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	ImageBase64 string
}

// MenuItemUpdateInput 메뉴 수정 입력. nil/빈 필드는 기존 값을 유지한다
type MenuItemUpdateInput struct {
	Name        string
	Description string
	Price       *float64
	ImageBase64 string
}

type MenuService interface {
	ListByRestaurant(restaurantID uint) ([]model.MenuItem, error)
	Add(restaurantID, callerID uint, input MenuItemInput) (*model.MenuItem, error)
	Update(itemID, callerID uint, input MenuItemUpdateInput) (*model.MenuItem, error)
	Delete(itemID, callerID uint) error
}

type menuService struct {
	menuItemRepo   repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
}

func NewMenuService(
	menuItemRepo repository.MenuItemRepository,
	restaurantRepo repository.RestaurantRepository,
) MenuService {
	return &menuService{
		menuItemRepo:   menuItemRepo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *menuService) ListByRestaurant(restaurantID uint) ([]model.MenuItem, error) {
	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.menuItemRepo.FindByRestaurantID(restaurantID)
}

// requireOwner 식당 존재와 호출자의 소유권을 확인한다
func (s *menuService) requireOwner(restaurantID, callerID uint) error {
	restaurant, err := s.restaurantRepo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}
	if restaurant.OwnerID == nil || *restaurant.OwnerID != callerID {
		return ErrNotOwner
	}
	return nil
}

func (s *menuService) Add(restaurantID, callerID uint, input MenuItemInput) (*model.MenuItem, error) {
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}

	if err := s.requireOwner(restaurantID, callerID); err != nil {
		logger.Warn("Menu item add rejected", map[string]interface{}{
			"restaurant_id": restaurantID,
			"caller_id":     callerID,
			"reason":        err.Error(),
		})
		return nil, err
	}

	item := &model.MenuItem{
		RestaurantID: restaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageBase64:  input.ImageBase64,
	}
	if err := s.menuItemRepo.Create(item); err != nil {
		return nil, err
	}

	logger.Info("Menu item created successfully", map[string]interface{}{
		"menu_item_id":  item.ID,
		"restaurant_id": restaurantID,
	})
	return item, nil
}

func (s *menuService) Update(itemID, callerID uint, input MenuItemUpdateInput) (*model.MenuItem, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidPrice
	}

	item, err := s.menuItemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	if err := s.requireOwner(item.RestaurantID, callerID); err != nil {
		return nil, err
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageBase64 != "" {
		item.ImageBase64 = input.ImageBase64
	}

	if err := s.menuItemRepo.Update(item); err != nil {
		return nil, err
	}

	logger.Info("Menu item updated successfully", map[string]interface{}{
		"menu_item_id": item.ID,
	})
	return item, nil
}

func (s *menuService) Delete(itemID, callerID uint) error {
	item, err := s.menuItemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	if err := s.requireOwner(item.RestaurantID, callerID); err != nil {
		return err
	}

	if err := s.menuItemRepo.Delete(itemID); err != nil {
		return err
	}

	logger.Info("Menu item deleted successfully", map[string]interface{}{
		"menu_item_id": itemID,
	})
	return nil
}
