package repository

import (
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *model.MenuItem) error
	FindByID(id uint) (*model.MenuItem, error)
	FindByRestaurantID(restaurantID uint) ([]model.MenuItem, error)
	Update(item *model.MenuItem) error
	Delete(id uint) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *model.MenuItem) error {
	logger.Debug("Creating menu item in database", map[string]interface{}{
		"restaurant_id": item.RestaurantID,
		"name":          item.Name,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create menu item in database", err, map[string]interface{}{
			"restaurant_id": item.RestaurantID,
		})
		return err
	}
	return nil
}

func (r *menuItemRepository) FindByID(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		logger.Error("Failed to find menu item by ID in database", err, map[string]interface{}{
			"menu_item_id": id,
		})
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) FindByRestaurantID(restaurantID uint) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.Where("restaurant_id = ?", restaurantID).Order("id ASC").Find(&items).Error
	if err != nil {
		logger.Error("Failed to find menu items by restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) Update(item *model.MenuItem) error {
	if err := r.db.Save(item).Error; err != nil {
		logger.Error("Failed to update menu item in database", err, map[string]interface{}{
			"menu_item_id": item.ID,
		})
		return err
	}
	return nil
}

func (r *menuItemRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.MenuItem{}, id).Error; err != nil {
		logger.Error("Failed to delete menu item from database", err, map[string]interface{}{
			"menu_item_id": id,
		})
		return err
	}
	return nil
}
