package repository

import (
	"strings"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

// RestaurantFilter 식당 검색 조건. 각 항목은 대소문자 무시 부분 일치이며
// 모든 조건이 AND로 묶인다
type RestaurantFilter struct {
	Name     string
	Location string
	Cuisine  string
}

type RestaurantRepository interface {
	Create(restaurant *model.Restaurant) error
	Update(restaurant *model.Restaurant) error
	Delete(id uint) error
	FindAll() ([]model.Restaurant, error)
	FindByID(id uint) (*model.Restaurant, error)
	FindByOwnerID(ownerID uint) ([]model.Restaurant, error)
	Search(filter RestaurantFilter) ([]model.Restaurant, error)
	BulkCreate(restaurants []model.Restaurant, batchSize int) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *model.Restaurant) error {
	logger.Debug("Creating restaurant in database", map[string]interface{}{
		"name":     restaurant.Name,
		"location": restaurant.Location,
		"owner_id": restaurant.OwnerID,
	})

	if err := r.db.Create(restaurant).Error; err != nil {
		logger.Error("Failed to create restaurant in database", err, map[string]interface{}{
			"name": restaurant.Name,
		})
		return err
	}

	logger.Debug("Restaurant created in database", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
	})
	return nil
}

func (r *restaurantRepository) Update(restaurant *model.Restaurant) error {
	logger.Debug("Updating restaurant in database", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
	})

	if err := r.db.Save(restaurant).Error; err != nil {
		logger.Error("Failed to update restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return err
	}
	return nil
}

// Delete 식당과 하위 레코드(리뷰와 그 하위, 저장한 식당, 메뉴)를
// 하나의 트랜잭션에서 함께 삭제한다
func (r *restaurantRepository) Delete(id uint) error {
	logger.Debug("Deleting restaurant from database", map[string]interface{}{
		"restaurant_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var feedbackIDs []uint
		if err := tx.Model(&model.Feedback{}).Where("restaurant_id = ?", id).Pluck("id", &feedbackIDs).Error; err != nil {
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

		if err := tx.Where("restaurant_id = ?", id).Delete(&model.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&model.SavedPlace{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&model.MenuItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Restaurant{}, id).Error
	})
	if err != nil {
		logger.Error("Failed to delete restaurant from database", err, map[string]interface{}{
			"restaurant_id": id,
		})
		return err
	}

	logger.Debug("Restaurant deleted from database", map[string]interface{}{
		"restaurant_id": id,
	})
	return nil
}

func (r *restaurantRepository) FindAll() ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.Order("id").Find(&restaurants).Error; err != nil {
		logger.Error("Failed to list restaurants from database", err)
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	err := r.db.Preload("Feedbacks", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp DESC")
	}).First(&restaurant, id).Error
	if err != nil {
		logger.Error("Failed to find restaurant by ID in database", err, map[string]interface{}{
			"restaurant_id": id,
		})
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByOwnerID(ownerID uint) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.Where("owner_id = ?", ownerID).Order("id").Find(&restaurants).Error; err != nil {
		logger.Error("Failed to find restaurants by owner in database", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		return nil, err
	}
	return restaurants, nil
}

// BulkCreate 공공 데이터 일괄 등록용 (cmd/seed)
func (r *restaurantRepository) BulkCreate(restaurants []model.Restaurant, batchSize int) error {
	if len(restaurants) == 0 {
		return nil
	}

	if err := r.db.CreateInBatches(restaurants, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create restaurants in database", err, map[string]interface{}{
			"count": len(restaurants),
		})
		return err
	}

	logger.Info("Restaurants bulk created in database", map[string]interface{}{
		"count": len(restaurants),
	})
	return nil
}

// Search 이름/위치/요리 종류로 검색. LOWER + LIKE 조합이라
// PostgreSQL과 SQLite 어느 쪽에서도 동일하게 동작한다
func (r *restaurantRepository) Search(filter RestaurantFilter) ([]model.Restaurant, error) {
	logger.Debug("Searching restaurants", map[string]interface{}{
		"name":     filter.Name,
		"location": filter.Location,
		"cuisine":  filter.Cuisine,
	})

	query := r.db.Model(&model.Restaurant{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(filter.Cuisine)+"%")
	}

	var restaurants []model.Restaurant
	if err := query.Order("id").Find(&restaurants).Error; err != nil {
		logger.Error("Failed to search restaurants in database", err)
		return nil, err
	}
	return restaurants, nil
}
