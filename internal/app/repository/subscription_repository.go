package repository

import (
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	FindAll() ([]model.Subscription, error)
	FindByID(id uint) (*model.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindAll() ([]model.Subscription, error) {
	var subscriptions []model.Subscription
	if err := r.db.Order("id ASC").Find(&subscriptions).Error; err != nil {
		logger.Error("Failed to find subscriptions in database", err, nil)
		return nil, err
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) FindByID(id uint) (*model.Subscription, error) {
	var subscription model.Subscription
	if err := r.db.First(&subscription, id).Error; err != nil {
		logger.Error("Failed to find subscription by ID in database", err, map[string]interface{}{
			"subscription_id": id,
		})
		return nil, err
	}
	return &subscription, nil
}
