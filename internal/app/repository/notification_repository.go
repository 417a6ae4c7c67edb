package repository

import (
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindByID(id uint) (*model.Notification, error)
	FindByUserID(userID uint) ([]model.Notification, error)
	MarkRead(id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		logger.Error("Failed to create notification in database", err, map[string]interface{}{
			"user_id": notification.UserID,
		})
		return err
	}
	return nil
}

func (r *notificationRepository) FindByID(id uint) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByUserID(userID uint) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		logger.Error("Failed to find notifications by user in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(id uint) error {
	err := r.db.Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		logger.Error("Failed to mark notification as read in database", err, map[string]interface{}{
			"notification_id": id,
		})
		return err
	}
	return nil
}
