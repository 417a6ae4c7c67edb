package service

import (
	"errors"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("not the owner of this notification")
)

type NotificationService interface {
	List(userID uint) ([]model.Notification, error)
	MarkRead(notificationID, callerID uint) (*model.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(userID uint) ([]model.Notification, error) {
	return s.notificationRepo.FindByUserID(userID)
}

func (s *notificationService) MarkRead(notificationID, callerID uint) (*model.Notification, error) {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	if notification.UserID != callerID {
		return nil, ErrNotNotificationOwner
	}

	if err := s.notificationRepo.MarkRead(notificationID); err != nil {
		return nil, err
	}

	notification.IsRead = true
	return notification, nil
}
