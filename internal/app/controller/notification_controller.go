package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/matjip-backend/internal/app/service"
	apperrors "github.com/ikkim/matjip-backend/internal/errors"
	"github.com/ikkim/matjip-backend/internal/middleware"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List returns the caller's notifications, newest first
// GET /api/v1/notifications
func (ctrl *NotificationController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	notifications, err := ctrl.notificationService.List(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkRead marks one of the caller's notifications as read
// PUT /api/v1/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 알림 ID입니다")
		return
	}

	notification, err := ctrl.notificationService.MarkRead(uint(notificationID), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			apperrors.NotFound(c, apperrors.NotificationNotFound, "알림을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotNotificationOwner) {
			apperrors.Forbidden(c, "본인의 알림만 읽음 처리할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}
