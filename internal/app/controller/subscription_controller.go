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

type SubscriptionController struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionController(subscriptionService service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// ListPlans returns the subscription plan catalog
// GET /api/v1/subscriptions
func (ctrl *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := ctrl.subscriptionService.ListPlans()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscriptions": plans,
		"count":         len(plans),
	})
}

// Upgrade marks the matching subscription field as pending for the caller
// POST /api/v1/subscriptions/:id/upgrade
func (ctrl *SubscriptionController) Upgrade(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 구독 플랜 ID입니다")
		return
	}

	user, err := ctrl.subscriptionService.Upgrade(userID, uint(planID))
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			apperrors.NotFound(c, apperrors.SubscriptionNotFound, "구독 플랜을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrUnknownPlan) {
			apperrors.BadRequest(c, apperrors.SubscriptionInvalidName, "지원하지 않는 구독 플랜입니다")
			return
		}
		log.Error("Failed to upgrade subscription", err, map[string]interface{}{
			"user_id": userID,
			"plan_id": planID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription upgrade requested",
		"user":    user,
	})
}
