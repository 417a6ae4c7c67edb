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

// 프리미엄 분석 기본 조회 기간 (일)
const defaultAnalyticsDays = 30

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// MonthlyStats returns per-month review statistics for the caller's restaurants
// GET /api/v1/analytics/monthly
func (ctrl *AnalyticsController) MonthlyStats(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	stats, err := ctrl.analyticsService.MonthlyStats(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"monthly_stats": stats})
}

// PremiumAnalytics returns detailed analytics over a recent window
// GET /api/v1/restaurants/:id/analytics?days=30
func (ctrl *AnalyticsController) PremiumAnalytics(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	days := defaultAnalyticsDays
	if daysParam := c.Query("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed <= 0 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "조회 기간은 1 이상의 정수여야 합니다")
			return
		}
		days = parsed
	}

	analytics, err := ctrl.analyticsService.PremiumAnalytics(c.Request.Context(), uint(restaurantID), days)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to compute premium analytics", err, map[string]interface{}{
			"restaurant_id": restaurantID,
			"days":          days,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, analytics)
}
