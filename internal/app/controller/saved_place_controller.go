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

type SavedPlaceController struct {
	savedPlaceService service.SavedPlaceService
}

func NewSavedPlaceController(savedPlaceService service.SavedPlaceService) *SavedPlaceController {
	return &SavedPlaceController{savedPlaceService: savedPlaceService}
}

// Save adds a restaurant to the caller's saved places.
// Saving the same restaurant twice is not an error.
// POST /api/v1/restaurants/:id/save
func (ctrl *SavedPlaceController) Save(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	created, err := ctrl.savedPlaceService.Save(userID, uint(restaurantID))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant already saved"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant saved successfully"})
}

// List returns the caller's saved restaurants
// GET /api/v1/saved-places
func (ctrl *SavedPlaceController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	savedPlaces, err := ctrl.savedPlaceService.List(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved_places": savedPlaces,
		"count":        len(savedPlaces),
	})
}

// Unsave removes a restaurant from the caller's saved places
// DELETE /api/v1/restaurants/:id/save
func (ctrl *SavedPlaceController) Unsave(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	if err := ctrl.savedPlaceService.Unsave(userID, uint(restaurantID)); err != nil {
		if errors.Is(err, service.ErrSavedPlaceNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "저장하지 않은 식당입니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant unsaved successfully"})
}
