package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/internal/app/service"
	apperrors "github.com/ikkim/matjip-backend/internal/errors"
	"github.com/ikkim/matjip-backend/internal/middleware"
)

type RestaurantController struct {
	restaurantService service.RestaurantService
	analyticsService  service.AnalyticsService
}

func NewRestaurantController(
	restaurantService service.RestaurantService,
	analyticsService service.AnalyticsService,
) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
		analyticsService:  analyticsService,
	}
}

type RestaurantRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
	Contact  string `json:"contact"`
	Image    string `json:"image"`
	Menu     string `json:"menu"`
	Hours    string `json:"hours"`
}

type UpdateRestaurantRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
	Contact  string `json:"contact"`
	Image    string `json:"image"`
	Menu     string `json:"menu"`
	Hours    string `json:"hours"`
}

// Create registers a new restaurant owned by the caller
// POST /api/v1/restaurants
func (ctrl *RestaurantController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "식당 이름은 필수입니다")
		return
	}

	restaurant, err := ctrl.restaurantService.Create(userID, service.RestaurantInput{
		Name:     req.Name,
		Location: req.Location,
		Cuisine:  req.Cuisine,
		Contact:  req.Contact,
		Image:    req.Image,
		Menu:     req.Menu,
		Hours:    req.Hours,
	})
	if err != nil {
		log.Error("Failed to create restaurant", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant created successfully",
		"restaurant": restaurant,
	})
}

// List returns all restaurants
// GET /api/v1/restaurants
func (ctrl *RestaurantController) List(c *gin.Context) {
	restaurants, err := ctrl.restaurantService.GetAll()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

// Get returns a restaurant with its feedback and average rating
// GET /api/v1/restaurants/:id
func (ctrl *RestaurantController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	restaurant, err := ctrl.restaurantService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	averageRating, err := ctrl.analyticsService.AverageRating(uint(id))
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":     restaurant,
		"average_rating": averageRating,
	})
}

// ListMine returns the caller's restaurants
// GET /api/v1/restaurants/mine
func (ctrl *RestaurantController) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	restaurants, err := ctrl.restaurantService.GetMine(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

// Update modifies a restaurant (owner only)
// PUT /api/v1/restaurants/:id
func (ctrl *RestaurantController) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	restaurant, err := ctrl.restaurantService.Update(uint(id), userID, service.RestaurantInput{
		Name:     req.Name,
		Location: req.Location,
		Cuisine:  req.Cuisine,
		Contact:  req.Contact,
		Image:    req.Image,
		Menu:     req.Menu,
		Hours:    req.Hours,
	})
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "식당 소유자만 수정할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant updated successfully",
		"restaurant": restaurant,
	})
}

// Delete removes a restaurant and its dependent rows (owner only)
// DELETE /api/v1/restaurants/:id
func (ctrl *RestaurantController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	if err := ctrl.restaurantService.Delete(uint(id), userID); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "식당 소유자만 삭제할 수 있습니다")
			return
		}
		log.Error("Failed to delete restaurant", err, map[string]interface{}{
			"restaurant_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}

// Search filters restaurants by name, location and cuisine
// GET /api/v1/restaurants/search?name=&location=&cuisine=
func (ctrl *RestaurantController) Search(c *gin.Context) {
	filter := repository.RestaurantFilter{
		Name:     c.Query("name"),
		Location: c.Query("location"),
		Cuisine:  c.Query("cuisine"),
	}

	restaurants, err := ctrl.restaurantService.Search(filter)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

// Claim assigns the restaurant's ownership to the caller
// POST /api/v1/restaurants/:id/claim
func (ctrl *RestaurantController) Claim(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	restaurant, err := ctrl.restaurantService.Claim(uint(id), userID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant claimed successfully",
		"restaurant": restaurant,
	})
}
