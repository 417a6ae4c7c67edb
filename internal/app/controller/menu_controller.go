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

type MenuController struct {
	menuService service.MenuService
}

func NewMenuController(menuService service.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageBase64 string  `json:"image_base64"`
}

// UpdateMenuItemRequest 부분 수정 요청. 보내지 않은 필드는 바뀌지 않는다
type UpdateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageBase64 string   `json:"image_base64"`
}

// List returns a restaurant's menu items (public)
// GET /api/v1/restaurants/:id/menu
func (ctrl *MenuController) List(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	items, err := ctrl.menuService.ListByRestaurant(uint(restaurantID))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu_item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu_items": items,
		"count":      len(items),
	})
}

// Add creates a menu item (restaurant owner only)
// POST /api/v1/restaurants/:id/menu
func (ctrl *MenuController) Add(c *gin.Context) {
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

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "메뉴 이름은 필수입니다")
		return
	}

	item, err := ctrl.menuService.Add(uint(restaurantID), userID, service.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			apperrors.BadRequest(c, apperrors.MenuItemInvalidPrice, "가격은 0 이상이어야 합니다")
			return
		}
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "식당 소유자만 메뉴를 관리할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu_item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Menu item created successfully",
		"menu_item": item,
	})
}

// Update modifies a menu item (restaurant owner only)
// PUT /api/v1/menu/:id
func (ctrl *MenuController) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 메뉴 ID입니다")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	item, err := ctrl.menuService.Update(uint(itemID), userID, service.MenuItemUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			apperrors.BadRequest(c, apperrors.MenuItemInvalidPrice, "가격은 0 이상이어야 합니다")
			return
		}
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "메뉴 항목을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "식당 소유자만 메뉴를 관리할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu_item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Menu item updated successfully",
		"menu_item": item,
	})
}

// Delete removes a menu item (restaurant owner only)
// DELETE /api/v1/menu/:id
func (ctrl *MenuController) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 메뉴 ID입니다")
		return
	}

	if err := ctrl.menuService.Delete(uint(itemID), userID); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "메뉴 항목을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "식당 소유자만 메뉴를 관리할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu_item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
