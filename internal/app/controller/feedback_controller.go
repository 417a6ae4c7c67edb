package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/service"
	apperrors "github.com/ikkim/matjip-backend/internal/errors"
	"github.com/ikkim/matjip-backend/internal/middleware"
)

type FeedbackController struct {
	feedbackService service.FeedbackService
}

func NewFeedbackController(feedbackService service.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

type FeedbackRequest struct {
	RatingFood        *int               `json:"rating_food"`
	RatingService     *int               `json:"rating_service"`
	RatingCleanliness *int               `json:"rating_cleanliness"`
	RatingValue       *int               `json:"rating_value"`
	RatingOverall     *int               `json:"rating_overall"`
	Recommend         *bool              `json:"recommend"`
	Comment           string             `json:"comment"`
	Anonymous         bool               `json:"anonymous"`
	Tags              []string           `json:"tags"`
	Media             []MediaItemRequest `json:"media"`
}

// UpdateFeedbackRequest 부분 수정 요청. 보내지 않은 필드는 바뀌지 않는다
type UpdateFeedbackRequest struct {
	RatingFood        *int    `json:"rating_food"`
	RatingService     *int    `json:"rating_service"`
	RatingCleanliness *int    `json:"rating_cleanliness"`
	RatingValue       *int    `json:"rating_value"`
	RatingOverall     *int    `json:"rating_overall"`
	Recommend         *bool   `json:"recommend"`
	Comment           *string `json:"comment"`
	Anonymous         *bool   `json:"anonymous"`
}

type MediaItemRequest struct {
	FilePath  string `json:"file_path" binding:"required"`
	MediaType string `json:"media_type" binding:"required,oneof=image video"`
}

type ReplyRequest struct {
	Message   string `json:"message" binding:"required"`
	IsPrivate bool   `json:"is_private"`
}

type DeleteFeedbackRequest struct {
	Reason string `json:"reason"`
}

func (req *FeedbackRequest) toInput() service.FeedbackInput {
	input := service.FeedbackInput{
		RatingFood:        req.RatingFood,
		RatingService:     req.RatingService,
		RatingCleanliness: req.RatingCleanliness,
		RatingValue:       req.RatingValue,
		RatingOverall:     req.RatingOverall,
		Recommend:         req.Recommend,
		Comment:           req.Comment,
		Anonymous:         req.Anonymous,
		Tags:              req.Tags,
	}
	for _, m := range req.Media {
		input.Media = append(input.Media, service.MediaInput{
			FilePath:  m.FilePath,
			MediaType: m.MediaType,
		})
	}
	return input
}

// respondRatingError 평점 범위 위반을 위반 필드와 함께 400으로 응답
func respondRatingError(c *gin.Context, err error) bool {
	var ratingErr *model.InvalidRatingError
	if errors.As(err, &ratingErr) {
		apperrors.RespondWithValidationError(c, map[string]string{
			ratingErr.Field: "평점은 1에서 5 사이의 정수여야 합니다",
		})
		return true
	}
	return false
}

// Create submits feedback for a restaurant
// POST /api/v1/restaurants/:id/feedback
func (ctrl *FeedbackController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

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

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	feedback, err := ctrl.feedbackService.Create(userID, uint(restaurantID), req.toInput())
	if err != nil {
		if respondRatingError(c, err) {
			return
		}
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to create feedback", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}

// ListByRestaurant returns a restaurant's feedback, newest first
// GET /api/v1/restaurants/:id/feedback
func (ctrl *FeedbackController) ListByRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 식당 ID입니다")
		return
	}

	feedbacks, err := ctrl.feedbackService.GetByRestaurant(uint(restaurantID))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "식당을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks": feedbacks,
		"count":     len(feedbacks),
	})
}

// ListForOwner returns the restricted feedback view for the caller's restaurants
// GET /api/v1/feedback/received
func (ctrl *FeedbackController) ListForOwner(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	feedbacks, err := ctrl.feedbackService.ListForOwner(userID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks": feedbacks,
		"count":     len(feedbacks),
	})
}

// Update modifies feedback (author only), ratings re-validated
// PUT /api/v1/feedback/:id
func (ctrl *FeedbackController) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 리뷰 ID입니다")
		return
	}

	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	feedback, err := ctrl.feedbackService.Update(uint(feedbackID), userID, service.FeedbackUpdateInput{
		RatingFood:        req.RatingFood,
		RatingService:     req.RatingService,
		RatingCleanliness: req.RatingCleanliness,
		RatingValue:       req.RatingValue,
		RatingOverall:     req.RatingOverall,
		Recommend:         req.Recommend,
		Comment:           req.Comment,
		Anonymous:         req.Anonymous,
	})
	if err != nil {
		if respondRatingError(c, err) {
			return
		}
		if errors.Is(err, service.ErrFeedbackNotFound) {
			apperrors.NotFound(c, apperrors.FeedbackNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotFeedbackAuthor) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzForbidden, "본인이 작성한 리뷰만 수정할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Feedback updated successfully",
		"feedback": feedback,
	})
}

// Delete removes feedback (author, or admin with a moderation log)
// DELETE /api/v1/feedback/:id
func (ctrl *FeedbackController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}
	role, _ := middleware.CurrentUserRole(c)

	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 리뷰 ID입니다")
		return
	}

	// 삭제 사유는 관리자 삭제 시에만 의미가 있다
	var req DeleteFeedbackRequest
	_ = c.ShouldBindJSON(&req)

	if err := ctrl.feedbackService.Delete(uint(feedbackID), userID, role, req.Reason); err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			apperrors.NotFound(c, apperrors.FeedbackNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotFeedbackAuthor) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzForbidden, "본인이 작성한 리뷰만 삭제할 수 있습니다")
			return
		}
		log.Error("Failed to delete feedback", err, map[string]interface{}{
			"feedback_id": feedbackID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}

// Like increments the like counter
// POST /api/v1/feedback/:id/like
func (ctrl *FeedbackController) Like(c *gin.Context) {
	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 리뷰 ID입니다")
		return
	}

	feedback, err := ctrl.feedbackService.Like(uint(feedbackID))
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			apperrors.NotFound(c, apperrors.FeedbackNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Feedback liked",
		"likes":   feedback.Likes,
	})
}

// Reply adds an owner's reply to feedback
// POST /api/v1/feedback/:id/reply
func (ctrl *FeedbackController) Reply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "올바르지 않은 리뷰 ID입니다")
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "답글 내용을 입력해주세요")
		return
	}

	reply, err := ctrl.feedbackService.Reply(uint(feedbackID), userID, req.Message, req.IsPrivate)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackNotFound) {
			apperrors.NotFound(c, apperrors.FeedbackNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "식당 소유자만 답글을 달 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reply created successfully",
		"reply":   reply,
	})
}
