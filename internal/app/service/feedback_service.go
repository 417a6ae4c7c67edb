package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrNotFeedbackAuthor = errors.New("not the author of this feedback")
)

// 리뷰 작성 시 지급하는 활동 포인트
const feedbackPoints = 10

// FeedbackInput 리뷰 생성/수정 입력
type FeedbackInput struct {
	RatingFood        *int
	RatingService     *int
	RatingCleanliness *int
	RatingValue       *int
	RatingOverall     *int
	Recommend         *bool
	Comment           string
	Anonymous         bool
	Tags              []string
	Media             []MediaInput
}

// FeedbackUpdateInput 리뷰 수정 입력. nil 필드는 기존 값을 유지한다
type FeedbackUpdateInput struct {
	RatingFood        *int
	RatingService     *int
	RatingCleanliness *int
	RatingValue       *int
	RatingOverall     *int
	Recommend         *bool
	Comment           *string
	Anonymous         *bool
}

// MediaInput 리뷰에 첨부할 미디어
type MediaInput struct {
	FilePath  string
	MediaType string
}

// OwnerFeedback 식당 소유자에게 보여주는 제한된 리뷰 형태
type OwnerFeedback struct {
	ID                uint      `json:"id"`
	RestaurantID      uint      `json:"restaurant_id"`
	RatingFood        *int      `json:"rating_food"`
	RatingService     *int      `json:"rating_service"`
	RatingCleanliness *int      `json:"rating_cleanliness"`
	Comment           string    `json:"comment"`
	Anonymous         bool      `json:"anonymous"`
	Timestamp         time.Time `json:"timestamp"`
}

type FeedbackService interface {
	Create(userID, restaurantID uint, input FeedbackInput) (*model.Feedback, error)
	GetByRestaurant(restaurantID uint) ([]model.Feedback, error)
	ListForOwner(ownerID uint) ([]OwnerFeedback, error)
	Update(feedbackID, callerID uint, input FeedbackUpdateInput) (*model.Feedback, error)
	Delete(feedbackID, callerID uint, callerRole model.UserRole, reason string) error
	Like(feedbackID uint) (*model.Feedback, error)
	Reply(feedbackID, callerID uint, message string, isPrivate bool) (*model.Reply, error)
}

type feedbackService struct {
	db             *gorm.DB
	feedbackRepo   repository.FeedbackRepository
	restaurantRepo repository.RestaurantRepository
}

func NewFeedbackService(
	db *gorm.DB,
	feedbackRepo repository.FeedbackRepository,
	restaurantRepo repository.RestaurantRepository,
) FeedbackService {
	return &feedbackService{
		db:             db,
		feedbackRepo:   feedbackRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Create 리뷰 작성. 평점 검증 후 리뷰/태그/미디어 생성, 활동 포인트 지급,
// 식당 소유자 알림까지 하나의 트랜잭션으로 처리한다
func (s *feedbackService) Create(userID, restaurantID uint, input FeedbackInput) (*model.Feedback, error) {
	logger.Info("Creating feedback", map[string]interface{}{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	})

	feedback := &model.Feedback{
		RestaurantID:      restaurantID,
		UserID:            userID,
		RatingFood:        input.RatingFood,
		RatingService:     input.RatingService,
		RatingCleanliness: input.RatingCleanliness,
		RatingValue:       input.RatingValue,
		RatingOverall:     input.RatingOverall,
		Recommend:         input.Recommend,
		Comment:           input.Comment,
		Anonymous:         input.Anonymous,
		Timestamp:         time.Now(),
	}

	// 평점이 하나라도 범위를 벗어나면 아무것도 쓰지 않는다
	if err := feedback.ValidateRatings(); err != nil {
		logger.Warn("Feedback rejected: invalid rating", map[string]interface{}{
			"user_id": userID,
			"reason":  err.Error(),
		})
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	for _, m := range input.Media {
		feedback.Media = append(feedback.Media, model.Media{
			FilePath:  m.FilePath,
			MediaType: m.MediaType,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := repository.NewTagRepository(tx).FindOrCreateByNames(input.Tags)
		if err != nil {
			return err
		}
		feedback.Tags = tags

		if err := repository.NewFeedbackRepository(tx).Create(feedback); err != nil {
			return err
		}

		if err := repository.NewGamificationRepository(tx).AddPoints(userID, feedbackPoints); err != nil {
			return err
		}

		if restaurant.OwnerID != nil && *restaurant.OwnerID != userID {
			notification := &model.Notification{
				UserID:  *restaurant.OwnerID,
				Message: fmt.Sprintf("'%s' 식당에 새 리뷰가 등록되었습니다", restaurant.Name),
			}
			if err := repository.NewNotificationRepository(tx).Create(notification); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create feedback", err, map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return nil, err
	}

	logger.Info("Feedback created successfully", map[string]interface{}{
		"feedback_id": feedback.ID,
	})
	return feedback, nil
}

func (s *feedbackService) GetByRestaurant(restaurantID uint) ([]model.Feedback, error) {
	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.feedbackRepo.FindByRestaurantID(restaurantID)
}

// ListForOwner 소유자의 모든 식당에 달린 리뷰를 제한된 형태로 반환한다.
// 작성자 식별 정보와 종합/가성비 평점은 포함하지 않는다
func (s *feedbackService) ListForOwner(ownerID uint) ([]OwnerFeedback, error) {
	restaurants, err := s.restaurantRepo.FindByOwnerID(ownerID)
	if err != nil {
		return nil, err
	}

	restaurantIDs := make([]uint, 0, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantIDs = append(restaurantIDs, restaurant.ID)
	}

	feedbacks, err := s.feedbackRepo.FindByRestaurantIDs(restaurantIDs)
	if err != nil {
		return nil, err
	}

	result := make([]OwnerFeedback, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, OwnerFeedback{
			ID:                f.ID,
			RestaurantID:      f.RestaurantID,
			RatingFood:        f.RatingFood,
			RatingService:     f.RatingService,
			RatingCleanliness: f.RatingCleanliness,
			Comment:           f.Comment,
			Anonymous:         f.Anonymous,
			Timestamp:         f.Timestamp,
		})
	}
	return result, nil
}

// Update 보낸 필드만 덮어쓰고 나머지는 기존 값을 유지한다
func (s *feedbackService) Update(feedbackID, callerID uint, input FeedbackUpdateInput) (*model.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	if feedback.UserID != callerID {
		logger.Warn("Feedback update rejected: not author", map[string]interface{}{
			"feedback_id": feedbackID,
			"caller_id":   callerID,
		})
		return nil, ErrNotFeedbackAuthor
	}

	if input.RatingFood != nil {
		feedback.RatingFood = input.RatingFood
	}
	if input.RatingService != nil {
		feedback.RatingService = input.RatingService
	}
	if input.RatingCleanliness != nil {
		feedback.RatingCleanliness = input.RatingCleanliness
	}
	if input.RatingValue != nil {
		feedback.RatingValue = input.RatingValue
	}
	if input.RatingOverall != nil {
		feedback.RatingOverall = input.RatingOverall
	}
	if input.Recommend != nil {
		feedback.Recommend = input.Recommend
	}
	if input.Comment != nil {
		feedback.Comment = *input.Comment
	}
	if input.Anonymous != nil {
		feedback.Anonymous = *input.Anonymous
	}

	if err := feedback.ValidateRatings(); err != nil {
		logger.Warn("Feedback update rejected: invalid rating", map[string]interface{}{
			"feedback_id": feedbackID,
			"reason":      err.Error(),
		})
		return nil, err
	}

	if err := s.feedbackRepo.Update(feedback); err != nil {
		return nil, err
	}

	logger.Info("Feedback updated successfully", map[string]interface{}{
		"feedback_id": feedback.ID,
	})
	return feedback, nil
}

// Delete 작성자 본인 또는 관리자만 삭제할 수 있다.
// 관리자 삭제는 모더레이션 기록을 함께 남긴다
func (s *feedbackService) Delete(feedbackID, callerID uint, callerRole model.UserRole, reason string) error {
	feedback, err := s.feedbackRepo.FindByID(feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}

	isAdmin := callerRole == model.RoleAdmin
	if feedback.UserID != callerID && !isAdmin {
		logger.Warn("Feedback delete rejected: not author", map[string]interface{}{
			"feedback_id": feedbackID,
			"caller_id":   callerID,
		})
		return ErrNotFeedbackAuthor
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewFeedbackRepository(tx)
		if err := txRepo.Delete(feedbackID); err != nil {
			return err
		}

		if isAdmin && feedback.UserID != callerID {
			entry := &model.ModerationLog{
				FeedbackID: feedbackID,
				Action:     model.ModerationActionDelete,
				Reason:     reason,
				AdminID:    callerID,
				Timestamp:  time.Now(),
			}
			return txRepo.LogModeration(entry)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Feedback deleted successfully", map[string]interface{}{
		"feedback_id": feedbackID,
		"by_admin":    isAdmin && feedback.UserID != callerID,
	})
	return nil
}

func (s *feedbackService) Like(feedbackID uint) (*model.Feedback, error) {
	if _, err := s.feedbackRepo.FindByID(feedbackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	if err := s.feedbackRepo.IncrementLikes(feedbackID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.FindByID(feedbackID)
}

// Reply 리뷰가 달린 식당의 소유자만 답글을 달 수 있다
func (s *feedbackService) Reply(feedbackID, callerID uint, message string, isPrivate bool) (*model.Reply, error) {
	feedback, err := s.feedbackRepo.FindByID(feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	restaurant, err := s.restaurantRepo.FindByID(feedback.RestaurantID)
	if err != nil {
		return nil, err
	}

	if restaurant.OwnerID == nil || *restaurant.OwnerID != callerID {
		logger.Warn("Reply rejected: not restaurant owner", map[string]interface{}{
			"feedback_id": feedbackID,
			"caller_id":   callerID,
		})
		return nil, ErrNotOwner
	}

	reply := &model.Reply{
		FeedbackID: feedbackID,
		UserID:     callerID,
		Message:    message,
		IsPrivate:  isPrivate,
		Timestamp:  time.Now(),
	}
	if err := s.feedbackRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	logger.Info("Reply created successfully", map[string]interface{}{
		"reply_id":    reply.ID,
		"feedback_id": feedbackID,
	})
	return reply, nil
}
