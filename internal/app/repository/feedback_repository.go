package repository

import (
	"time"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindByID(id uint) (*model.Feedback, error)
	FindByRestaurantID(restaurantID uint) ([]model.Feedback, error)
	FindByRestaurantIDs(restaurantIDs []uint) ([]model.Feedback, error)
	FindByRestaurantSince(restaurantID uint, since time.Time) ([]model.Feedback, error)
	Update(feedback *model.Feedback) error
	Delete(id uint) error
	IncrementLikes(id uint) error
	CreateReply(reply *model.Reply) error
	LogModeration(entry *model.ModerationLog) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create 리뷰와 연결된 태그/미디어를 함께 생성한다.
// gorm이 연관 레코드 생성을 하나의 트랜잭션으로 묶는다
func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	logger.Debug("Creating feedback in database", map[string]interface{}{
		"restaurant_id": feedback.RestaurantID,
		"user_id":       feedback.UserID,
	})

	if err := r.db.Create(feedback).Error; err != nil {
		logger.Error("Failed to create feedback in database", err, map[string]interface{}{
			"restaurant_id": feedback.RestaurantID,
			"user_id":       feedback.UserID,
		})
		return err
	}

	logger.Debug("Feedback created in database", map[string]interface{}{
		"feedback_id": feedback.ID,
	})
	return nil
}

func (r *feedbackRepository) FindByID(id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.Preload("Tags").Preload("Media").Preload("Replies").First(&feedback, id).Error
	if err != nil {
		logger.Error("Failed to find feedback by ID in database", err, map[string]interface{}{
			"feedback_id": id,
		})
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindByRestaurantID(restaurantID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Preload("Tags").Preload("Media").
		Where("restaurant_id = ?", restaurantID).
		Order("timestamp DESC").
		Find(&feedbacks).Error
	if err != nil {
		logger.Error("Failed to find feedback by restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return nil, err
	}
	return feedbacks, nil
}

// FindByRestaurantIDs 소유자의 전체 식당에 달린 리뷰 조회 (월별 통계용)
func (r *feedbackRepository) FindByRestaurantIDs(restaurantIDs []uint) ([]model.Feedback, error) {
	if len(restaurantIDs) == 0 {
		return []model.Feedback{}, nil
	}

	var feedbacks []model.Feedback
	err := r.db.Where("restaurant_id IN ?", restaurantIDs).
		Order("timestamp DESC").
		Find(&feedbacks).Error
	if err != nil {
		logger.Error("Failed to find feedback by restaurants in database", err, map[string]interface{}{
			"restaurant_count": len(restaurantIDs),
		})
		return nil, err
	}
	return feedbacks, nil
}

// FindByRestaurantSince 분석 윈도우 내 리뷰 조회
func (r *feedbackRepository) FindByRestaurantSince(restaurantID uint, since time.Time) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Where("restaurant_id = ? AND timestamp >= ?", restaurantID, since).
		Order("timestamp DESC").
		Find(&feedbacks).Error
	if err != nil {
		logger.Error("Failed to find feedback in window from database", err, map[string]interface{}{
			"restaurant_id": restaurantID,
			"since":         since,
		})
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) Update(feedback *model.Feedback) error {
	logger.Debug("Updating feedback in database", map[string]interface{}{
		"feedback_id": feedback.ID,
	})

	if err := r.db.Save(feedback).Error; err != nil {
		logger.Error("Failed to update feedback in database", err, map[string]interface{}{
			"feedback_id": feedback.ID,
		})
		return err
	}
	return nil
}

// Delete 리뷰와 하위 레코드(답글, 미디어, 태그 연결)를
// 하나의 트랜잭션에서 함께 삭제한다. 모더레이션 기록은 남긴다
func (r *feedbackRepository) Delete(id uint) error {
	logger.Debug("Deleting feedback from database", map[string]interface{}{
		"feedback_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", id).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feedback_id = ?", id).Delete(&model.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM feedback_tags WHERE feedback_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Feedback{}, id).Error
	})
	if err != nil {
		logger.Error("Failed to delete feedback from database", err, map[string]interface{}{
			"feedback_id": id,
		})
		return err
	}
	return nil
}

func (r *feedbackRepository) IncrementLikes(id uint) error {
	return r.db.Model(&model.Feedback{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
}

func (r *feedbackRepository) CreateReply(reply *model.Reply) error {
	logger.Debug("Creating reply in database", map[string]interface{}{
		"feedback_id": reply.FeedbackID,
		"user_id":     reply.UserID,
	})

	if err := r.db.Create(reply).Error; err != nil {
		logger.Error("Failed to create reply in database", err, map[string]interface{}{
			"feedback_id": reply.FeedbackID,
		})
		return err
	}
	return nil
}

func (r *feedbackRepository) LogModeration(entry *model.ModerationLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		logger.Error("Failed to create moderation log in database", err, map[string]interface{}{
			"feedback_id": entry.FeedbackID,
			"admin_id":    entry.AdminID,
		})
		return err
	}
	return nil
}
