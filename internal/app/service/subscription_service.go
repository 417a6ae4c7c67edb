package service

import (
	"errors"
	"strings"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription plan not found")
	ErrUnknownPlan          = errors.New("unknown subscription plan")
)

// 정규화된 플랜 이름과 User 구독 상태 필드의 매핑.
// 여기 없는 플랜 이름으로는 업그레이드할 수 없다
var planFields = map[string]func(*model.User){
	"premium_listing":   func(u *model.User) { u.PremiumListing = model.SubscriptionStatusPending },
	"normal_listing":    func(u *model.User) { u.NormalListing = model.SubscriptionStatusPending },
	"sponsored_ads":     func(u *model.User) { u.SponsoredAds = model.SubscriptionStatusPending },
	"premium_analytics": func(u *model.User) { u.PremiumAnalytics = model.SubscriptionStatusPending },
	"review_contest":    func(u *model.User) { u.ReviewContest = model.SubscriptionStatusPending },
	"subscription":      func(u *model.User) { u.Subscription = model.SubscriptionStatusPending },
}

type SubscriptionService interface {
	ListPlans() ([]model.Subscription, error)
	Upgrade(userID, planID uint) (*model.User, error)
}

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
}

func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func (s *subscriptionService) ListPlans() ([]model.Subscription, error) {
	return s.subscriptionRepo.FindAll()
}

// normalizePlanName 플랜 이름을 소문자로 바꾸고 공백을 밑줄로 치환한다.
// "Premium Listing" -> "premium_listing"
func normalizePlanName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Upgrade 플랜 이름을 정규화해 대응하는 구독 상태 필드를
// "pending"으로 올린다. 매핑에 없는 플랜은 거부
func (s *subscriptionService) Upgrade(userID, planID uint) (*model.User, error) {
	logger.Info("Attempting subscription upgrade", map[string]interface{}{
		"user_id": userID,
		"plan_id": planID,
	})

	plan, err := s.subscriptionRepo.FindByID(planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	setField, ok := planFields[normalizePlanName(plan.Name)]
	if !ok {
		logger.Warn("Subscription upgrade rejected: unknown plan", map[string]interface{}{
			"plan_name": plan.Name,
		})
		return nil, ErrUnknownPlan
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	setField(user)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("Subscription upgraded to pending", map[string]interface{}{
		"user_id":   user.ID,
		"plan_name": plan.Name,
	})
	return user, nil
}
