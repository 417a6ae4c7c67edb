package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"github.com/ikkim/matjip-backend/pkg/redis"
	"gorm.io/gorm"
)

// MonthlyStat 한 달치 리뷰 통계
type MonthlyStat struct {
	Month           int     `json:"month"`
	ReviewCount     int     `json:"review_count"`
	AvgFood         float64 `json:"avg_food"`
	AvgService      float64 `json:"avg_service"`
	AvgCleanliness  float64 `json:"avg_cleanliness"`
}

// Suggestion 개선 제안으로 쓰이는 리뷰 코멘트
type Suggestion struct {
	Comment       string    `json:"comment"`
	RatingService *int      `json:"rating_service"`
	RatingOverall *int      `json:"rating_overall"`
	Timestamp     time.Time `json:"timestamp"`
}

// TimeTrend 날짜별 평점 추이
type TimeTrend struct {
	Date           string  `json:"date"`
	AvgService     float64 `json:"avg_service"`
	AvgFood        float64 `json:"avg_food"`
	AvgCleanliness float64 `json:"avg_cleanliness"`
	AvgOverall     float64 `json:"avg_overall"`
	Count          int     `json:"count"`
}

// ServiceDistribution 서비스 평점 값별 분포
type ServiceDistribution struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AverageRatings 항목별 평균 평점
type AverageRatings struct {
	Food        float64 `json:"food"`
	Service     float64 `json:"service"`
	Cleanliness float64 `json:"cleanliness"`
	Value       float64 `json:"value"`
	Overall     float64 `json:"overall"`
}

// PremiumAnalytics 프리미엄 분석 응답
type PremiumAnalytics struct {
	RestaurantID         uint                  `json:"restaurant_id"`
	PeriodDays           int                   `json:"period_days"`
	TotalFeedbacks       int                   `json:"total_feedbacks"`
	LowServicePercentage float64               `json:"low_service_percentage"`
	Suggestions          []Suggestion          `json:"suggestions"`
	TimeTrends           []TimeTrend           `json:"time_trends"`
	ServiceDistribution  []ServiceDistribution `json:"service_distribution"`
	AverageRatings       AverageRatings        `json:"average_ratings"`
	RecommendationRate   float64               `json:"recommendation_rate"`
}

type AnalyticsService interface {
	AverageRating(restaurantID uint) (*float64, error)
	MonthlyStats(ownerID uint) ([]MonthlyStat, error)
	PremiumAnalytics(ctx context.Context, restaurantID uint, days int) (*PremiumAnalytics, error)
}

type analyticsService struct {
	feedbackRepo   repository.FeedbackRepository
	restaurantRepo repository.RestaurantRepository
	cache          *redis.AnalyticsCache
}

func NewAnalyticsService(
	feedbackRepo repository.FeedbackRepository,
	restaurantRepo repository.RestaurantRepository,
	cache *redis.AnalyticsCache,
) AnalyticsService {
	return &analyticsService{
		feedbackRepo:   feedbackRepo,
		restaurantRepo: restaurantRepo,
		cache:          cache,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ratingOrZero(r *int) int {
	if r == nil {
		return 0
	}
	return *r
}

// AverageRating 식당의 전체 평균 평점. 리뷰가 없으면 nil.
// null 평점은 0으로 합산하고 분모는 전체 리뷰 수다
func (s *analyticsService) AverageRating(restaurantID uint) (*float64, error) {
	feedbacks, err := s.feedbackRepo.FindByRestaurantID(restaurantID)
	if err != nil {
		return nil, err
	}
	if len(feedbacks) == 0 {
		return nil, nil
	}

	sum := 0
	for _, f := range feedbacks {
		sum += ratingOrZero(f.RatingOverall)
	}
	avg := round2(float64(sum) / float64(len(feedbacks)))
	return &avg, nil
}

// MonthlyStats 소유자의 모든 식당 리뷰를 달력 월(1~12)로 묶은 통계.
// 월 오름차순으로 반환한다
func (s *analyticsService) MonthlyStats(ownerID uint) ([]MonthlyStat, error) {
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

	type bucket struct {
		count           int
		sumFood         int
		sumService      int
		sumCleanliness  int
	}
	buckets := make(map[int]*bucket)
	for _, f := range feedbacks {
		month := int(f.Timestamp.Month())
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.count++
		b.sumFood += ratingOrZero(f.RatingFood)
		b.sumService += ratingOrZero(f.RatingService)
		b.sumCleanliness += ratingOrZero(f.RatingCleanliness)
	}

	stats := make([]MonthlyStat, 0, len(buckets))
	for month, b := range buckets {
		stats = append(stats, MonthlyStat{
			Month:          month,
			ReviewCount:    b.count,
			AvgFood:        round2(float64(b.sumFood) / float64(b.count)),
			AvgService:     round2(float64(b.sumService) / float64(b.count)),
			AvgCleanliness: round2(float64(b.sumCleanliness) / float64(b.count)),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats, nil
}

// PremiumAnalytics 최근 days일 리뷰에 대한 상세 분석.
// 결과는 redis에 캐시된다 (캐시 클라이언트 없으면 매번 계산)
func (s *analyticsService) PremiumAnalytics(ctx context.Context, restaurantID uint, days int) (*PremiumAnalytics, error) {
	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	var cached PremiumAnalytics
	hit, err := s.cache.Get(ctx, restaurantID, days, &cached)
	if err == nil && hit {
		logger.Debug("Premium analytics cache hit", map[string]interface{}{
			"restaurant_id": restaurantID,
			"days":          days,
		})
		return &cached, nil
	}

	since := time.Now().AddDate(0, 0, -days)
	feedbacks, err := s.feedbackRepo.FindByRestaurantSince(restaurantID, since)
	if err != nil {
		return nil, err
	}

	result := s.computePremiumAnalytics(restaurantID, days, feedbacks)

	if err := s.cache.Set(ctx, restaurantID, days, result); err != nil {
		logger.Warn("Failed to cache premium analytics", map[string]interface{}{
			"restaurant_id": restaurantID,
		})
	}
	return result, nil
}

func (s *analyticsService) computePremiumAnalytics(restaurantID uint, days int, feedbacks []model.Feedback) *PremiumAnalytics {
	result := &PremiumAnalytics{
		RestaurantID:        restaurantID,
		PeriodDays:          days,
		TotalFeedbacks:      len(feedbacks),
		Suggestions:         []Suggestion{},
		TimeTrends:          []TimeTrend{},
		ServiceDistribution: []ServiceDistribution{},
	}
	if len(feedbacks) == 0 {
		return result
	}

	total := len(feedbacks)

	// 낮은 서비스 평점 비율 (1점, 2점)
	lowService := 0
	for _, f := range feedbacks {
		if f.RatingService != nil && *f.RatingService <= 2 {
			lowService++
		}
	}
	result.LowServicePercentage = round2(float64(lowService) / float64(total) * 100)

	// 개선 제안: 내용이 있는 코멘트 전부, 최신순
	// (리포지토리가 timestamp 내림차순으로 반환한다)
	for _, f := range feedbacks {
		if f.Comment == "" {
			continue
		}
		result.Suggestions = append(result.Suggestions, Suggestion{
			Comment:       f.Comment,
			RatingService: f.RatingService,
			RatingOverall: f.RatingOverall,
			Timestamp:     f.Timestamp,
		})
	}

	// 날짜별 추이, 날짜 오름차순
	type trendBucket struct {
		count          int
		sumService     int
		sumFood        int
		sumCleanliness int
		sumOverall     int
	}
	trends := make(map[string]*trendBucket)
	for _, f := range feedbacks {
		date := f.Timestamp.Format("2006-01-02")
		b, ok := trends[date]
		if !ok {
			b = &trendBucket{}
			trends[date] = b
		}
		b.count++
		b.sumService += ratingOrZero(f.RatingService)
		b.sumFood += ratingOrZero(f.RatingFood)
		b.sumCleanliness += ratingOrZero(f.RatingCleanliness)
		b.sumOverall += ratingOrZero(f.RatingOverall)
	}
	dates := make([]string, 0, len(trends))
	for date := range trends {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		b := trends[date]
		result.TimeTrends = append(result.TimeTrends, TimeTrend{
			Date:           date,
			AvgService:     round2(float64(b.sumService) / float64(b.count)),
			AvgFood:        round2(float64(b.sumFood) / float64(b.count)),
			AvgCleanliness: round2(float64(b.sumCleanliness) / float64(b.count)),
			AvgOverall:     round2(float64(b.sumOverall) / float64(b.count)),
			Count:          b.count,
		})
	}

	// 서비스 평점 분포: 존재하는 값만, 오름차순
	distribution := make(map[int]int)
	for _, f := range feedbacks {
		if f.RatingService != nil {
			distribution[*f.RatingService]++
		}
	}
	ratings := make([]int, 0, len(distribution))
	for rating := range distribution {
		ratings = append(ratings, rating)
	}
	sort.Ints(ratings)
	for _, rating := range ratings {
		count := distribution[rating]
		result.ServiceDistribution = append(result.ServiceDistribution, ServiceDistribution{
			Rating:     rating,
			Count:      count,
			Percentage: round2(float64(count) / float64(total) * 100),
		})
	}

	// 항목별 평균 (null은 0으로 합산, 분모는 전체 리뷰 수)
	var sumFood, sumService, sumCleanliness, sumValue, sumOverall int
	for _, f := range feedbacks {
		sumFood += ratingOrZero(f.RatingFood)
		sumService += ratingOrZero(f.RatingService)
		sumCleanliness += ratingOrZero(f.RatingCleanliness)
		sumValue += ratingOrZero(f.RatingValue)
		sumOverall += ratingOrZero(f.RatingOverall)
	}
	result.AverageRatings = AverageRatings{
		Food:        round2(float64(sumFood) / float64(total)),
		Service:     round2(float64(sumService) / float64(total)),
		Cleanliness: round2(float64(sumCleanliness) / float64(total)),
		Value:       round2(float64(sumValue) / float64(total)),
		Overall:     round2(float64(sumOverall) / float64(total)),
	}

	// 추천율: 응답한 리뷰 중 추천 비율 (미응답 제외)
	recommendYes, recommendAnswered := 0, 0
	for _, f := range feedbacks {
		if f.Recommend == nil {
			continue
		}
		recommendAnswered++
		if *f.Recommend {
			recommendYes++
		}
	}
	if recommendAnswered > 0 {
		result.RecommendationRate = round2(float64(recommendYes) / float64(recommendAnswered) * 100)
	}

	return result
}
