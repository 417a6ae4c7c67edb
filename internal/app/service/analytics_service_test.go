package service

import (
	"context"
	"testing"
	"time"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type analyticsFixture struct {
	db               *gorm.DB
	analyticsService AnalyticsService
	author           *model.User
	owner            *model.User
	restaurant       *model.Restaurant
}

func setupAnalyticsTest(t *testing.T) *analyticsFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	author := &model.User{Username: "foodie", Email: "foodie@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(author).Error)
	owner := &model.User{Username: "owner", Email: "owner@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(owner).Error)
	restaurant := &model.Restaurant{Name: "국밥집", OwnerID: &owner.ID}
	require.NoError(t, testDB.Create(restaurant).Error)

	feedbackRepo := repository.NewFeedbackRepository(testDB)
	restaurantRepo := repository.NewRestaurantRepository(testDB)

	return &analyticsFixture{
		db: testDB,
		// 캐시 클라이언트 없이 동작 (매번 계산)
		analyticsService: NewAnalyticsService(feedbackRepo, restaurantRepo, nil),
		author:           author,
		owner:            owner,
		restaurant:       restaurant,
	}
}

func (f *analyticsFixture) addFeedback(t *testing.T, feedback *model.Feedback) {
	feedback.RestaurantID = f.restaurant.ID
	feedback.UserID = f.author.ID
	if feedback.Timestamp.IsZero() {
		feedback.Timestamp = time.Now()
	}
	require.NoError(t, f.db.Create(feedback).Error)
}

func TestAnalyticsService_AverageRating(t *testing.T) {
	f := setupAnalyticsTest(t)

	// 리뷰가 없으면 평균은 nil
	avg, err := f.analyticsService.AverageRating(f.restaurant.ID)
	require.NoError(t, err)
	assert.Nil(t, avg)

	for _, rating := range []int{4, 5, 3} {
		r := rating
		f.addFeedback(t, &model.Feedback{RatingOverall: &r})
	}

	avg, err = f.analyticsService.AverageRating(f.restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.Equal(t, 4.0, *avg)
}

func TestAnalyticsService_AverageRatingCountsNilAsZero(t *testing.T) {
	f := setupAnalyticsTest(t)

	r := 4
	f.addFeedback(t, &model.Feedback{RatingOverall: &r})
	// 종합 평점 없는 리뷰도 분모에 들어간다
	f.addFeedback(t, &model.Feedback{Comment: "평점 없음"})

	avg, err := f.analyticsService.AverageRating(f.restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.Equal(t, 2.0, *avg)
}

func TestAnalyticsService_PremiumAnalyticsEmptyWindow(t *testing.T) {
	f := setupAnalyticsTest(t)

	// 윈도우 밖의 오래된 리뷰
	r := 5
	f.addFeedback(t, &model.Feedback{
		RatingOverall: &r,
		Comment:       "옛날 리뷰",
		Timestamp:     time.Now().AddDate(0, 0, -60),
	})

	analytics, err := f.analyticsService.PremiumAnalytics(context.Background(), f.restaurant.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 0, analytics.TotalFeedbacks)
	assert.Equal(t, 0.0, analytics.LowServicePercentage)
	assert.Equal(t, 0.0, analytics.RecommendationRate)
	assert.Empty(t, analytics.Suggestions)
	assert.Empty(t, analytics.TimeTrends)
	assert.Empty(t, analytics.ServiceDistribution)
	assert.Equal(t, 0.0, analytics.AverageRatings.Overall)
}

func TestAnalyticsService_PremiumAnalyticsRestaurantNotFound(t *testing.T) {
	f := setupAnalyticsTest(t)

	_, err := f.analyticsService.PremiumAnalytics(context.Background(), 9999, 30)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestAnalyticsService_RecommendationRate(t *testing.T) {
	f := setupAnalyticsTest(t)

	// 추천 true 2건, false 1건, 미응답 1건 -> 66.67
	f.addFeedback(t, &model.Feedback{Recommend: boolPtr(true)})
	f.addFeedback(t, &model.Feedback{Recommend: boolPtr(true)})
	f.addFeedback(t, &model.Feedback{Recommend: boolPtr(false)})
	f.addFeedback(t, &model.Feedback{Comment: "추천 미응답"})

	analytics, err := f.analyticsService.PremiumAnalytics(context.Background(), f.restaurant.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 66.67, analytics.RecommendationRate)
	assert.Equal(t, 4, analytics.TotalFeedbacks)
}

func TestAnalyticsService_PremiumAnalyticsDetail(t *testing.T) {
	f := setupAnalyticsTest(t)

	now := time.Now()
	addRated := func(service, food int, comment string, ts time.Time) {
		s, fd := service, food
		f.addFeedback(t, &model.Feedback{
			RatingService: &s,
			RatingFood:    &fd,
			Comment:       comment,
			Timestamp:     ts,
		})
	}

	addRated(1, 4, "서비스가 느려요", now.AddDate(0, 0, -2))
	addRated(2, 5, "", now.AddDate(0, 0, -2))
	addRated(5, 5, "최고예요", now.AddDate(0, 0, -1))
	addRated(5, 3, "또 올게요", now)

	analytics, err := f.analyticsService.PremiumAnalytics(context.Background(), f.restaurant.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 4, analytics.TotalFeedbacks)

	// 서비스 평점 1~2점 비율: 2/4
	assert.Equal(t, 50.0, analytics.LowServicePercentage)

	// 빈 코멘트는 제안에서 빠지고, 최신순이다
	require.Len(t, analytics.Suggestions, 3)
	assert.Equal(t, "또 올게요", analytics.Suggestions[0].Comment)
	assert.Equal(t, "서비스가 느려요", analytics.Suggestions[2].Comment)

	// 날짜별 추이는 날짜 오름차순
	require.Len(t, analytics.TimeTrends, 3)
	assert.Equal(t, 2, analytics.TimeTrends[0].Count)
	assert.Equal(t, 1.5, analytics.TimeTrends[0].AvgService)
	assert.True(t, analytics.TimeTrends[0].Date < analytics.TimeTrends[1].Date)

	// 분포는 존재하는 평점 값만, 오름차순
	require.Len(t, analytics.ServiceDistribution, 3)
	assert.Equal(t, 1, analytics.ServiceDistribution[0].Rating)
	assert.Equal(t, 25.0, analytics.ServiceDistribution[0].Percentage)
	assert.Equal(t, 5, analytics.ServiceDistribution[2].Rating)
	assert.Equal(t, 2, analytics.ServiceDistribution[2].Count)
	assert.Equal(t, 50.0, analytics.ServiceDistribution[2].Percentage)

	// 항목별 평균 (null은 0으로 합산)
	assert.Equal(t, 3.25, analytics.AverageRatings.Service)
	assert.Equal(t, 4.25, analytics.AverageRatings.Food)
	assert.Equal(t, 0.0, analytics.AverageRatings.Overall)
}

func TestAnalyticsService_MonthlyStats(t *testing.T) {
	f := setupAnalyticsTest(t)

	jan := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	addMonthly := func(food int, ts time.Time) {
		fd := food
		f.addFeedback(t, &model.Feedback{RatingFood: &fd, Timestamp: ts})
	}
	addMonthly(4, jan)
	addMonthly(2, jan)
	addMonthly(5, mar)

	stats, err := f.analyticsService.MonthlyStats(f.owner.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// 월 오름차순
	assert.Equal(t, 1, stats[0].Month)
	assert.Equal(t, 2, stats[0].ReviewCount)
	assert.Equal(t, 3.0, stats[0].AvgFood)
	assert.Equal(t, 3, stats[1].Month)
	assert.Equal(t, 1, stats[1].ReviewCount)
	assert.Equal(t, 5.0, stats[1].AvgFood)

	// 식당이 없는 소유자는 빈 통계
	empty, err := f.analyticsService.MonthlyStats(f.author.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
