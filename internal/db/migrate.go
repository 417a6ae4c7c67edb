package db

import (
	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Restaurant{},
		&model.Feedback{},
		&model.Reply{},
		&model.Media{},
		&model.MenuItem{},
		&model.SavedPlace{},
		&model.Subscription{},
		&model.Tag{},
		&model.Notification{},
		&model.Gamification{},
		&model.ModerationLog{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	// 구독 플랜 카탈로그 생성 (업그레이드에 필요)
	if err := seedSubscriptions(); err != nil {
		logger.Error("Failed to seed subscriptions", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedSubscriptions 구독 플랜 기본 데이터 생성.
// 플랜 이름은 정규화를 거쳐 User의 구독 상태 필드와 매핑된다
func seedSubscriptions() error {
	var count int64
	if err := DB.Model(&model.Subscription{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Subscriptions already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	plans := []model.Subscription{
		{Name: "Premium Listing", Description: "검색 상단 노출", Price: "49000"},
		{Name: "Normal Listing", Description: "기본 등록", Price: "9000"},
		{Name: "Sponsored Ads", Description: "스폰서 광고 슬롯", Price: "99000"},
		{Name: "Premium Analytics", Description: "리뷰 분석 대시보드", Price: "29000"},
		{Name: "Review Contest", Description: "리뷰 이벤트 개최", Price: "19000"},
	}

	if err := DB.Create(&plans).Error; err != nil {
		return err
	}

	logger.Info("Subscription plans seeded", map[string]interface{}{
		"count": len(plans),
	})
	return nil
}
