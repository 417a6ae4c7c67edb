package repository

import (
	"testing"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserRepoTest(t *testing.T) (*gorm.DB, UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	return testDB, NewUserRepository(testDB)
}

func createTestUser(t *testing.T, repo UserRepository, username, email string) *model.User {
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed",
		Role:         model.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	testDB, repo := setupUserRepoTest(t)

	createTestUser(t, repo, "foodie", "dup@example.com")

	err := repo.Create(&model.User{
		Username:     "other",
		Email:        "dup@example.com",
		PasswordHash: "hashed",
	})
	assert.Error(t, err)

	// 실패한 등록은 행을 남기지 않는다
	var count int64
	testDB.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_FindByEmailOrUsername(t *testing.T) {
	_, repo := setupUserRepoTest(t)

	created := createTestUser(t, repo, "foodie", "foodie@example.com")

	byEmail, err := repo.FindByEmailOrUsername("foodie@example.com", "nobody")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := repo.FindByEmailOrUsername("nobody@example.com", "foodie")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	_, err = repo.FindByEmailOrUsername("nobody@example.com", "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	testDB, repo := setupUserRepoTest(t)

	user := createTestUser(t, repo, "foodie", "foodie@example.com")
	restaurant := &model.Restaurant{Name: "국밥집", Status: model.RestaurantStatusApproved}
	require.NoError(t, testDB.Create(restaurant).Error)

	rating := 4
	feedback := &model.Feedback{
		RestaurantID:  restaurant.ID,
		UserID:        user.ID,
		RatingOverall: &rating,
		Comment:       "맛있어요",
	}
	require.NoError(t, testDB.Create(feedback).Error)
	require.NoError(t, testDB.Create(&model.Reply{FeedbackID: feedback.ID, UserID: user.ID, Message: "감사합니다"}).Error)
	require.NoError(t, testDB.Create(&model.Media{FeedbackID: feedback.ID, FilePath: "a.jpg", MediaType: model.MediaTypeImage}).Error)
	require.NoError(t, testDB.Create(&model.Notification{UserID: user.ID, Message: "알림"}).Error)
	require.NoError(t, testDB.Create(&model.SavedPlace{UserID: user.ID, RestaurantID: restaurant.ID}).Error)
	require.NoError(t, testDB.Create(&model.Gamification{UserID: user.ID, Points: 10}).Error)

	require.NoError(t, repo.Delete(user.ID))

	// 사용자와 하위 레코드가 모두 사라진다
	for _, entity := range []interface{}{
		&model.User{}, &model.Feedback{}, &model.Reply{}, &model.Media{},
		&model.Notification{}, &model.SavedPlace{}, &model.Gamification{},
	} {
		var count int64
		testDB.Model(entity).Count(&count)
		assert.Equal(t, int64(0), count, "%T should be empty", entity)
	}

	// 식당은 그대로 남는다
	var restaurantCount int64
	testDB.Model(&model.Restaurant{}).Count(&restaurantCount)
	assert.Equal(t, int64(1), restaurantCount)
}
