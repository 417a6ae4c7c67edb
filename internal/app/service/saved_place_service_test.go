package service

import (
	"testing"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/app/repository"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSavedPlaceTest(t *testing.T) (*gorm.DB, SavedPlaceService, *model.User, *model.Restaurant) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	user := &model.User{Username: "foodie", Email: "foodie@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(user).Error)
	restaurant := &model.Restaurant{Name: "분식집", Location: "서울"}
	require.NoError(t, testDB.Create(restaurant).Error)

	service := NewSavedPlaceService(
		repository.NewSavedPlaceRepository(testDB),
		repository.NewRestaurantRepository(testDB),
	)
	return testDB, service, user, restaurant
}

func TestSavedPlaceService_Save(t *testing.T) {
	testDB, service, user, restaurant := setupSavedPlaceTest(t)

	created, err := service.Save(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// 중복 저장은 에러 없이 created=false, 행은 하나만 유지
	created, err = service.Save(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	testDB.Model(&model.SavedPlace{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSavedPlaceService_SaveRestaurantNotFound(t *testing.T) {
	_, service, user, _ := setupSavedPlaceTest(t)

	_, err := service.Save(user.ID, 9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestSavedPlaceService_Unsave(t *testing.T) {
	testDB, service, user, restaurant := setupSavedPlaceTest(t)

	_, err := service.Save(user.ID, restaurant.ID)
	require.NoError(t, err)

	require.NoError(t, service.Unsave(user.ID, restaurant.ID))

	var count int64
	testDB.Model(&model.SavedPlace{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// 저장한 적 없는 식당
	err = service.Unsave(user.ID, restaurant.ID)
	assert.ErrorIs(t, err, ErrSavedPlaceNotFound)
}

func TestSavedPlaceService_List(t *testing.T) {
	testDB, service, user, restaurant := setupSavedPlaceTest(t)

	other := &model.Restaurant{Name: "국수집", Location: "부산"}
	require.NoError(t, testDB.Create(other).Error)

	_, err := service.Save(user.ID, restaurant.ID)
	require.NoError(t, err)
	_, err = service.Save(user.ID, other.ID)
	require.NoError(t, err)

	places, err := service.List(user.ID)
	require.NoError(t, err)
	require.Len(t, places, 2)
	// 식당 정보가 함께 로드된다
	assert.NotEmpty(t, places[0].Restaurant.Name)
	assert.NotEmpty(t, places[1].Restaurant.Name)
}
