package repository

import (
	"testing"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSavedPlaceRepoTest(t *testing.T) (*gorm.DB, SavedPlaceRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	return testDB, NewSavedPlaceRepository(testDB)
}

func TestSavedPlaceRepository_UniquePair(t *testing.T) {
	testDB, repo := setupSavedPlaceRepoTest(t)

	user := &model.User{Username: "foodie", Email: "foodie@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(user).Error)
	restaurant := &model.Restaurant{Name: "국밥집"}
	require.NoError(t, testDB.Create(restaurant).Error)

	require.NoError(t, repo.Create(&model.SavedPlace{UserID: user.ID, RestaurantID: restaurant.ID}))

	// (user, restaurant) 쌍은 DB 수준에서도 유일하다
	err := repo.Create(&model.SavedPlace{UserID: user.ID, RestaurantID: restaurant.ID})
	assert.Error(t, err)

	var count int64
	testDB.Model(&model.SavedPlace{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSavedPlaceRepository_Delete(t *testing.T) {
	testDB, repo := setupSavedPlaceRepoTest(t)

	user := &model.User{Username: "foodie", Email: "foodie@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(user).Error)
	restaurant := &model.Restaurant{Name: "국밥집"}
	require.NoError(t, testDB.Create(restaurant).Error)

	require.NoError(t, repo.Create(&model.SavedPlace{UserID: user.ID, RestaurantID: restaurant.ID}))

	rowsAffected, err := repo.Delete(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	// 저장하지 않은 식당 삭제는 0행
	rowsAffected, err = repo.Delete(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rowsAffected)
}

func TestSavedPlaceRepository_FindByUserID(t *testing.T) {
	testDB, repo := setupSavedPlaceRepoTest(t)

	user := &model.User{Username: "foodie", Email: "foodie@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(user).Error)
	restaurant := &model.Restaurant{Name: "국밥집", Location: "서울"}
	require.NoError(t, testDB.Create(restaurant).Error)

	require.NoError(t, repo.Create(&model.SavedPlace{UserID: user.ID, RestaurantID: restaurant.ID}))

	savedPlaces, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, savedPlaces, 1)
	require.NotNil(t, savedPlaces[0].Restaurant)
	assert.Equal(t, "국밥집", savedPlaces[0].Restaurant.Name)
}
