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

func setupRestaurantServiceTest(t *testing.T) (*gorm.DB, RestaurantService, *model.User, *model.User) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	owner := &model.User{Username: "owner", Email: "owner@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(owner).Error)
	stranger := &model.User{Username: "stranger", Email: "stranger@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(stranger).Error)

	service := NewRestaurantService(repository.NewRestaurantRepository(testDB))
	return testDB, service, owner, stranger
}

func TestRestaurantService_Create(t *testing.T) {
	_, service, owner, _ := setupRestaurantServiceTest(t)

	restaurant, err := service.Create(owner.ID, RestaurantInput{
		Name:     "할매국밥",
		Location: "부산 중구",
		Cuisine:  "한식",
	})
	require.NoError(t, err)

	assert.NotZero(t, restaurant.ID)
	require.NotNil(t, restaurant.OwnerID)
	assert.Equal(t, owner.ID, *restaurant.OwnerID)
	// 신규 등록 식당은 승인 대기 상태
	assert.Equal(t, model.RestaurantStatusPending, restaurant.Status)
}

func TestRestaurantService_UpdateNotOwner(t *testing.T) {
	testDB, service, owner, stranger := setupRestaurantServiceTest(t)

	restaurant, err := service.Create(owner.ID, RestaurantInput{Name: "할매국밥", Location: "부산"})
	require.NoError(t, err)

	_, err = service.Update(restaurant.ID, stranger.ID, RestaurantInput{Name: "탈취됨"})
	assert.ErrorIs(t, err, ErrNotOwner)

	var unchanged model.Restaurant
	require.NoError(t, testDB.First(&unchanged, restaurant.ID).Error)
	assert.Equal(t, "할매국밥", unchanged.Name)
}

func TestRestaurantService_UpdatePartialFields(t *testing.T) {
	_, service, owner, _ := setupRestaurantServiceTest(t)

	restaurant, err := service.Create(owner.ID, RestaurantInput{
		Name:     "할매국밥",
		Location: "부산",
		Cuisine:  "한식",
	})
	require.NoError(t, err)

	// 빈 필드는 기존 값을 유지한다
	updated, err := service.Update(restaurant.ID, owner.ID, RestaurantInput{Location: "부산 서구"})
	require.NoError(t, err)
	assert.Equal(t, "할매국밥", updated.Name)
	assert.Equal(t, "부산 서구", updated.Location)
	assert.Equal(t, "한식", updated.Cuisine)
}

func TestRestaurantService_DeleteNotOwner(t *testing.T) {
	testDB, service, owner, stranger := setupRestaurantServiceTest(t)

	restaurant, err := service.Create(owner.ID, RestaurantInput{Name: "할매국밥"})
	require.NoError(t, err)

	err = service.Delete(restaurant.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	var count int64
	testDB.Model(&model.Restaurant{}).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, service.Delete(restaurant.ID, owner.ID))
	testDB.Model(&model.Restaurant{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRestaurantService_Claim(t *testing.T) {
	testDB, service, owner, stranger := setupRestaurantServiceTest(t)

	// 소유자 없는 식당
	restaurant := &model.Restaurant{Name: "주인없는집", Status: model.RestaurantStatusApproved}
	require.NoError(t, testDB.Create(restaurant).Error)

	claimed, err := service.Claim(restaurant.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.OwnerID)
	assert.Equal(t, owner.ID, *claimed.OwnerID)

	// 현재 정책상 기존 소유자가 있어도 덮어쓴다
	claimed, err = service.Claim(restaurant.ID, stranger.ID)
	require.NoError(t, err)
	assert.Equal(t, stranger.ID, *claimed.OwnerID)
}

func TestRestaurantService_GetByIDNotFound(t *testing.T) {
	_, service, _, _ := setupRestaurantServiceTest(t)

	_, err := service.GetByID(9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
