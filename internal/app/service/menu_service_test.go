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

func floatPtr(v float64) *float64 {
	return &v
}

func setupMenuServiceTest(t *testing.T) (*gorm.DB, MenuService, *model.User, *model.User, *model.Restaurant) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	owner := &model.User{Username: "owner", Email: "owner@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(owner).Error)
	stranger := &model.User{Username: "stranger", Email: "stranger@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(stranger).Error)
	restaurant := &model.Restaurant{Name: "칼국수집", OwnerID: &owner.ID}
	require.NoError(t, testDB.Create(restaurant).Error)

	service := NewMenuService(
		repository.NewMenuItemRepository(testDB),
		repository.NewRestaurantRepository(testDB),
	)
	return testDB, service, owner, stranger, restaurant
}

func TestMenuService_Add(t *testing.T) {
	_, service, owner, _, restaurant := setupMenuServiceTest(t)

	item, err := service.Add(restaurant.ID, owner.ID, MenuItemInput{
		Name:  "바지락 칼국수",
		Price: 9000,
	})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, restaurant.ID, item.RestaurantID)

	items, err := service.ListByRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMenuService_AddNegativePrice(t *testing.T) {
	testDB, service, owner, _, restaurant := setupMenuServiceTest(t)

	_, err := service.Add(restaurant.ID, owner.ID, MenuItemInput{Name: "칼국수", Price: -1000})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	var count int64
	testDB.Model(&model.MenuItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMenuService_AddNotOwner(t *testing.T) {
	_, service, _, stranger, restaurant := setupMenuServiceTest(t)

	_, err := service.Add(restaurant.ID, stranger.ID, MenuItemInput{Name: "칼국수", Price: 9000})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestMenuService_Update(t *testing.T) {
	_, service, owner, stranger, restaurant := setupMenuServiceTest(t)

	item, err := service.Add(restaurant.ID, owner.ID, MenuItemInput{
		Name:        "바지락 칼국수",
		Description: "바지락이 듬뿍",
		Price:       9000,
	})
	require.NoError(t, err)

	_, err = service.Update(item.ID, stranger.ID, MenuItemUpdateInput{Price: floatPtr(500)})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = service.Update(item.ID, owner.ID, MenuItemUpdateInput{Price: floatPtr(-500)})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	// 빈 이름/설명은 유지
	updated, err := service.Update(item.ID, owner.ID, MenuItemUpdateInput{Price: floatPtr(9500)})
	require.NoError(t, err)
	assert.Equal(t, "바지락 칼국수", updated.Name)
	assert.Equal(t, "바지락이 듬뿍", updated.Description)
	assert.Equal(t, 9500.0, updated.Price)
}

func TestMenuService_UpdatePreservesOmittedPrice(t *testing.T) {
	testDB, service, owner, _, restaurant := setupMenuServiceTest(t)

	item, err := service.Add(restaurant.ID, owner.ID, MenuItemInput{Name: "바지락 칼국수", Price: 9000})
	require.NoError(t, err)

	// 가격 없이 이름만 고치면 가격은 그대로 남는다
	updated, err := service.Update(item.ID, owner.ID, MenuItemUpdateInput{Name: "얼큰 칼국수"})
	require.NoError(t, err)
	assert.Equal(t, "얼큰 칼국수", updated.Name)
	assert.Equal(t, 9000.0, updated.Price)

	var persisted model.MenuItem
	require.NoError(t, testDB.First(&persisted, item.ID).Error)
	assert.Equal(t, 9000.0, persisted.Price)
}

func TestMenuService_Delete(t *testing.T) {
	testDB, service, owner, stranger, restaurant := setupMenuServiceTest(t)

	item, err := service.Add(restaurant.ID, owner.ID, MenuItemInput{Name: "칼국수", Price: 9000})
	require.NoError(t, err)

	err = service.Delete(item.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, service.Delete(item.ID, owner.ID))

	var count int64
	testDB.Model(&model.MenuItem{}).Count(&count)
	assert.Equal(t, int64(0), count)

	err = service.Delete(item.ID, owner.ID)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}
