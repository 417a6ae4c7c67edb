package repository

import (
	"testing"

	"github.com/ikkim/matjip-backend/internal/app/model"
	"github.com/ikkim/matjip-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRestaurantRepoTest(t *testing.T) (*gorm.DB, RestaurantRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	return testDB, NewRestaurantRepository(testDB)
}

func TestRestaurantRepository_Search(t *testing.T) {
	_, repo := setupRestaurantRepoTest(t)

	require.NoError(t, repo.Create(&model.Restaurant{Name: "Seoul Kimchi House", Location: "Gangnam", Cuisine: "Korean"}))
	require.NoError(t, repo.Create(&model.Restaurant{Name: "Busan Fish Market", Location: "Haeundae", Cuisine: "Seafood"}))
	require.NoError(t, repo.Create(&model.Restaurant{Name: "Gangnam Sushi", Location: "Gangnam", Cuisine: "Japanese"}))

	tests := []struct {
		name      string
		filter    RestaurantFilter
		wantNames []string
	}{
		{
			name:      "Case-insensitive name substring",
			filter:    RestaurantFilter{Name: "kimchi"},
			wantNames: []string{"Seoul Kimchi House"},
		},
		{
			name:      "Location filter",
			filter:    RestaurantFilter{Location: "gangnam"},
			wantNames: []string{"Seoul Kimchi House", "Gangnam Sushi"},
		},
		{
			name:      "Filters are ANDed",
			filter:    RestaurantFilter{Location: "gangnam", Cuisine: "japanese"},
			wantNames: []string{"Gangnam Sushi"},
		},
		{
			name:      "Empty filter returns all",
			filter:    RestaurantFilter{},
			wantNames: []string{"Seoul Kimchi House", "Busan Fish Market", "Gangnam Sushi"},
		},
		{
			name:      "No match",
			filter:    RestaurantFilter{Name: "pizza"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := repo.Search(tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(results))
			for _, r := range results {
				names = append(names, r.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

func TestRestaurantRepository_DeleteCascades(t *testing.T) {
	testDB, repo := setupRestaurantRepoTest(t)

	user := &model.User{Username: "foodie", Email: "foodie@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(user).Error)

	restaurant := &model.Restaurant{Name: "국밥집"}
	require.NoError(t, repo.Create(restaurant))

	rating := 5
	feedback := &model.Feedback{
		RestaurantID:  restaurant.ID,
		UserID:        user.ID,
		RatingOverall: &rating,
		Tags:          []model.Tag{{Name: "혼밥"}},
	}
	require.NoError(t, testDB.Create(feedback).Error)
	require.NoError(t, testDB.Create(&model.Reply{FeedbackID: feedback.ID, UserID: user.ID, Message: "감사합니다"}).Error)
	require.NoError(t, testDB.Create(&model.Media{FeedbackID: feedback.ID, FilePath: "a.jpg", MediaType: model.MediaTypeImage}).Error)
	require.NoError(t, testDB.Create(&model.SavedPlace{UserID: user.ID, RestaurantID: restaurant.ID}).Error)
	require.NoError(t, testDB.Create(&model.MenuItem{RestaurantID: restaurant.ID, Name: "국밥", Price: 9000}).Error)

	require.NoError(t, repo.Delete(restaurant.ID))

	for _, entity := range []interface{}{
		&model.Restaurant{}, &model.Feedback{}, &model.Reply{},
		&model.Media{}, &model.SavedPlace{}, &model.MenuItem{},
	} {
		var count int64
		testDB.Model(entity).Count(&count)
		assert.Equal(t, int64(0), count, "%T should be empty", entity)
	}

	// 리뷰 작성자와 태그 카탈로그는 남는다
	var userCount, tagCount int64
	testDB.Model(&model.User{}).Count(&userCount)
	testDB.Model(&model.Tag{}).Count(&tagCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), tagCount)

	// 태그 연결 행은 지워진다
	var linkCount int64
	testDB.Table("feedback_tags").Count(&linkCount)
	assert.Equal(t, int64(0), linkCount)
}

func TestRestaurantRepository_FindByOwnerID(t *testing.T) {
	testDB, repo := setupRestaurantRepoTest(t)

	owner := &model.User{Username: "owner", Email: "owner@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(owner).Error)

	require.NoError(t, repo.Create(&model.Restaurant{Name: "내 식당", OwnerID: &owner.ID}))
	require.NoError(t, repo.Create(&model.Restaurant{Name: "주인 없는 식당"}))

	mine, err := repo.FindByOwnerID(owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "내 식당", mine[0].Name)
}
