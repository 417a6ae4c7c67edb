package model

import (
	"time"
)

// SavedPlace 사용자의 식당 즐겨찾기. (user_id, restaurant_id) 쌍은 유일
type SavedPlace struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_saved_user_restaurant,unique" json:"user_id"`       // 사용자 ID
	RestaurantID uint      `gorm:"not null;index:idx_saved_user_restaurant,unique" json:"restaurant_id"` // 식당 ID
	CreatedAt    time.Time `json:"created_at"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"` // 식당 정보
}

func (SavedPlace) TableName() string {
	return "saved_places"
}
