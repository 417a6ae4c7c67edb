package model

import (
	"time"
)

// MenuItem 식당 메뉴 항목
type MenuItem struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	RestaurantID uint    `gorm:"not null;index" json:"restaurant_id"` // 식당 ID
	Name         string  `gorm:"not null" json:"name"`                // 메뉴명
	Description  string  `gorm:"type:text" json:"description"`        // 설명
	Price        float64 `gorm:"not null" json:"price"`               // 가격 (0 이상)
	ImageBase64  string  `gorm:"type:text" json:"image_base64"`       // base64 인코딩 이미지

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
