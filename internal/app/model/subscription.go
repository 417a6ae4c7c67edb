package model

import (
	"time"
)

// Subscription 구독 플랜 카탈로그. 플랜 이름은 정규화 후
// User의 구독 상태 필드 하나와 매핑된다
type Subscription struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(200);not null" json:"name"` // 플랜 이름 (예: "Premium Listing")
	Description string `gorm:"type:varchar(200)" json:"description"`   // 설명
	Price       string `gorm:"type:varchar(200)" json:"price"`         // 표시 가격

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
