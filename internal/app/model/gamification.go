package model

import (
	"time"

	"github.com/lib/pq"
)

// Gamification 사용자 활동 포인트/배지
type Gamification struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"` // 사용자 ID

	Points int            `gorm:"default:0" json:"points"`                          // 누적 포인트
	Badges pq.StringArray `gorm:"type:text[];default:'{}'" json:"badges"` // 획득한 배지 목록

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Gamification) TableName() string {
	return "gamification"
}
