package model

import (
	"time"
)

// Tag 리뷰에 연결할 수 있는 태그
// 리뷰와 다대다 관계 (feedback_tags)
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 태그 이름 (예: "혼밥", "분위기 좋은")
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}
