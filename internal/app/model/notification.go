package model

import (
	"time"
)

// Notification 사용자 알림
type Notification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`       // 알림 받을 사용자 ID
	Message   string    `gorm:"type:varchar(255)" json:"message"`    // 알림 내용
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`  // 읽음 여부
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
