package model

import (
	"time"
)

// 모더레이션 조치 종류
const (
	ModerationActionDelete = "delete" // 리뷰 삭제
	ModerationActionHide   = "hide"   // 리뷰 숨김
)

// ModerationLog 관리자 조치 기록. 리뷰가 삭제되어도 기록은 남긴다
type ModerationLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FeedbackID uint      `gorm:"index" json:"feedback_id"`            // 대상 리뷰 ID
	Action     string    `gorm:"type:varchar(100)" json:"action"`     // 조치 (delete, hide, ...)
	Reason     string    `gorm:"type:varchar(255)" json:"reason"`     // 사유
	AdminID    uint      `gorm:"index" json:"admin_id"`               // 조치한 관리자 ID
	Timestamp  time.Time `json:"timestamp"`                           // 조치 시각
}

func (ModerationLog) TableName() string {
	return "moderation_logs"
}
