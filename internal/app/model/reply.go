package model

import (
	"time"
)

// Reply 리뷰에 대한 답글 (주로 식당 소유자가 작성)
type Reply struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FeedbackID uint      `gorm:"not null;index" json:"feedback_id"`    // 리뷰 ID
	UserID     uint      `gorm:"not null;index" json:"user_id"`        // 작성자 ID
	Message    string    `gorm:"type:text" json:"message"`             // 답글 내용
	IsPrivate  bool      `gorm:"default:false" json:"is_private"`      // 비공개 답글 여부
	Timestamp  time.Time `json:"timestamp"`                            // 작성 시각
}

func (Reply) TableName() string {
	return "replies"
}
