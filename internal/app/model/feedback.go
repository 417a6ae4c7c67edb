package model

import (
	"fmt"
	"time"
)

// Feedback 식당 리뷰 모델. 다섯 개 평점 항목은 모두 선택 입력이며
// 값이 있으면 1~5 정수만 허용한다
type Feedback struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`                 // 식당 ID
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"` // 식당 정보
	UserID       uint        `gorm:"not null;index" json:"user_id"`                       // 작성자 ID
	User         *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`             // 작성자 정보

	// 평점 (1-5, null 허용)
	RatingFood        *int `json:"rating_food"`        // 음식
	RatingService     *int `json:"rating_service"`     // 서비스
	RatingCleanliness *int `json:"rating_cleanliness"` // 청결/분위기
	RatingValue       *int `json:"rating_value"`       // 가성비
	RatingOverall     *int `json:"rating_overall"`     // 종합

	Recommend *bool  `json:"recommend"`                        // 추천 여부 (미응답 null)
	Comment   string `gorm:"type:text" json:"comment"`         // 리뷰 내용
	Anonymous bool   `gorm:"default:false" json:"anonymous"`   // 익명 작성 여부
	Timestamp time.Time `gorm:"index" json:"timestamp"`        // 작성 시각
	Likes     int    `gorm:"default:0" json:"likes"`           // 좋아요 수

	// 관계
	Tags    []Tag    `gorm:"many2many:feedback_tags;" json:"tags,omitempty"` // 리뷰 태그
	Replies []Reply  `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
	Media   []Media  `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// InvalidRatingError 평점 범위를 벗어난 항목을 알려주는 검증 에러
type InvalidRatingError struct {
	Field string // 위반한 평점 필드명 (예: "rating_food")
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("%s must be an integer between 1 and 5", e.Field)
}

// ValidateRatings 다섯 개 평점 항목을 검증한다. null은 허용,
// 값이 있으면 1~5 범위만 허용. 위반 시 어느 필드인지 반환
func (f *Feedback) ValidateRatings() error {
	fields := []struct {
		name  string
		value *int
	}{
		{"rating_food", f.RatingFood},
		{"rating_service", f.RatingService},
		{"rating_cleanliness", f.RatingCleanliness},
		{"rating_value", f.RatingValue},
		{"rating_overall", f.RatingOverall},
	}

	for _, field := range fields {
		if field.value == nil {
			continue
		}
		if *field.value < 1 || *field.value > 5 {
			return &InvalidRatingError{Field: field.name}
		}
	}
	return nil
}
