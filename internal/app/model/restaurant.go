package model

import (
	"time"
)

// 식당 노출 상태
const (
	RestaurantStatusPending  = "pending"  // 등록 심사 대기
	RestaurantStatusApproved = "approved" // 노출 중
)

type Restaurant struct {
	ID         uint   `gorm:"primarykey" json:"id"`                           // 식당 ID
	Name       string `gorm:"not null;index" json:"name"`                     // 식당명
	Location   string `gorm:"type:varchar(200);index" json:"location"`        // 위치
	Cuisine    string `gorm:"type:varchar(100);index" json:"cuisine"`         // 요리 종류
	Contact    string `gorm:"type:varchar(100)" json:"contact"`               // 연락처
	Image      string `gorm:"type:text" json:"image"`                         // 대표 이미지 URL
	OwnerID    *uint  `gorm:"index" json:"owner_id"`                          // 소유자 ID (미확인 식당은 null)
	Owner      *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`      // 소유자 정보
	Menu       string `gorm:"type:text" json:"menu"`                          // 메뉴 설명 텍스트
	Hours      string `gorm:"type:varchar(100)" json:"hours"`                 // 영업 시간
	IsFeatured bool   `gorm:"default:false" json:"is_featured"`               // 추천 식당 여부
	Status     string `gorm:"type:varchar(100);default:'pending'" json:"status"` // 노출 상태

	CreatedAt time.Time `json:"created_at"` // 생성 시각
	UpdatedAt time.Time `json:"updated_at"` // 수정 시각

	// 식당 삭제 시 함께 삭제되는 하위 레코드
	Feedbacks   []Feedback   `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"feedbacks,omitempty"`
	SavedPlaces []SavedPlace `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	MenuItems   []MenuItem   `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"menu_items,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
