package model

import (
	"time"
)

type UserRole string // 사용자 권한 타입

const (
	RoleUser  UserRole = "user"  // 일반 사용자 권한
	RoleAdmin UserRole = "admin" // 관리자 권한
)

// 구독 상태 값. 빈 문자열이면 해당 구독 없음
const (
	SubscriptionStatusPending = "pending" // 결제 대기
	SubscriptionStatusActive  = "active"  // 활성
)

type User struct {
	ID           uint     `gorm:"primarykey" json:"id"`                        // 사용자 ID
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`        // 사용자명
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`           // 이메일
	PasswordHash string   `gorm:"not null" json:"-"`                           // 비밀번호 해시
	Phone        string   `gorm:"type:varchar(30)" json:"phone"`               // 전화번호
	Role         UserRole `gorm:"type:varchar(20);default:'user'" json:"role"` // 권한
	IsActive     bool     `gorm:"default:true" json:"is_active"`               // 활성 계정 여부

	// 구독 상태 필드 (구독 플랜 이름과 1:1 매핑)
	PremiumListing   string `gorm:"type:varchar(20)" json:"premium_listing"`   // 프리미엄 등록
	NormalListing    string `gorm:"type:varchar(20)" json:"normal_listing"`    // 일반 등록
	SponsoredAds     string `gorm:"type:varchar(20)" json:"sponsored_ads"`     // 스폰서 광고
	PremiumAnalytics string `gorm:"type:varchar(20)" json:"premium_analytics"` // 프리미엄 분석
	ReviewContest    string `gorm:"type:varchar(20)" json:"review_contest"`    // 리뷰 콘테스트
	Subscription     string `gorm:"type:varchar(20)" json:"subscription"`      // 기본 구독

	LastLogin  *time.Time `json:"last_login,omitempty"`  // 마지막 로그인 시각
	LastLogout *time.Time `json:"last_logout,omitempty"` // 마지막 로그아웃 시각

	CreatedAt time.Time `json:"created_at"` // 생성 시각
	UpdatedAt time.Time `json:"updated_at"` // 수정 시각

	// 사용자 삭제 시 함께 삭제되는 하위 레코드
	Feedbacks     []Feedback     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"feedbacks,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SavedPlaces   []SavedPlace   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
