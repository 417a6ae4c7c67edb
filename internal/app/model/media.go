package model

// 미디어 종류
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media 리뷰에 첨부된 이미지/영상
type Media struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	FeedbackID uint   `gorm:"not null;index" json:"feedback_id"`     // 리뷰 ID
	FilePath   string `gorm:"type:varchar(200)" json:"file_path"`    // 저장된 파일 URL
	MediaType  string `gorm:"type:varchar(10)" json:"media_type"`    // "image" 또는 "video"
}

func (Media) TableName() string {
	return "media"
}
