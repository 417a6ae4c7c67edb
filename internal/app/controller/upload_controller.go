package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/matjip-backend/internal/errors"
	"github.com/ikkim/matjip-backend/internal/middleware"
	"github.com/ikkim/matjip-backend/internal/storage"
	"github.com/ikkim/matjip-backend/pkg/logger"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // Optional: defaults to "feedback-media"
}

// GeneratePresignedURL generates a presigned URL for uploading
// feedback media or restaurant images to S3
// POST /api/v1/upload/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid presigned URL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "파일 이름과 형식은 필수입니다")
		return
	}

	// 리뷰 미디어는 이미지와 영상을 허용한다
	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"video/mp4",
		"video/quicktime",
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedTypes); err != nil {
		log.Warn("Invalid content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "지원하지 않는 파일 형식입니다")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "feedback-media"
	}

	response, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType, folder)
	if err != nil {
		logger.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
			"folder":       folder,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "업로드 URL 생성에 실패했습니다")
		return
	}

	log.Info("Presigned URL generated successfully", map[string]interface{}{
		"filename": req.Filename,
		"folder":   folder,
		"key":      response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
