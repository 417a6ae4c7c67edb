package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 모든 핸들러가 공유하는 에러 응답 형태.
// 컨트롤러는 서비스의 센티널 에러를 여기 헬퍼들로 매핑한다
type ErrorResponse struct {
	Error   string `json:"error"`   // 에러 코드 (codes.go, 클라이언트 분기용)
	Message string `json:"message"` // 사용자에게 보여질 한글 메시지
}

// RespondWithError 상태 코드와 에러 코드로 에러 응답을 내려보낸다
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// 자주 사용하는 에러 응답 단축 함수들

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "로그인이 필요합니다"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "접근 권한이 없습니다"
	}
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// ValidationError 필드 단위 검증 실패 응답. 평점 범위 위반이나
// 회원가입 필수 필드 누락처럼 위반 필드를 짚어줘야 할 때 쓴다
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // 필드별 오류 메시지
}

func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:   ValidationInvalidInput,
		Message: "입력값이 올바르지 않습니다",
		Fields:  fields,
	})
}
