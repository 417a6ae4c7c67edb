package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환.
// 보안상 민감한 정보는 숨기되, 사용자가 문제를 해결할 수 있는 정보 제공
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM 기본 에러
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. 데이터베이스 제약 조건 에러

	// 2-1. Unique constraint violation (PostgreSQL 23505, SQLite)
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower, context)
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ValidationInvalidID,
			Message: "참조하는 데이터가 존재하지 않습니다",
		}
	}

	// 2-3. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") &&
		strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "필수 항목이 누락되었습니다",
		}
	}

	// 3. 네트워크/연결 에러
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "외부 서비스 연결에 실패했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	// 4. 기본 내부 서버 오류
	return ErrorInfo{
		Code:    InternalServerError,
		Message: "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요",
	}
}

// ParseAndRespond 에러를 파싱해 바로 JSON 응답으로 내려보낸다
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

func parseDuplicateKeyError(errStrLower, context string) ErrorInfo {
	switch {
	case strings.Contains(errStrLower, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "이미 사용 중인 이메일입니다"}
	case strings.Contains(errStrLower, "username"):
		return ErrorInfo{Code: AuthUsernameExists, Message: "이미 사용 중인 사용자명입니다"}
	case strings.Contains(errStrLower, "saved"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "이미 저장한 식당입니다"}
	default:
		return ErrorInfo{Code: ResourceConflict, Message: "이미 존재하는 데이터입니다"}
	}
}

func getNotFoundMessage(context string) string {
	switch context {
	case "user":
		return "사용자를 찾을 수 없습니다"
	case "restaurant":
		return "식당을 찾을 수 없습니다"
	case "feedback":
		return "리뷰를 찾을 수 없습니다"
	case "menu_item":
		return "메뉴 항목을 찾을 수 없습니다"
	case "subscription":
		return "구독 플랜을 찾을 수 없습니다"
	case "notification":
		return "알림을 찾을 수 없습니다"
	default:
		return "요청한 데이터를 찾을 수 없습니다"
	}
}
