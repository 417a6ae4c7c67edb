package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 사용자명/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // 이메일 중복
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"     // 사용자명 중복
	AuthAccountInactive    = "AUTH_ACCOUNT_INACTIVE"    // 비활성 계정
	AuthOAuthFailed        = "AUTH_OAUTH_FAILED"        // 소셜 로그인 토큰 검증 실패

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"  // 접근 권한 없음
	AuthzOwnerOnly = "AUTHZ_OWNER_ONLY" // 소유자만 가능
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // 잘못된 ID
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // 범위 초과
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 식당 (RESTAURANT_) ====================
	RestaurantNotFound = "RESTAURANT_NOT_FOUND" // 식당 없음

	// ==================== 리뷰 (FEEDBACK_) ====================
	FeedbackNotFound      = "FEEDBACK_NOT_FOUND"       // 리뷰 없음
	FeedbackInvalidRating = "FEEDBACK_INVALID_RATING"  // 잘못된 평점

	// ==================== 메뉴 (MENU_) ====================
	MenuItemNotFound     = "MENU_ITEM_NOT_FOUND"     // 메뉴 항목 없음
	MenuItemInvalidPrice = "MENU_ITEM_INVALID_PRICE" // 잘못된 가격

	// ==================== 구독 (SUBSCRIPTION_) ====================
	SubscriptionNotFound    = "SUBSCRIPTION_NOT_FOUND"     // 구독 플랜 없음
	SubscriptionInvalidName = "SUBSCRIPTION_INVALID_NAME"  // 매핑되지 않는 플랜 이름

	// ==================== 알림 (NOTIFICATION_) ====================
	NotificationNotFound = "NOTIFICATION_NOT_FOUND" // 알림 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
)
