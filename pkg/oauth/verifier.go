package oauth

import (
	"context"
	"errors"
)

var ErrTokenVerificationFailed = errors.New("token verification failed")

// Identity 외부 제공자가 검증해 준 사용자 신원
type Identity struct {
	Email string // 검증된 이메일
	Name  string // 표시 이름 (없으면 이메일)
}

// Verifier 소셜 로그인 토큰을 검증하고 신원을 반환한다
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
