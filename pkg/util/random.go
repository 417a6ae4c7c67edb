package util

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomString returns a hex-encoded random string of n bytes.
// 소셜 로그인 자동 가입 계정의 대체 비밀번호 생성에 사용
func RandomString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
