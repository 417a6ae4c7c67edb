package util

import (
	"golang.org/x/crypto/bcrypt"
)

// 회원 비밀번호와 OAuth 자동 가입 시의 임시 비밀번호에 공통 적용
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
