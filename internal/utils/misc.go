package utils

import (
	"crypto/rand"
	"encoding/base64"
)

func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func GenerateRandomStringURLSafe(n int) (string, error) {
	b, err := GenerateRandomBytes(n)
	return base64.RawURLEncoding.EncodeToString(b), err
}

func BoolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
