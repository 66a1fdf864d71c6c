package utils

import "strings"

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeRole(role string) string {
	return strings.TrimSpace(role)
}

func NormalizeLanguageCode(code string) string {
	return strings.TrimSpace(code)
}
