package textutil

import (
	"math/rand/v2"
	"regexp"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var palette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16",
	"#22c55e", "#10b981", "#14b8a6", "#06b6d4", "#0ea5e9",
	"#3b82f6", "#6366f1", "#8b5cf6", "#a855f7", "#d946ef",
	"#ec4899", "#f43f5e",
}

// IsValidEmail performs a loose shape check on an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword reports whether a password meets the minimum length.
func IsStrongPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// RandomColor picks a tag colour from the fixed palette.
func RandomColor() string {
	return palette[rand.IntN(len(palette))]
}
