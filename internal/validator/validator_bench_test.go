package validator

import (
	"testing"

	"blog-backend/internal/domain"
)

func BenchmarkValidateSignUp(b *testing.B) {
	v := NewValidator()
	s := &SignUp{Email: "user@example.com", Password: "secret123", Username: "writer"}
	for i := 0; i < b.N; i++ {
		_ = v.ValidateSignUp(s)
	}
}

func BenchmarkValidatePost(b *testing.B) {
	v := NewValidator()
	p := &domain.PostInput{
		Title:   "Benchmark",
		Slug:    "benchmark",
		Content: "body",
		Status:  "draft",
	}
	for i := 0; i < b.N; i++ {
		_ = v.ValidatePost(p)
	}
}
