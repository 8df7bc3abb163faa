package validator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"blog-backend/internal/domain"
)

const (
	testPostID = "123e4567-e89b-12d3-a456-426614174000"
	testUserID = "123e4567-e89b-12d3-a456-426614174001"
)

func strPtr(s string) *string { return &s }

func TestValidatePost(t *testing.T) {
	v := NewValidator()
	now := time.Now()

	tests := []struct {
		name    string
		post    *domain.PostInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid draft post",
			post: &domain.PostInput{
				Title:   "Test Post",
				Slug:    "test-post",
				Content: "This is the post body.",
				Status:  "draft",
			},
			wantErr: false,
		},
		{
			name: "valid published post with timezone and tags",
			post: &domain.PostInput{
				Title:       "Test Post",
				Slug:        "test-post-2",
				Content:     "This is the post body.",
				Status:      "published",
				PublishedAt: &now,
				PublishedTZ: "Asia/Shanghai",
				Tags:        []string{testPostID},
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: &domain.PostInput{
				Slug:    "test-post",
				Content: "This is the post body.",
				Status:  "draft",
			},
			wantErr: true,
			errMsg:  "title",
		},
		{
			name: "invalid slug format",
			post: &domain.PostInput{
				Title:   "Test Post",
				Slug:    "Invalid Slug With Spaces",
				Content: "This is the post body.",
				Status:  "draft",
			},
			wantErr: true,
			errMsg:  "slug",
		},
		{
			name: "invalid status",
			post: &domain.PostInput{
				Title:   "Test Post",
				Slug:    "test-post",
				Content: "This is the post body.",
				Status:  "invalid",
			},
			wantErr: true,
			errMsg:  "status",
		},
		{
			name: "unknown timezone",
			post: &domain.PostInput{
				Title:       "Test Post",
				Slug:        "test-post",
				Content:     "This is the post body.",
				Status:      "draft",
				PublishedTZ: "Moon/Base",
			},
			wantErr: true,
			errMsg:  "published_tz",
		},
		{
			name: "malformed tag id",
			post: &domain.PostInput{
				Title:   "Test Post",
				Slug:    "test-post",
				Content: "This is the post body.",
				Status:  "draft",
				Tags:    []string{"not-a-uuid"},
			},
			wantErr: true,
			errMsg:  "tags",
		},
		{
			name: "published post without published_at",
			post: &domain.PostInput{
				Title:   "Test Post",
				Slug:    "test-post",
				Content: "This is the post body.",
				Status:  "published",
			},
			wantErr: true,
			errMsg:  "published_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePost(tt.post)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePost() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidatePost() error = %v, should contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		comment *domain.Comment
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid comment",
			comment: &domain.Comment{Content: "Nice post!", PostID: testPostID, AuthorID: testUserID},
			wantErr: false,
		},
		{
			name:    "missing content",
			comment: &domain.Comment{PostID: testPostID, AuthorID: testUserID},
			wantErr: true,
			errMsg:  "content",
		},
		{
			name:    "invalid post id",
			comment: &domain.Comment{Content: "hi", PostID: "42", AuthorID: testUserID},
			wantErr: true,
			errMsg:  "post_id",
		},
		{
			name:    "missing author",
			comment: &domain.Comment{Content: "hi", PostID: testPostID},
			wantErr: true,
			errMsg:  "author_id",
		},
		{
			name:    "content over word limit",
			comment: &domain.Comment{Content: strings.Repeat("word ", 501), PostID: testPostID, AuthorID: testUserID},
			wantErr: true,
			errMsg:  "content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateComment(tt.comment)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateComment() error = %v, should contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateSignUp(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   SignUp
		wantErr bool
		errMsg  string
	}{
		{"valid", SignUp{Email: "a@example.com", Password: "secret1", Username: "writer_01"}, false, ""},
		{"bad email", SignUp{Email: "nope", Password: "secret1", Username: "writer"}, true, "email"},
		{"short password", SignUp{Email: "a@example.com", Password: "123", Username: "writer"}, true, "password"},
		{"username with spaces", SignUp{Email: "a@example.com", Password: "secret1", Username: "two words"}, true, "username"},
		{"username too short", SignUp{Email: "a@example.com", Password: "secret1", Username: "ab"}, true, "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignUp(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSignUp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateSignUp() error = %v, should contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateProfileUpdate(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{}); err != nil {
		t.Errorf("empty update should be valid, got %v", err)
	}
	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{Username: strPtr("new_name")}); err != nil {
		t.Errorf("valid username rejected: %v", err)
	}
	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{Username: strPtr("")}); err == nil {
		t.Error("empty username should be rejected")
	}
	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{AvatarURL: strPtr("not a url")}); err == nil {
		t.Error("invalid avatar url should be rejected")
	}
}

func TestValidateModeration(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateModeration("approved"); err != nil {
		t.Errorf("approved rejected: %v", err)
	}
	if err := v.ValidateModeration("pending"); err == nil {
		t.Error("pending should not be a moderation decision")
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	if err := v.ValidatePassword("longenough"); err != nil {
		t.Errorf("ValidatePassword() = %v", err)
	}
	if err := v.ValidatePassword("short"); err == nil {
		t.Error("short password accepted")
	}
}

func TestAsDomainError(t *testing.T) {
	v := NewValidator()

	err := AsDomainError(v.ValidatePost(&domain.PostInput{Status: "draft"}))

	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %T", err)
	}
	if de.Code != domain.CodeValidation {
		t.Errorf("code = %v, want %v", de.Code, domain.CodeValidation)
	}
	details, ok := de.Details.(map[string]string)
	if !ok {
		t.Fatalf("details type = %T", de.Details)
	}
	if details["title"] != "title_required" {
		t.Errorf("details[title] = %q", details["title"])
	}

	plain := errors.New("boom")
	if AsDomainError(plain) != plain {
		t.Error("non-validation errors must pass through")
	}
	if AsDomainError(nil) != nil {
		t.Error("nil must stay nil")
	}
}
