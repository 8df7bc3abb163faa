package validator

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-backend/internal/domain"
	"blog-backend/internal/textutil"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)
	validStatus   = []interface{}{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived}
	moderation    = []interface{}{domain.CommentApproved, domain.CommentRejected}
)

// Validator provides validation methods for user input.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates the writable fields of a post.
func (v *Validator) ValidatePost(p *domain.PostInput) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, 200).Error("title_too_long"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
		validation.Field(&p.PublishedTZ,
			validation.By(timezoneRule),
		),
		validation.Field(&p.Tags,
			validation.Each(is.UUID.Error("invalid_tag_id")),
		),
	)
	if err != nil {
		return err
	}

	if p.Status == domain.StatusPublished && p.PublishedAt == nil {
		return validation.Errors{
			"published_at": validation.NewError("published_requires_published_at", "published posts must have published_at"),
		}
	}

	return nil
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.By(wordCountRule(500)),
		),
		validation.Field(&c.PostID,
			validation.Required.Error("post_id_required"),
			is.UUID.Error("invalid_post_id"),
		),
		validation.Field(&c.AuthorID,
			validation.Required.Error("author_id_required"),
		),
	)
}

// ValidateModeration validates a moderation decision.
func (v *Validator) ValidateModeration(status string) error {
	return validation.Errors{
		"status": validation.Validate(status,
			validation.Required.Error("status_required"),
			validation.In(moderation...).Error("invalid_status"),
		),
	}.Filter()
}

// SignUp is the input of a registration.
type SignUp struct {
	Email    string
	Password string
	Username string
}

// ValidateSignUp validates registration input.
func (v *Validator) ValidateSignUp(s *SignUp) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&s.Password,
			validation.Required.Error("password_required"),
			validation.RuneLength(textutil.MinPasswordLength, 72).Error("password_too_short"),
		),
		validation.Field(&s.Username,
			validation.Required.Error("username_required"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
	)
}

// ValidatePassword validates a new password.
func (v *Validator) ValidatePassword(password string) error {
	return validation.Errors{
		"password": validation.Validate(password,
			validation.Required.Error("password_required"),
			validation.RuneLength(textutil.MinPasswordLength, 72).Error("password_too_short"),
		),
	}.Filter()
}

// ValidateProfileUpdate validates a profile update.
func (v *Validator) ValidateProfileUpdate(u *domain.ProfileUpdate) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Username,
			validation.NilOrNotEmpty.Error("username_required"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&u.AvatarURL,
			is.URL.Error("invalid_avatar_url"),
		),
	)
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if len(strings.Fields(strings.TrimSpace(s))) > maxWords {
			return validation.NewError("content_too_long", "content exceeds the word limit")
		}
		return nil
	}
}

func timezoneRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" || textutil.IsValidTimezone(s) {
		return nil
	}
	return validation.NewError("invalid_timezone", "unknown timezone")
}

// AsDomainError converts ozzo validation errors into a domain validation
// error whose details map each field to its message. Other errors are
// returned unchanged.
func AsDomainError(err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}
	details := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		details[field] = fieldErr.Error()
	}
	return domain.ValidationWithDetails("validation failed", details)
}
