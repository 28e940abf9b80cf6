package content

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

const textCodeInvalidInput = "CONTENT_INVALID_INPUT"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the post payload before it is sent.
func (p NewPost) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.CategorySlug, validation.By(func(value any) error {
			s, _ := value.(string)
			if s == "" || slug.IsValid(s) {
				return nil
			}
			return validation.NewError("content.post.category_slug_invalid", "must be a valid slug")
		})),
		validation.Field(&p.AuthorID, validation.By(func(value any) error {
			s, _ := value.(string)
			if s == "" {
				return nil
			}
			if _, err := uuid.Parse(s); err != nil {
				return validation.NewError("content.post.user_id_invalid", "must be a UUID")
			}
			return nil
		})),
	)
}

// Validate checks the contact form payload before it is sent.
func (m ContactMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&m.Email, validation.Required, validation.Match(emailPattern)),
		validation.Field(&m.Message, validation.Required, validation.Length(1, 5000)),
	)
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	return validation.Validate(email, validation.Required, validation.Match(emailPattern))
}

func wrapValidationError(err error, message string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, message).
		WithTextCode(textCodeInvalidInput)
}
