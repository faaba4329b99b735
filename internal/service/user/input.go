package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

const (
	MinHandleLength     = 3
	MaxHandleLength     = 30
	MaxBioLength        = 280
	MaxPersonaTagLength = 50
	MaxAccentLength     = 20
)

// OnboardInput holds parameters for creating the caller's profile.
type OnboardInput struct {
	UserID uuid.UUID
	Handle string
}

// Validate validates the onboarding input.
func (i OnboardInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	handle := strings.TrimSpace(i.Handle)
	switch n := utf8.RuneCountInString(handle); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "handle", Message: "required"})
	case n < MinHandleLength || n > MaxHandleLength:
		errs = append(errs, domain.FieldError{
			Field:   "handle",
			Message: fmt.Sprintf("must be %d-%d characters", MinHandleLength, MaxHandleLength),
		})
	case !domain.StorableText(handle):
		errs = append(errs, domain.FieldError{Field: "handle", Message: "invalid characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds parameters for a partial profile update.
// Nil or blank fields are left unchanged.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	PersonaTag  *string
	AccentColor *string
	Bio         *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.PersonaTag != nil && utf8.RuneCountInString(strings.TrimSpace(*i.PersonaTag)) > MaxPersonaTagLength {
		errs = append(errs, domain.FieldError{Field: "persona_tag", Message: "too long"})
	}
	if i.AccentColor != nil && utf8.RuneCountInString(strings.TrimSpace(*i.AccentColor)) > MaxAccentLength {
		errs = append(errs, domain.FieldError{Field: "accent_color", Message: "too long"})
	}
	if i.Bio != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Bio)) > MaxBioLength {
		errs = append(errs, domain.FieldError{Field: "bio", Message: fmt.Sprintf("max %d characters", MaxBioLength)})
	}
	errs = appendUnstorable(errs, "persona_tag", i.PersonaTag)
	errs = appendUnstorable(errs, "accent_color", i.AccentColor)
	errs = appendUnstorable(errs, "bio", i.Bio)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendUnstorable(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && !domain.StorableText(*v) {
		errs = append(errs, domain.FieldError{Field: field, Message: "invalid characters"})
	}
	return errs
}
