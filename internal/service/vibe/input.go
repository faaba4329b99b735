package vibe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

const (
	MaxInsightLength   = 280
	MaxRemixTextLength = 400
	MaxFilterLength    = 100
)

// PublishInput holds the parameters for publishing a vibe.
type PublishInput struct {
	AuthorID       uuid.UUID
	OriginalText   string
	TranslatedText string
	Insight        *string
	Tags           []string
	Visibility     *domain.Visibility
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	var errs []domain.FieldError

	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	switch {
	case strings.TrimSpace(i.OriginalText) == "":
		errs = append(errs, domain.FieldError{Field: "original_text", Message: "required"})
	case !domain.StorableText(i.OriginalText):
		errs = append(errs, domain.FieldError{Field: "original_text", Message: "invalid characters"})
	}
	switch {
	case strings.TrimSpace(i.TranslatedText) == "":
		errs = append(errs, domain.FieldError{Field: "translated_text", Message: "required"})
	case !domain.StorableText(i.TranslatedText):
		errs = append(errs, domain.FieldError{Field: "translated_text", Message: "invalid characters"})
	}
	if i.Insight != nil {
		if utf8.RuneCountInString(strings.TrimSpace(*i.Insight)) > MaxInsightLength {
			errs = append(errs, domain.FieldError{Field: "insight", Message: fmt.Sprintf("max %d characters", MaxInsightLength)})
		}
		if !domain.StorableText(*i.Insight) {
			errs = append(errs, domain.FieldError{Field: "insight", Message: "invalid characters"})
		}
	}
	for _, tag := range i.Tags {
		if !domain.StorableText(tag) {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "invalid characters"})
			break
		}
	}
	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FeedInput holds optional feed filters. All present filters must match.
type FeedInput struct {
	Persona    *string
	Tag        *string
	Visibility *domain.Visibility
}

// Validate checks all fields and collects all errors.
func (i FeedInput) Validate() error {
	var errs []domain.FieldError

	if i.Persona != nil && utf8.RuneCountInString(*i.Persona) > MaxFilterLength {
		errs = append(errs, domain.FieldError{Field: "persona", Message: fmt.Sprintf("max %d characters", MaxFilterLength)})
	}
	if i.Persona != nil && !domain.StorableText(*i.Persona) {
		errs = append(errs, domain.FieldError{Field: "persona", Message: "invalid characters"})
	}
	if i.Tag != nil && utf8.RuneCountInString(*i.Tag) > MaxFilterLength {
		errs = append(errs, domain.FieldError{Field: "tag", Message: fmt.Sprintf("max %d characters", MaxFilterLength)})
	}
	if i.Tag != nil && !domain.StorableText(*i.Tag) {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "invalid characters"})
	}
	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReactInput holds the parameters for toggling a pulse.
type ReactInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
	Kind   domain.ReactionKind
}

// Validate checks all fields and collects all errors.
func (i ReactInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "pulse_type", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemixInput holds the parameters for replying to a vibe.
type RemixInput struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Text     string
}

// Validate checks all fields and collects all errors.
func (i RemixInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "remix_text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxRemixTextLength {
		errs = append(errs, domain.FieldError{Field: "remix_text", Message: fmt.Sprintf("max %d characters", MaxRemixTextLength)})
	}
	if !domain.StorableText(text) {
		errs = append(errs, domain.FieldError{Field: "remix_text", Message: "invalid characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRemixesInput identifies the vibe whose thread is read.
type ListRemixesInput struct {
	PostID uuid.UUID
}

// Validate checks all fields.
func (i ListRemixesInput) Validate() error {
	if i.PostID == uuid.Nil {
		return domain.NewValidationError("post_id", "required")
	}
	return nil
}
