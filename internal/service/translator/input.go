package translator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

const (
	MaxPhraseLength      = 100
	MaxTranslationLength = 500
	MaxCategoryLength    = 50
)

// TranslateInput holds the text to translate. Blank text is accepted.
type TranslateInput struct {
	Text string
}

// Validate rejects text that cannot be stored in the history log.
func (i TranslateInput) Validate() error {
	if !domain.StorableText(i.Text) {
		return domain.NewValidationError("text", "invalid characters")
	}
	return nil
}

// AddTermInput holds the parameters for adding a dictionary term.
type AddTermInput struct {
	Phrase      string
	Translation string
	Category    *string
}

// Validate checks all fields and collects all errors.
func (i AddTermInput) Validate() error {
	var errs []domain.FieldError

	phrase := strings.TrimSpace(i.Phrase)
	if phrase == "" {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	}
	if utf8.RuneCountInString(phrase) > MaxPhraseLength {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: fmt.Sprintf("max %d characters", MaxPhraseLength)})
	}
	if !domain.StorableText(phrase) {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "invalid characters"})
	}

	translation := strings.TrimSpace(i.Translation)
	if translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}
	if utf8.RuneCountInString(translation) > MaxTranslationLength {
		errs = append(errs, domain.FieldError{Field: "translation", Message: fmt.Sprintf("max %d characters", MaxTranslationLength)})
	}
	if !domain.StorableText(translation) {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "invalid characters"})
	}

	if i.Category != nil {
		category := strings.TrimSpace(*i.Category)
		if utf8.RuneCountInString(category) > MaxCategoryLength {
			errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("max %d characters", MaxCategoryLength)})
		}
		if !domain.StorableText(category) {
			errs = append(errs, domain.FieldError{Field: "category", Message: "invalid characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchTermsInput holds the dictionary search query.
type SearchTermsInput struct {
	Query string
}

// Validate checks all fields and collects all errors.
func (i SearchTermsInput) Validate() error {
	query := strings.TrimSpace(i.Query)
	if query == "" {
		return domain.NewValidationError("query", "required")
	}
	if !domain.StorableText(query) {
		return domain.NewValidationError("query", "invalid characters")
	}
	return nil
}

// RecentHistoryInput holds the parameters for reading the translation log.
// Zero Limit means the configured default.
type RecentHistoryInput struct {
	Limit int
}

// Validate checks all fields against the configured maximum.
func (i RecentHistoryInput) Validate(maxLimit int) error {
	if i.Limit < 0 {
		return domain.NewValidationError("limit", "must be non-negative")
	}
	if i.Limit > maxLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("max %d", maxLimit))
	}
	return nil
}
