package domain

import (
	"time"

	"github.com/google/uuid"
)

// Term maps a slang phrase to its plain-language translation.
// PopularityScore grows by one every time the phrase fires during a translation.
type Term struct {
	ID              uuid.UUID
	Phrase          string
	Translation     string
	Category        *string
	PopularityScore int
	CreatedAt       time.Time
}

// TranslationRecord is an immutable history entry written for every translation.
type TranslationRecord struct {
	ID             uuid.UUID
	OriginalText   string
	TranslatedText string
	TermsFound     []string
	CreatedAt      time.Time
}

// TranslationResult is returned to the caller of a translation.
// TermsFound lists phrases in the order they fired and is never nil.
type TranslationResult struct {
	OriginalText   string
	TranslatedText string
	TermsFound     []string
}
