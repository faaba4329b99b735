package domain

import (
	"time"

	"github.com/google/uuid"
)

// VibePost is a published, translated snippet with social metadata.
// PersonaTag and AccentColor are copied from the author's profile at publish
// time and never follow later profile edits.
type VibePost struct {
	ID             uuid.UUID
	AuthorID       uuid.UUID
	OriginalText   string
	TranslatedText string
	Insight        *string
	PersonaTag     *string
	AccentColor    *string
	Tags           []string
	Visibility     Visibility
	RemixCount     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PulseEntry is one reaction of one kind by one user on one post.
// At most one entry exists per (PostID, UserID, Kind).
type PulseEntry struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Kind      ReactionKind
	CreatedAt time.Time
}

// RemixEntry is a threaded textual reply to a vibe.
type RemixEntry struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	AuthorID  uuid.UUID
	RemixText string
	CreatedAt time.Time
}

// VibeView is a post assembled with reaction counts read at request time.
// Pulses only contains kinds with a non-zero count.
type VibeView struct {
	Post   VibePost
	Pulses map[ReactionKind]int
}

// VibeFilter holds optional feed filters; nil fields match everything.
type VibeFilter struct {
	Persona    *string
	Tag        *string
	Visibility *Visibility
	Limit      int
}
