package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the public profile of an authenticated caller. Credentials live
// with the identity provider; the ID is the token subject.
type User struct {
	ID          uuid.UUID
	Handle      string
	PersonaTag  *string
	AccentColor *string
	Bio         *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileUpdateParams carries a partial profile update. Nil fields are left unchanged.
type ProfileUpdateParams struct {
	PersonaTag  *string
	AccentColor *string
	Bio         *string
}
