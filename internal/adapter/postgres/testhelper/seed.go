package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func ptr[T any](v T) *T { return &v }

// SeedUser creates a profile with a unique handle and a fixed persona.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.Must(uuid.NewV7()),
		Handle:      "user-" + uniqueSuffix(),
		PersonaTag:  ptr("Dreamer"),
		AccentColor: ptr("#7c3aed"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, handle, persona_tag, accent_color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Handle, user.PersonaTag, user.AccentColor, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedTerm inserts a term with zero popularity.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, phrase, translation string) domain.Term {
	t.Helper()
	ctx := context.Background()

	term := domain.Term{
		ID:          uuid.Must(uuid.NewV7()),
		Phrase:      phrase,
		Translation: translation,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO terms (id, phrase, translation, popularity_score, created_at)
		 VALUES ($1, $2, $3, 0, $4)`,
		term.ID, term.Phrase, term.Translation, term.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm insert: %v", err)
	}

	return term
}

// SeedVibe inserts a public vibe authored by authorID.
func SeedVibe(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, tags ...string) domain.VibePost {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	post := domain.VibePost{
		ID:             uuid.Must(uuid.NewV7()),
		AuthorID:       authorID,
		OriginalText:   "no cap " + uniqueSuffix(),
		TranslatedText: "No lie",
		Tags:           domain.NormalizeTags(tags),
		Visibility:     domain.VisibilityPublic,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vibe_posts (id, author_id, original_text, translated_text, tags, visibility, remix_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)`,
		post.ID, post.AuthorID, post.OriginalText, post.TranslatedText, post.Tags,
		string(post.Visibility), post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVibe insert: %v", err)
	}

	return post
}
