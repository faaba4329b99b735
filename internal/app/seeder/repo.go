// Package seeder loads a curated slang dictionary from YAML into the term store.
package seeder

import (
	"context"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/translator"
)

// TermLookup reports whether a phrase is already in the dictionary.
// Implemented by term.Repo.
type TermLookup interface {
	ExistsByPhrase(ctx context.Context, phrase string) (bool, error)
}

// TermAdder adds a validated term. Implemented by translator.Service.
type TermAdder interface {
	AddTerm(ctx context.Context, input translator.AddTermInput) (*domain.Term, error)
}
