package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/translator"
)

// SeedTerm is one entry of the seed file.
type SeedTerm struct {
	Phrase      string  `yaml:"phrase"`
	Translation string  `yaml:"translation"`
	Category    *string `yaml:"category"`
}

type seedFile struct {
	Terms []SeedTerm `yaml:"terms"`
}

// LoadFile reads seed terms from a YAML file.
func LoadFile(path string) ([]SeedTerm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a seed document of the form:
//
//	terms:
//	  - phrase: no cap
//	    translation: honestly
//	    category: emphasis
func Parse(r io.Reader) ([]SeedTerm, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc seedFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return doc.Terms, nil
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Invalid  int
	Duration time.Duration
}

// Pipeline adds seed terms that are not yet in the dictionary.
type Pipeline struct {
	log    *slog.Logger
	lookup TermLookup
	adder  TermAdder
	dryRun bool
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, lookup TermLookup, adder TermAdder, cfg Config) *Pipeline {
	return &Pipeline{
		log:    log.With("component", "seeder"),
		lookup: lookup,
		adder:  adder,
		dryRun: cfg.DryRun,
	}
}

// Run seeds terms in file order. Phrases already present (ignoring case),
// and repeats within the file, are skipped. Invalid entries are logged and
// counted; store failures abort the run.
func (p *Pipeline) Run(ctx context.Context, terms []SeedTerm) (Result, error) {
	start := time.Now()
	var res Result
	seen := make(map[string]struct{}, len(terms))

	for i, t := range terms {
		key := domain.NormalizeText(t.Phrase)
		if _, dup := seen[key]; dup && key != "" {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}

		input := translator.AddTermInput{Phrase: t.Phrase, Translation: t.Translation, Category: t.Category}
		if err := input.Validate(); err != nil {
			p.log.WarnContext(ctx, "invalid seed term",
				slog.Int("index", i),
				slog.String("phrase", t.Phrase),
				slog.String("error", err.Error()),
			)
			res.Invalid++
			continue
		}

		exists, err := p.lookup.ExistsByPhrase(ctx, strings.TrimSpace(t.Phrase))
		if err != nil {
			return res, fmt.Errorf("seed term %q: %w", t.Phrase, err)
		}
		if exists {
			res.Skipped++
			continue
		}

		if !p.dryRun {
			if _, err := p.adder.AddTerm(ctx, input); err != nil {
				return res, fmt.Errorf("seed term %q: %w", t.Phrase, err)
			}
		}
		res.Inserted++
	}

	res.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seeding complete",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("invalid", res.Invalid),
		slog.Bool("dry_run", p.dryRun),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
