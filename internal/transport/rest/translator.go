package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/translator"
)

type translatorService interface {
	Translate(ctx context.Context, input translator.TranslateInput) (*domain.TranslationResult, error)
	AddTerm(ctx context.Context, input translator.AddTermInput) (*domain.Term, error)
	ListTerms(ctx context.Context) ([]*domain.Term, error)
	PopularTerms(ctx context.Context) ([]*domain.Term, error)
	SearchTerms(ctx context.Context, input translator.SearchTermsInput) ([]*domain.Term, error)
	RecentHistory(ctx context.Context, input translator.RecentHistoryInput) ([]*domain.TranslationRecord, error)
}

// TranslatorHandler serves translation and dictionary endpoints.
type TranslatorHandler struct {
	svc translatorService
	log *slog.Logger
}

// NewTranslatorHandler creates a TranslatorHandler.
func NewTranslatorHandler(svc translatorService, logger *slog.Logger) *TranslatorHandler {
	return &TranslatorHandler{svc: svc, log: logger.With("handler", "translator")}
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	OriginalText   string   `json:"originalText"`
	TranslatedText string   `json:"translatedText"`
	TermsFound     []string `json:"termsFound"`
}

type addTermRequest struct {
	Phrase      string  `json:"phrase"`
	Translation string  `json:"translation"`
	Category    *string `json:"category"`
}

type termResponse struct {
	ID              string    `json:"id"`
	Phrase          string    `json:"phrase"`
	Translation     string    `json:"translation"`
	Category        *string   `json:"category"`
	PopularityScore int       `json:"popularityScore"`
	CreatedAt       time.Time `json:"createdAt"`
}

type historyResponse struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	TermsFound     []string  `json:"termsFound"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Translate handles POST /api/translate.
func (h *TranslatorHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.translate(w, r, req.Text)
}

// TranslateQuery handles GET /api/translate?text=.
func (h *TranslatorHandler) TranslateQuery(w http.ResponseWriter, r *http.Request) {
	h.translate(w, r, r.URL.Query().Get("text"))
}

func (h *TranslatorHandler) translate(w http.ResponseWriter, r *http.Request, text string) {
	result, err := h.svc.Translate(r.Context(), translator.TranslateInput{Text: text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{
		OriginalText:   result.OriginalText,
		TranslatedText: result.TranslatedText,
		TermsFound:     result.TermsFound,
	})
}

// ListTerms handles GET /api/terms.
func (h *TranslatorHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.ListTerms(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTermResponses(terms))
}

// PopularTerms handles GET /api/terms/popular.
func (h *TranslatorHandler) PopularTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.PopularTerms(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTermResponses(terms))
}

// SearchTerms handles GET /api/terms/search?query=.
func (h *TranslatorHandler) SearchTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.SearchTerms(r.Context(), translator.SearchTermsInput{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTermResponses(terms))
}

// AddTerm handles POST /api/terms.
func (h *TranslatorHandler) AddTerm(w http.ResponseWriter, r *http.Request) {
	var req addTermRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	term, err := h.svc.AddTerm(r.Context(), translator.AddTermInput{
		Phrase:      req.Phrase,
		Translation: req.Translation,
		Category:    req.Category,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTermResponse(term))
}

// RecentHistory handles GET /api/history?limit=.
func (h *TranslatorHandler) RecentHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.svc.RecentHistory(r.Context(), translator.RecentHistoryInput{Limit: limit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]historyResponse, len(records))
	for i, rec := range records {
		out[i] = historyResponse{
			ID:             rec.ID.String(),
			OriginalText:   rec.OriginalText,
			TranslatedText: rec.TranslatedText,
			TermsFound:     nonNil(rec.TermsFound),
			CreatedAt:      rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func toTermResponse(t *domain.Term) termResponse {
	return termResponse{
		ID:              t.ID.String(),
		Phrase:          t.Phrase,
		Translation:     t.Translation,
		Category:        t.Category,
		PopularityScore: t.PopularityScore,
		CreatedAt:       t.CreatedAt,
	}
}

func toTermResponses(terms []*domain.Term) []termResponse {
	out := make([]termResponse, len(terms))
	for i, t := range terms {
		out[i] = toTermResponse(t)
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
