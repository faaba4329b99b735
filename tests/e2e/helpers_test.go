//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/genz-translator-backend/internal/app"
	"github.com/heartmarshall/genz-translator-backend/internal/auth"
	"github.com/heartmarshall/genz-translator-backend/internal/config"
)

const testSecret = "e2e-secret-that-is-at-least-32-bytes-long"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Auth:       config.AuthConfig{JWTSecret: testSecret, JWTIssuer: "genz-translator", AccessTokenTTL: time.Hour},
		CORS:       config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT", AllowedHeaders: "Authorization,Content-Type"},
		Translator: config.TranslatorConfig{DefaultHistoryLimit: 10, MaxHistoryLimit: 100},
		Community: config.CommunityConfig{
			FeedLimit:      50,
			PersonaLibrary: []string{"Signal Whisperer"},
			AccentLibrary:  []string{"#a5b4fc"},
		},
		RateLimit: config.RateLimitConfig{WritesPerMinute: 0, CleanupInterval: time.Minute, IdleTTL: time.Minute},
	}

	handler, cleanup := app.NewHandler(cfg, logger, pool)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		cleanup()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		jwt:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// token mints a bearer token for a fresh user id.
func (ts *testServer) token(t *testing.T) (string, uuid.UUID) {
	t.Helper()
	id := uuid.Must(uuid.NewV7())
	tok, err := ts.jwt.GenerateAccessToken(id)
	require.NoError(t, err)
	return tok, id
}

// onboard mints a token and creates the matching profile.
func (ts *testServer) onboard(t *testing.T) (string, uuid.UUID, string) {
	t.Helper()
	tok, id := ts.token(t)
	handle := "u_" + uniqueSuffix()
	status, _ := ts.do(t, http.MethodPost, "/api/profiles", tok, map[string]any{"handle": handle}, nil)
	require.Equal(t, http.StatusCreated, status)
	return tok, id, handle
}

// do sends a JSON request and decodes the response into out when non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode, raw
}

// doQuiet is a goroutine-safe variant of do that reports instead of failing.
func doQuiet(ts *testServer, method, path, token, body string) (int, string) {
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if err != nil {
		return 0, err.Error()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client.Do(req)
	if err != nil {
		return 0, err.Error()
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type translation struct {
	OriginalText   string   `json:"originalText"`
	TranslatedText string   `json:"translatedText"`
	TermsFound     []string `json:"termsFound"`
}

type term struct {
	ID              string `json:"id"`
	Phrase          string `json:"phrase"`
	Translation     string `json:"translation"`
	PopularityScore int    `json:"popularityScore"`
}

type historyEntry struct {
	OriginalText   string   `json:"originalText"`
	TranslatedText string   `json:"translatedText"`
	TermsFound     []string `json:"termsFound"`
}

type vibeView struct {
	ID           string         `json:"id"`
	AuthorID     string         `json:"authorId"`
	AuthorHandle *string        `json:"authorHandle"`
	PersonaTag   *string        `json:"personaTag"`
	AccentColor  *string        `json:"accentColor"`
	Tags         []string       `json:"tags"`
	Visibility   string         `json:"visibility"`
	RemixCount   int            `json:"remixCount"`
	Pulses       map[string]int `json:"pulses"`
}

type remix struct {
	AuthorHandle *string `json:"authorHandle"`
	PersonaTag   *string `json:"personaTag"`
	RemixText    string  `json:"remixText"`
}

type profile struct {
	ID          string  `json:"id"`
	Handle      string  `json:"handle"`
	PersonaTag  *string `json:"personaTag"`
	AccentColor *string `json:"accentColor"`
	Bio         *string `json:"bio"`
}
