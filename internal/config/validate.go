package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Translator.validate(); err != nil {
		return fmt.Errorf("translator: %w", err)
	}

	if err := c.Community.validate(); err != nil {
		return fmt.Errorf("community: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (t *TranslatorConfig) validate() error {
	if t.DefaultHistoryLimit <= 0 {
		return fmt.Errorf("default_history_limit must be > 0 (got %d)", t.DefaultHistoryLimit)
	}
	if t.MaxHistoryLimit < t.DefaultHistoryLimit {
		return fmt.Errorf("max_history_limit must be >= default_history_limit (got %d < %d)",
			t.MaxHistoryLimit, t.DefaultHistoryLimit)
	}
	return nil
}

func (c *CommunityConfig) validate() error {
	if c.FeedLimit <= 0 || c.FeedLimit > 50 {
		return fmt.Errorf("feed_limit must be in 1..50 (got %d)", c.FeedLimit)
	}

	c.PersonaLibrary = ParseList(c.PersonaLibraryRaw)
	if len(c.PersonaLibrary) == 0 {
		return fmt.Errorf("persona_library must not be empty")
	}
	c.AccentLibrary = ParseList(c.AccentLibraryRaw)
	if len(c.AccentLibrary) == 0 {
		return fmt.Errorf("accent_library must not be empty")
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.WritesPerMinute < 0 {
		return fmt.Errorf("writes_per_minute must be >= 0 (got %d)", r.WritesPerMinute)
	}
	if r.WritesPerMinute > 0 && r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 when limiting is enabled")
	}
	return nil
}
