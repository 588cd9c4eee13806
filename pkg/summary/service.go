// Package summary turns article text into cached model-written summaries and
// runs the background worker that walks a feed backlog.
package summary

import (
	"context"
	"fmt"
	"unicode/utf8"
)

//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Cache stores finished summaries keyed by article link
type Cache interface {
	Get(ctx context.Context, link string) (string, bool)
	Put(ctx context.Context, link, summary, model string) bool
}

// Generator produces model completions
type Generator interface {
	Generate(ctx context.Context, prompt, model string) string
}

const (
	minTextRunes   = 100
	maxPromptRunes = 3000
)

// ShortTextMessage is returned when there is not enough text to work with
const ShortTextMessage = "Text too short to summarize."

// Request describes one summarization call
type Request struct {
	Link         string // cache key, empty disables caching for this call
	Text         string // full article text, supplied by the caller
	Model        string
	ForceRefresh bool // skip the cache read, the result still writes through
}

// Service coordinates the summary cache and the model. A cache hit returns in
// milliseconds, everything else pays for an inference round trip, so the read
// side runs before any model work.
type Service struct {
	cache     Cache
	generator Generator
	language  string
}

// NewService creates the summarization service. Summaries are written in the
// given language, defaulting to Korean.
func NewService(cache Cache, generator Generator, language string) *Service {
	if language == "" {
		language = "Korean"
	}
	return &Service{cache: cache, generator: generator, language: language}
}

// Summarize returns the cached summary for the request's link when one
// exists, otherwise asks the model and stores the non-empty result before
// returning it. Concurrent calls for the same link are not deduplicated,
// the last writer wins.
func (s *Service) Summarize(ctx context.Context, req Request) string {
	if req.Link != "" && !req.ForceRefresh {
		if cached, ok := s.cache.Get(ctx, req.Link); ok {
			return cached
		}
	}

	if utf8.RuneCountInString(req.Text) < minTextRunes {
		return ShortTextMessage
	}

	text := req.Text
	if runes := []rune(text); len(runes) > maxPromptRunes {
		text = string(runes[:maxPromptRunes])
	}

	prompt := fmt.Sprintf("Summarize the following text in 3 bullet point lines in %s:\n\n%s", s.language, text)
	result := s.generator.Generate(ctx, prompt, req.Model)

	if req.Link != "" && result != "" {
		s.cache.Put(ctx, req.Link, result, req.Model)
	}
	return result
}
