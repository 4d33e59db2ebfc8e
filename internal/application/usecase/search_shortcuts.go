package usecase

import (
	"context"
	"strings"

	"github.com/bnema/banger/internal/domain/engine"
	"github.com/bnema/banger/internal/domain/url"
	"github.com/bnema/banger/internal/logging"
)

// BangSuggestion represents a registered bang for display.
type BangSuggestion struct {
	Key         string
	Description string
}

// SearchShortcutsUseCase filters and detects bangs for interactive use.
type SearchShortcutsUseCase struct {
	registry *engine.Registry
}

// NewSearchShortcutsUseCase creates a new search shortcuts use case.
func NewSearchShortcutsUseCase(registry *engine.Registry) *SearchShortcutsUseCase {
	return &SearchShortcutsUseCase{
		registry: registry,
	}
}

// FilterBangsInput contains parameters for filtering bang suggestions.
type FilterBangsInput struct {
	Query string // e.g., "!" or "!g" or "!g query"
}

// FilterBangsOutput contains filtered bang suggestions.
type FilterBangsOutput struct {
	Suggestions []BangSuggestion
}

// FilterBangs returns bangs whose key starts with the typed prefix.
// The prefix is taken before any space and compared case-insensitively;
// results are sorted by key.
func (uc *SearchShortcutsUseCase) FilterBangs(ctx context.Context, input FilterBangsInput) *FilterBangsOutput {
	log := logging.FromContext(ctx)

	suggestions := uc.buildBangSuggestions(input.Query)

	log.Debug().
		Str("query", input.Query).
		Int("matches", len(suggestions)).
		Msg("filtered bang suggestions")

	return &FilterBangsOutput{Suggestions: suggestions}
}

// DetectBangKeyInput contains parameters for detecting a completed bang key.
type DetectBangKeyInput struct {
	Query string // e.g., "!w query"
}

// DetectBangKeyOutput contains the detected bang key if found.
type DetectBangKeyOutput struct {
	Key         string // The matched key (empty if not found)
	Description string // Name of the matched engine
}

// DetectBangKey reports the bang a query will be routed by, if any.
// Like resolution, a completed bang needs a separator after the key and the
// key must match exactly.
func (uc *SearchShortcutsUseCase) DetectBangKey(ctx context.Context, input DetectBangKeyInput) *DetectBangKeyOutput {
	log := logging.FromContext(ctx)

	bang, _, hasRemainder, found := url.SplitBang(input.Query)
	if !found || !hasRemainder {
		return &DetectBangKeyOutput{}
	}

	entry, ok := uc.registry.Entry(bang)
	if !ok {
		return &DetectBangKeyOutput{}
	}

	log.Debug().
		Str("query", input.Query).
		Str("detected_key", bang).
		Msg("detected bang key")

	return &DetectBangKeyOutput{
		Key:         entry.Key,
		Description: entry.Name,
	}
}

// buildBangSuggestions filters registry entries matching the query prefix.
func (uc *SearchShortcutsUseCase) buildBangSuggestions(query string) []BangSuggestion {
	prefix := strings.TrimPrefix(query, "!")
	if idx := strings.Index(prefix, " "); idx >= 0 {
		prefix = prefix[:idx]
	}
	prefix = strings.ToLower(prefix)

	// Entries are already sorted by key.
	entries := uc.registry.Entries()
	suggestions := make([]BangSuggestion, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasPrefix(strings.ToLower(entry.Key), prefix) {
			continue
		}
		suggestions = append(suggestions, BangSuggestion{
			Key:         entry.Key,
			Description: entry.Name,
		})
	}

	return suggestions
}
