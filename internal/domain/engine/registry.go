// Package engine holds the catalog of bang keywords and the search engines
// they route to.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/bnema/banger/internal/domain/entity"
)

var (
	// ErrEmptyKey is returned when an entry has no bang keyword.
	ErrEmptyKey = errors.New("bang keyword cannot be empty")
	// ErrInvalidKey is returned when a bang keyword contains whitespace or a leading "!".
	ErrInvalidKey = errors.New("bang keyword must not contain whitespace or start with '!'")
	// ErrDuplicateKey is returned when the same bang keyword is registered twice.
	ErrDuplicateKey = errors.New("bang keyword registered twice")
	// ErrEmptySearchURL is returned when an entry has no search template.
	ErrEmptySearchURL = errors.New("search url template cannot be empty")
)

// Entry is a registered bang: its keyword, a display name and the engine.
type Entry struct {
	Key    string
	Name   string
	Engine entity.SearchEngine
}

// Registry maps bang keywords to search engines.
// It is immutable once built and safe for concurrent readers.
type Registry struct {
	entries map[string]Entry
	keys    []string
}

// NewRegistry builds a registry from the given entries.
// Keys are case-sensitive. An entry without a suggestion template falls back
// to entity.DefaultSuggestURL.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, ErrEmptyKey
		}
		if strings.HasPrefix(e.Key, "!") || strings.ContainsFunc(e.Key, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, e.Key)
		}
		if e.Engine.SearchURL == "" {
			return nil, fmt.Errorf("%w: bang %q", ErrEmptySearchURL, e.Key)
		}
		if _, exists := r.entries[e.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		if e.Engine.SuggestURL == "" {
			e.Engine.SuggestURL = entity.DefaultSuggestURL
		}
		if e.Name == "" {
			e.Name = e.Key
		}
		r.entries[e.Key] = e
		r.keys = append(r.keys, e.Key)
	}

	sort.Strings(r.keys)
	return r, nil
}

// Lookup returns the engine registered for bang, if any.
func (r *Registry) Lookup(bang string) (entity.SearchEngine, bool) {
	e, ok := r.entries[bang]
	return e.Engine, ok
}

// Entry returns the full registry entry for bang.
func (r *Registry) Entry(bang string) (Entry, bool) {
	e, ok := r.entries[bang]
	return e, ok
}

// Keys returns the registered bang keywords in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Entries returns all entries sorted by key.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.entries[k])
	}
	return out
}

// Len returns the number of registered bangs.
func (r *Registry) Len() int {
	return len(r.entries)
}
