package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/banger/internal/domain/entity"
)

func TestDefaultRegistry_Catalog(t *testing.T) {
	r := DefaultRegistry()

	require.Equal(t, 7, r.Len())
	assert.Equal(t, []string{"cpp", "crates", "ddg", "g", "nws", "rust", "w"}, r.Keys())

	cases := map[string]entity.SearchEngine{
		"g":      Google,
		"ddg":    DuckDuckGo,
		"w":      Wikipedia,
		"nws":    NWS,
		"cpp":    Cpp,
		"rust":   Rust,
		"crates": Crates,
	}
	for key, want := range cases {
		got, ok := r.Lookup(key)
		require.True(t, ok, "bang %q should be registered", key)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, got.SearchURL)
		assert.Contains(t, got.SearchURL, entity.SearchTermsPlaceholder)
	}
}

func TestDefaultRegistry_DefaultSuggestFallback(t *testing.T) {
	r := DefaultRegistry()

	for _, key := range []string{"nws", "cpp", "rust", "crates"} {
		e, ok := r.Lookup(key)
		require.True(t, ok)
		assert.True(t, e.UsesDefaultSuggest(), "bang %q should use the shared suggester", key)
	}
	g, _ := r.Lookup("g")
	assert.False(t, g.UsesDefaultSuggest())
}

func TestRegistry_LookupIsCaseSensitive(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Lookup("G")
	assert.False(t, ok)
	_, ok = r.Lookup("DDG")
	assert.False(t, ok)
	_, ok = r.Lookup("")
	assert.False(t, ok)
}

func TestNewRegistry_Errors(t *testing.T) {
	valid := entity.SearchEngine{SearchURL: "https://example.com/?q={searchTerms}"}

	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{name: "empty key", entries: []Entry{{Key: "", Engine: valid}}, wantErr: ErrEmptyKey},
		{name: "key with space", entries: []Entry{{Key: "a b", Engine: valid}}, wantErr: ErrInvalidKey},
		{name: "key with bang", entries: []Entry{{Key: "!g", Engine: valid}}, wantErr: ErrInvalidKey},
		{name: "missing search url", entries: []Entry{{Key: "x"}}, wantErr: ErrEmptySearchURL},
		{
			name:    "duplicate key",
			entries: []Entry{{Key: "x", Engine: valid}, {Key: "x", Engine: valid}},
			wantErr: ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entries...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewRegistry_FillsDefaults(t *testing.T) {
	r, err := NewRegistry(Entry{
		Key:    "gh",
		Engine: entity.SearchEngine{SearchURL: "https://github.com/search?q={searchTerms}"},
	})
	require.NoError(t, err)

	e, ok := r.Entry("gh")
	require.True(t, ok)
	assert.Equal(t, "gh", e.Name)
	assert.Equal(t, entity.DefaultSuggestURL, e.Engine.SuggestURL)
}

func TestRegistry_KeysReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	keys := r.Keys()
	keys[0] = "mutated"

	assert.Equal(t, "cpp", r.Keys()[0])
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	r := DefaultRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, key := range r.Keys() {
				_, ok := r.Lookup(key)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
