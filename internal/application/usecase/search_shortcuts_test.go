package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/banger/internal/domain/engine"
	"github.com/bnema/banger/internal/domain/entity"
)

func newShortcutsRegistry(t *testing.T) *engine.Registry {
	t.Helper()
	reg, err := engine.NewRegistry(
		engine.Entry{Key: "ddg", Name: "DuckDuckGo search", Engine: engine.DuckDuckGo},
		engine.Entry{Key: "g", Name: "Google search", Engine: engine.Google},
		engine.Entry{Key: "gh", Name: "GitHub search", Engine: entity.SearchEngine{SearchURL: "https://github.com/search?q={searchTerms}"}},
		engine.Entry{Key: "n", Engine: entity.SearchEngine{SearchURL: "https://news.ycombinator.com/?q={searchTerms}"}},
	)
	require.NoError(t, err)
	return reg
}

func TestFilterBangs(t *testing.T) {
	uc := NewSearchShortcutsUseCase(newShortcutsRegistry(t))
	ctx := context.Background()

	cases := []struct {
		name      string
		query     string
		wantKeys  []string
		wantDescr map[string]string
	}{
		{
			name:     "bang only returns all sorted",
			query:    "!",
			wantKeys: []string{"ddg", "g", "gh", "n"},
		},
		{
			name:     "filters by prefix",
			query:    "!g",
			wantKeys: []string{"g", "gh"},
		},
		{
			name:     "filters by prefix case-insensitive",
			query:    "!DD",
			wantKeys: []string{"ddg"},
		},
		{
			name:     "stops prefix at space",
			query:    "!g query",
			wantKeys: []string{"g", "gh"},
		},
		{
			name:     "falls back to key when name empty",
			query:    "!n",
			wantKeys: []string{"n"},
			wantDescr: map[string]string{
				"n": "n",
			},
		},
		{
			name:     "no match",
			query:    "!zzz",
			wantKeys: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output := uc.FilterBangs(ctx, FilterBangsInput{Query: tc.query})
			got := output.Suggestions
			require.Len(t, got, len(tc.wantKeys))
			for i, wantKey := range tc.wantKeys {
				require.Equal(t, wantKey, got[i].Key)
				if wantD, ok := tc.wantDescr[wantKey]; ok {
					require.Equal(t, wantD, got[i].Description)
				}
			}
		})
	}
}

func TestDetectBangKey(t *testing.T) {
	uc := NewSearchShortcutsUseCase(newShortcutsRegistry(t))
	ctx := context.Background()

	cases := []struct {
		name      string
		query     string
		wantKey   string
		wantDescr string
	}{
		{name: "no bang prefix", query: "gh test"},
		{name: "bang only has no space", query: "!gh"},
		{name: "space at position 1", query: "! test"},
		{name: "unknown bang", query: "!nope test"},
		{name: "keys are case-sensitive", query: "!GH test"},
		{name: "valid bang key", query: "!gh test", wantKey: "gh", wantDescr: "GitHub search"},
		{name: "trailing space completes the key", query: "!ddg ", wantKey: "ddg", wantDescr: "DuckDuckGo search"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output := uc.DetectBangKey(ctx, DetectBangKeyInput{Query: tc.query})
			require.Equal(t, tc.wantKey, output.Key)
			require.Equal(t, tc.wantDescr, output.Description)
		})
	}
}
