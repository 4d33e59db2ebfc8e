package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBangKey(t *testing.T) {
	for _, ok := range []string{"g", "ddg", "crates", "c++", "w.en", "3d"} {
		assert.Empty(t, ValidateBangKey(ok), "key %q should be valid", ok)
	}
	for _, bad := range []string{"", "  ", "G", "a b", "!g", "-x", "averyveryveryverylongbangkeywordthatgoesbeyond"} {
		assert.NotEmpty(t, ValidateBangKey(bad), "key %q should be invalid", bad)
	}
}

func TestValidateSearchTemplate(t *testing.T) {
	assert.Empty(t, ValidateSearchTemplate("https://duckduckgo.com/?q={searchTerms}"))
	assert.Equal(t, []string{"search url cannot be empty"}, ValidateSearchTemplate(""))
	assert.Equal(t,
		[]string{"search url must contain {searchTerms} placeholder for the search query"},
		ValidateSearchTemplate("https://duckduckgo.com/?q=%s"),
	)
	assert.Equal(t,
		[]string{"search url must be a valid absolute URL"},
		ValidateSearchTemplate("/search?q={searchTerms}"),
	)
}

func TestValidateSuggestTemplate(t *testing.T) {
	assert.Empty(t, ValidateSuggestTemplate(""))
	assert.Empty(t, ValidateSuggestTemplate("https://duckduckgo.com/ac/?q={searchTerms}&type=list"))
	assert.NotEmpty(t, ValidateSuggestTemplate("not a url {searchTerms}"))
}

func TestValidateEngineName(t *testing.T) {
	assert.Empty(t, ValidateEngineName("DuckDuckGo"))
	assert.NotEmpty(t, ValidateEngineName("two\nlines"))
}
