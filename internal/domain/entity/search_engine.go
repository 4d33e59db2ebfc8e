package entity

// SearchTermsPlaceholder is the token replaced with the encoded query in
// engine URL templates. It follows the OpenSearch template syntax.
const SearchTermsPlaceholder = "{searchTerms}"

// DefaultSuggestURL is the shared suggestion template for engines whose own
// suggestion API is missing or unsuitable.
const DefaultSuggestURL = "https://duckduckgo.com/ac/?q={searchTerms}&type=list"

// SearchEngine is a redirect target described by two URL templates.
// Two engines are equal when both templates match.
type SearchEngine struct {
	SearchURL  string // e.g. "https://duckduckgo.com/?q={searchTerms}"
	SuggestURL string // OpenSearch suggestion endpoint
}

// IsZero reports whether the engine has no templates at all.
func (e SearchEngine) IsZero() bool {
	return e.SearchURL == "" && e.SuggestURL == ""
}

// UsesDefaultSuggest reports whether the engine delegates suggestions to the
// shared default endpoint.
func (e SearchEngine) UsesDefaultSuggest() bool {
	return e.SuggestURL == DefaultSuggestURL
}
