package engine

import "github.com/bnema/banger/internal/domain/entity"

// Built-in bang keywords.
const (
	KeyGoogle     = "g"
	KeyDuckDuckGo = "ddg"
	KeyWikipedia  = "w"
	KeyNWS        = "nws"
	KeyCpp        = "cpp"
	KeyRust       = "rust"
	KeyCrates     = "crates"
)

// Google is the engine preferred on trusted networks.
var Google = entity.SearchEngine{
	SearchURL:  "https://www.google.com/search?hl=en&q={searchTerms}",
	SuggestURL: "https://www.google.com/complete/search?hl=en&client=firefox&q={searchTerms}",
}

// DuckDuckGo is the privacy-preserving default and the bang suggester.
var DuckDuckGo = entity.SearchEngine{
	SearchURL:  "https://duckduckgo.com/?q={searchTerms}",
	SuggestURL: "https://duckduckgo.com/ac/?q={searchTerms}&type=list",
}

// Wikipedia searches the English Wikipedia.
var Wikipedia = entity.SearchEngine{
	SearchURL:  "https://en.wikipedia.org/w/index.php?title=Special:Search&search={searchTerms}",
	SuggestURL: "https://en.wikipedia.org/w/api.php?action=opensearch&search={searchTerms}&namespace=0",
}

// NWS looks up a National Weather Service forecast by zip or city.
// Its own suggestion API does not fit free-text queries.
var NWS = entity.SearchEngine{
	SearchURL:  "https://forecast.weather.gov/zipcity.php?inputstring={searchTerms}",
	SuggestURL: entity.DefaultSuggestURL,
}

// Cpp searches cppreference.
var Cpp = entity.SearchEngine{
	SearchURL:  "https://en.cppreference.com/mwiki/index.php?search={searchTerms}",
	SuggestURL: entity.DefaultSuggestURL,
}

// Rust searches the Rust standard library documentation.
var Rust = entity.SearchEngine{
	SearchURL:  "https://doc.rust-lang.org/std/?search={searchTerms}",
	SuggestURL: entity.DefaultSuggestURL,
}

// Crates searches crates.io.
var Crates = entity.SearchEngine{
	SearchURL:  "https://crates.io/search?q={searchTerms}",
	SuggestURL: entity.DefaultSuggestURL,
}

// DefaultEntries returns the built-in catalog.
func DefaultEntries() []Entry {
	return []Entry{
		{Key: KeyGoogle, Name: "Google", Engine: Google},
		{Key: KeyDuckDuckGo, Name: "DuckDuckGo", Engine: DuckDuckGo},
		{Key: KeyWikipedia, Name: "Wikipedia", Engine: Wikipedia},
		{Key: KeyNWS, Name: "National Weather Service", Engine: NWS},
		{Key: KeyCpp, Name: "cppreference", Engine: Cpp},
		{Key: KeyRust, Name: "Rust std docs", Engine: Rust},
		{Key: KeyCrates, Name: "crates.io", Engine: Crates},
	}
}

// DefaultRegistry builds a registry holding the built-in catalog.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultEntries()...)
	if err != nil {
		panic("engine: invalid built-in catalog: " + err.Error())
	}
	return r
}
