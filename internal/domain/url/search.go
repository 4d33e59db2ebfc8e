package url

import (
	neturl "net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/banger/internal/domain/entity"
)

// SplitBang extracts a bang keyword from input.
// The keyword runs from after the leading "!" up to the first whitespace rune
// or the end of input. When a separator follows the keyword, remainder is the
// text after that single separator and hasRemainder is true.
// Returns found=false when input does not start with "!".
//
// Examples:
//
//	"!g golang"     → ("g", "golang", true, true)
//	"!ddg  two"     → ("ddg", " two", true, true)
//	"!g "           → ("g", "", true, true)
//	"!g"            → ("g", "", false, true)
//	"plain text"    → ("", "", false, false)
func SplitBang(input string) (bang, remainder string, hasRemainder, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false, false
	}

	rest := input[1:]
	sepIdx := strings.IndexFunc(rest, unicode.IsSpace)
	if sepIdx == -1 {
		return rest, "", false, true
	}

	_, sepWidth := utf8.DecodeRuneInString(rest[sepIdx:])
	return rest[:sepIdx], rest[sepIdx+sepWidth:], true, true
}

// EscapeQuery percent-encodes a query for use as a URL query component.
// Unreserved characters (A-Z a-z 0-9 - _ . ~) are kept; a space becomes
// "%20" and every other byte becomes "%XX". Existing escapes are encoded
// again, there is no decode step.
func EscapeQuery(query string) string {
	// QueryEscape already encodes a literal '+' as %2B, so every '+' left in
	// its output stands for a space.
	return strings.ReplaceAll(neturl.QueryEscape(query), "+", "%20")
}

// FormatSearchURL substitutes the encoded query into template.
// A template without the placeholder is returned unchanged.
func FormatSearchURL(query, template string) string {
	if !strings.Contains(template, entity.SearchTermsPlaceholder) {
		return template
	}
	return strings.ReplaceAll(template, entity.SearchTermsPlaceholder, EscapeQuery(query))
}
