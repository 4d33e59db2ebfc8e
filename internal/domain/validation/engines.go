// Package validation holds field-level checks for user-supplied engine definitions.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/bnema/banger/internal/domain/entity"
)

var bangKeyRE = regexp.MustCompile(`^[a-z0-9][a-z0-9._+-]{0,31}$`)

// ValidateBangKey checks a bang keyword as written in the config file.
func ValidateBangKey(value string) []string {
	var errs []string
	if strings.TrimSpace(value) == "" {
		errs = append(errs, "bang key cannot be empty")
		return errs
	}
	if !bangKeyRE.MatchString(value) {
		errs = append(errs, "bang key must be 1-32 lowercase letters, digits or ._+- and start with a letter or digit")
	}
	return errs
}

// ValidateSearchTemplate checks a search URL template.
func ValidateSearchTemplate(value string) []string {
	return validateTemplate("search url", value)
}

// ValidateSuggestTemplate checks a suggestion URL template. Empty is allowed
// and means the shared default suggester.
func ValidateSuggestTemplate(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return validateTemplate("suggest url", value)
}

func validateTemplate(label, value string) []string {
	var errs []string
	value = strings.TrimSpace(value)
	if value == "" {
		errs = append(errs, label+" cannot be empty")
		return errs
	}
	if !strings.Contains(value, entity.SearchTermsPlaceholder) {
		errs = append(errs, label+" must contain "+entity.SearchTermsPlaceholder+" placeholder for the search query")
		return errs
	}

	candidate := strings.ReplaceAll(value, entity.SearchTermsPlaceholder, "query")
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs = append(errs, label+" must be a valid absolute URL")
	}

	return errs
}

// ValidateEngineName checks a display name.
func ValidateEngineName(value string) []string {
	var errs []string
	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, "engine name must not contain newlines")
	}
	if len(value) > 200 {
		errs = append(errs, "engine name is too long")
	}
	return errs
}
