package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/banger/internal/application/port"
	"github.com/bnema/banger/internal/domain/engine"
	"github.com/bnema/banger/internal/domain/entity"
	"github.com/bnema/banger/internal/domain/url"
	"github.com/bnema/banger/internal/logging"
)

// DefaultTrustedMarker identifies the managed network on which the trusted
// engine is preferred.
const DefaultTrustedMarker = "BVSD"

// ResolverPolicy names, by bang key, the engines used when a query carries
// no usable bang.
type ResolverPolicy struct {
	// PrivateEngine is used when no SSID is available or the network is not trusted.
	PrivateEngine string
	// TrustedEngine is used when the SSID contains one of TrustedMarkers.
	TrustedEngine  string
	TrustedMarkers []string
	// BangSuggester replaces the resolved engine for suggestion requests
	// once a bang was stripped. Empty disables the override.
	BangSuggester string
}

// DefaultResolverPolicy returns DuckDuckGo off trusted networks, Google on
// networks whose SSID contains "BVSD", and DuckDuckGo as bang suggester.
func DefaultResolverPolicy() ResolverPolicy {
	return ResolverPolicy{
		PrivateEngine:  engine.KeyDuckDuckGo,
		TrustedEngine:  engine.KeyGoogle,
		TrustedMarkers: []string{DefaultTrustedMarker},
		BangSuggester:  engine.KeyDuckDuckGo,
	}
}

// ResolveQueryUseCase maps a raw search string to an engine and a cleaned query.
// It holds no mutable state and is safe for concurrent use.
type ResolveQueryUseCase struct {
	registry *engine.Registry
	network  port.NetworkContextProvider

	private   entity.SearchEngine
	trusted   entity.SearchEngine
	markers   []string
	suggester *entity.SearchEngine
}

// NewResolveQueryUseCase creates a resolver over registry.
// network may be nil, in which case no SSID is ever available.
func NewResolveQueryUseCase(
	registry *engine.Registry,
	network port.NetworkContextProvider,
	policy ResolverPolicy,
) (*ResolveQueryUseCase, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}

	private, ok := registry.Lookup(policy.PrivateEngine)
	if !ok {
		return nil, fmt.Errorf("default engine %q is not a registered bang", policy.PrivateEngine)
	}
	trusted, ok := registry.Lookup(policy.TrustedEngine)
	if !ok {
		return nil, fmt.Errorf("trusted engine %q is not a registered bang", policy.TrustedEngine)
	}

	uc := &ResolveQueryUseCase{
		registry: registry,
		network:  network,
		private:  private,
		trusted:  trusted,
	}

	for _, marker := range policy.TrustedMarkers {
		if marker != "" {
			uc.markers = append(uc.markers, marker)
		}
	}

	if policy.BangSuggester != "" {
		suggester, ok := registry.Lookup(policy.BangSuggester)
		if !ok {
			return nil, fmt.Errorf("bang suggester %q is not a registered bang", policy.BangSuggester)
		}
		uc.suggester = &suggester
	}

	return uc, nil
}

// Registry returns the registry the resolver reads from.
func (uc *ResolveQueryUseCase) Registry() *engine.Registry {
	return uc.registry
}

// ResolveEngine selects the engine for query and the text to search for.
//
// A query "!<bang> <rest>" with a registered bang yields that engine and
// <rest>. Anything else, including an unknown bang or a bang with no
// separator after it, yields the default engine and the query unchanged.
func (uc *ResolveQueryUseCase) ResolveEngine(ctx context.Context, query string) (entity.SearchEngine, string) {
	if _, e, remainder, ok := uc.matchBang(query); ok {
		return e, remainder
	}
	return uc.DefaultEngine(ctx), query
}

// DefaultEngine picks the engine for queries without a usable bang, based on
// the current wireless network.
func (uc *ResolveQueryUseCase) DefaultEngine(ctx context.Context) entity.SearchEngine {
	ssid, ok := uc.currentSSID(ctx)
	e, _ := uc.engineForNetwork(ssid, ok)
	return e
}

// BangSuggester returns the engine used for suggestions on banged queries.
// Engines' own suggestion APIs handle a "!bang" prefix poorly.
func (uc *ResolveQueryUseCase) BangSuggester() (entity.SearchEngine, bool) {
	if uc.suggester == nil {
		return entity.SearchEngine{}, false
	}
	return *uc.suggester, true
}

// FormatRedirectURL encodes query and substitutes it into template.
func (uc *ResolveQueryUseCase) FormatRedirectURL(query, template string) string {
	return url.FormatSearchURL(query, template)
}

// SearchURL returns the redirect target for a search request.
func (uc *ResolveQueryUseCase) SearchURL(ctx context.Context, query string) string {
	e, remainder := uc.ResolveEngine(ctx, query)
	target := uc.FormatRedirectURL(remainder, e.SearchURL)

	logging.FromContext(ctx).Debug().
		Str("query", query).
		Str("remainder", remainder).
		Str("target", target).
		Msg("resolved search")

	return target
}

// SuggestURL returns the redirect target for a suggestion request.
//
// The original query, bang prefix included, is what gets substituted. Only
// the engine changes when a bang was stripped.
func (uc *ResolveQueryUseCase) SuggestURL(ctx context.Context, query string) string {
	e, remainder := uc.ResolveEngine(ctx, query)
	if remainder != query {
		if suggester, ok := uc.BangSuggester(); ok {
			e = suggester
		}
	}
	target := uc.FormatRedirectURL(query, e.SuggestURL)

	logging.FromContext(ctx).Debug().
		Str("query", query).
		Str("target", target).
		Msg("resolved suggestion")

	return target
}

// ResolveInput contains the query to explain.
type ResolveInput struct {
	Query string
}

// ResolveOutput describes how a query was routed.
type ResolveOutput struct {
	Engine     entity.SearchEngine
	Bang       string // matched bang key, empty when the default engine was used
	EngineName string // registry name, empty when the engine is not in the registry
	Remainder  string
	SearchURL  string
	SuggestURL string

	// Network details, only set when the default engine was consulted.
	UsedDefault bool
	SSID        string
	SSIDFound   bool
	Trusted     bool
}

// Resolve explains the routing of a query in one pass. It performs at most
// one SSID lookup.
func (uc *ResolveQueryUseCase) Resolve(ctx context.Context, input ResolveInput) *ResolveOutput {
	q := input.Query
	out := &ResolveOutput{}

	if bang, e, remainder, ok := uc.matchBang(q); ok {
		out.Engine = e
		out.Bang = bang
		out.Remainder = remainder
	} else {
		out.UsedDefault = true
		out.SSID, out.SSIDFound = uc.currentSSID(ctx)
		out.Engine, out.Trusted = uc.engineForNetwork(out.SSID, out.SSIDFound)
		out.Remainder = q
	}

	out.EngineName = uc.nameOf(out.Bang, out.Engine)
	out.SearchURL = uc.FormatRedirectURL(out.Remainder, out.Engine.SearchURL)

	suggestEngine := out.Engine
	if out.Remainder != q {
		if suggester, ok := uc.BangSuggester(); ok {
			suggestEngine = suggester
		}
	}
	out.SuggestURL = uc.FormatRedirectURL(q, suggestEngine.SuggestURL)

	return out
}

// matchBang returns the engine and remainder when query starts with a
// registered bang followed by a separator.
func (uc *ResolveQueryUseCase) matchBang(query string) (string, entity.SearchEngine, string, bool) {
	bang, remainder, hasRemainder, found := url.SplitBang(query)
	if !found || !hasRemainder {
		return "", entity.SearchEngine{}, "", false
	}
	e, ok := uc.registry.Lookup(bang)
	if !ok {
		return "", entity.SearchEngine{}, "", false
	}
	return bang, e, remainder, true
}

func (uc *ResolveQueryUseCase) currentSSID(ctx context.Context) (string, bool) {
	if uc.network == nil {
		return "", false
	}
	return uc.network.CurrentSSID(ctx)
}

func (uc *ResolveQueryUseCase) engineForNetwork(ssid string, ok bool) (entity.SearchEngine, bool) {
	if !ok {
		return uc.private, false
	}
	for _, marker := range uc.markers {
		if strings.Contains(ssid, marker) {
			return uc.trusted, true
		}
	}
	return uc.private, false
}

func (uc *ResolveQueryUseCase) nameOf(bang string, e entity.SearchEngine) string {
	if bang != "" {
		if entry, ok := uc.registry.Entry(bang); ok {
			return entry.Name
		}
	}
	for _, entry := range uc.registry.Entries() {
		if entry.Engine == e {
			return entry.Name
		}
	}
	return ""
}
