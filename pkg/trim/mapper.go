// Package trim maps free-text listing trims to canonical trims using alias
// tables and constrained fuzzy matching, scoped to the candidate trims for
// the vehicle's make/model/year.
package trim

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"autoprofit/pkg/normalize"
	domain "autoprofit/pkg/types"
)

// MatchType reports which pass produced a canonical trim.
type MatchType string

// Match types, strongest first.
const (
	MatchExact MatchType = "exact"
	MatchAlias MatchType = "alias"
	MatchFuzzy MatchType = "fuzzy"
	MatchNone  MatchType = "none"
)

// Result is the outcome of canonicalizing one raw trim string.
type Result struct {
	Canonical  string
	Confidence int
	MatchType  MatchType
}

func noMatch() Result {
	return Result{MatchType: MatchNone}
}

// Source provides the curated reference data. Implementations must return
// only active rows matching the given scope.
type Source interface {
	CandidateTrims(ctx context.Context, make, model string, year int) ([]domain.CanonicalTrim, error)
	AliasesFor(ctx context.Context, canonicalIDs []string) ([]domain.TrimAlias, error)
}

// DefaultFuzzyMin is the fuzzy-pass acceptance score. Stricter than the
// appraisal matcher's global threshold: this pass already compares within a
// single make/model/year, so a high bar avoids weak same-model confusions.
const DefaultFuzzyMin = 88

// Mapper canonicalizes trims with a bounded TTL cache over candidate
// lookups. The cache is purely a performance optimization; results are
// identical with or without it.
type Mapper struct {
	source     Source
	fuzzyMin   int
	candidates *gocache.Cache
}

// MapperOption configures the Mapper.
type MapperOption func(*Mapper)

// WithFuzzyMin overrides the fuzzy acceptance threshold.
func WithFuzzyMin(threshold int) MapperOption {
	return func(m *Mapper) {
		m.fuzzyMin = threshold
	}
}

// WithCacheTTL overrides the candidate cache TTL.
func WithCacheTTL(ttl time.Duration) MapperOption {
	return func(m *Mapper) {
		m.candidates = gocache.New(ttl, 2*ttl)
	}
}

// NewMapper creates a Mapper reading reference data from source.
func NewMapper(source Source, opts ...MapperOption) *Mapper {
	m := &Mapper{
		source:     source,
		fuzzyMin:   DefaultFuzzyMin,
		candidates: gocache.New(time.Hour, 2*time.Hour),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// InvalidateCache drops every cached candidate set. Call after mutating
// CanonicalTrim or TrimAlias data.
func (m *Mapper) InvalidateCache() {
	m.candidates.Flush()
}

// Map resolves rawTrim against the canonical trims for the vehicle.
// Passes run in order — exact alias, contains alias, constrained fuzzy —
// and the first success wins. An empty candidate set or raw trim is an
// immediate no-match, not an error.
func (m *Mapper) Map(ctx context.Context, mk, model string, year int, rawTrim string) (Result, error) {
	if rawTrim == "" {
		return noMatch(), nil
	}

	cands, err := m.candidateTrims(ctx, mk, model, year)
	if err != nil {
		return noMatch(), fmt.Errorf("loading candidate trims: %w", err)
	}
	if len(cands) == 0 {
		return noMatch(), nil
	}

	res, err := m.aliasPass(ctx, rawTrim, cands)
	if err != nil {
		return noMatch(), err
	}
	if res.MatchType != MatchNone {
		return res, nil
	}

	return m.fuzzyPass(rawTrim, cands), nil
}

func (m *Mapper) candidateTrims(ctx context.Context, mk, model string, year int) ([]domain.CanonicalTrim, error) {
	key := fmt.Sprintf("%s|%s|%d", strings.ToLower(mk), strings.ToLower(model), year)
	if cached, ok := m.candidates.Get(key); ok {
		return cached.([]domain.CanonicalTrim), nil
	}

	cands, err := m.source.CandidateTrims(ctx, mk, model, year)
	if err != nil {
		return nil, err
	}

	m.candidates.SetDefault(key, cands)
	return cands, nil
}

// aliasPass searches the alias table scoped to the candidate set. EXACT
// patterns are tried before CONTAINS; within each pass the lowest priority
// value wins and short-circuits.
func (m *Mapper) aliasPass(ctx context.Context, rawTrim string, cands []domain.CanonicalTrim) (Result, error) {
	ids := make([]string, len(cands))
	byID := make(map[string]string, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
		byID[c.ID] = c.CanonicalTrim
	}

	aliases, err := m.source.AliasesFor(ctx, ids)
	if err != nil {
		return noMatch(), fmt.Errorf("loading trim aliases: %w", err)
	}

	sort.SliceStable(aliases, func(i, j int) bool {
		return aliases[i].Priority < aliases[j].Priority
	})

	// EXACT compares the raw trim case-insensitively but whitespace-exact,
	// deliberately skipping the normalization CONTAINS applies. EXACT
	// aliases are stored verbatim, so normalizing here would stop them
	// matching the strings they were written for.
	for _, a := range aliases {
		if a.PatternType != domain.PatternExact {
			continue
		}
		if strings.EqualFold(a.Alias, rawTrim) {
			return Result{Canonical: byID[a.CanonicalID], Confidence: 100, MatchType: MatchExact}, nil
		}
	}

	rawNorm := normalize.TrimText(rawTrim)
	for _, a := range aliases {
		if a.PatternType != domain.PatternContains {
			continue
		}
		aliasNorm := normalize.TrimText(a.Alias)
		if aliasNorm != "" && strings.Contains(rawNorm, aliasNorm) {
			return Result{Canonical: byID[a.CanonicalID], Confidence: 100, MatchType: MatchAlias}, nil
		}
	}

	return noMatch(), nil
}

// fuzzyPass scores rawTrim against each candidate's canonical text with an
// order- and duplicate-insensitive token set ratio, keeping the best
// candidate at or above the acceptance threshold.
func (m *Mapper) fuzzyPass(rawTrim string, cands []domain.CanonicalTrim) Result {
	rawNorm := normalize.TrimText(rawTrim)

	best := noMatch()
	for _, c := range cands {
		score := fuzzy.TokenSetRatio(rawNorm, normalize.TrimText(c.CanonicalTrim))
		if score >= m.fuzzyMin && score > best.Confidence {
			best = Result{Canonical: c.CanonicalTrim, Confidence: score, MatchType: MatchFuzzy}
		}
	}
	return best
}
