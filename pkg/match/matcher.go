// Package match finds the best benchmark appraisal for a listing using a
// layered strategy: exact YMMT, canonical-trim YMMT, exact YMM, then a
// global fuzzy fallback.
package match

import (
	"context"
	"fmt"
	"log/slog"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"autoprofit/pkg/normalize"
	"autoprofit/pkg/trim"
	domain "autoprofit/pkg/types"
)

// Source provides appraisal lookups. The full scan behind AllAppraisals is
// acceptable at the data scale this runs at (low thousands of rows); the
// interface exists so it can be swapped for an indexed structure without
// touching the matcher.
//
// AppraisalsByYMMT matches make/model/trim case-insensitively.
// AppraisalsByYMM returns only rows whose trim is NULL. Both must return
// rows in stable insertion (id) order; the matcher takes the first.
type Source interface {
	AppraisalsByYMMT(ctx context.Context, year int, make, model, trimText string) ([]domain.Appraisal, error)
	AppraisalsByYMM(ctx context.Context, year int, make, model string) ([]domain.Appraisal, error)
	AllAppraisals(ctx context.Context) ([]domain.Appraisal, error)
}

// Canonicalizer resolves raw trim text to a canonical trim. Satisfied by
// *trim.Mapper.
type Canonicalizer interface {
	Map(ctx context.Context, make, model string, year int, rawTrim string) (trim.Result, error)
}

// Default acceptance thresholds.
const (
	// DefaultFuzzyAcceptMin is the global fuzzy fallback acceptance score.
	DefaultFuzzyAcceptMin = 80
	// DefaultCanonicalMinConfidence gates the canonical-trim YMMT step.
	DefaultCanonicalMinConfidence = 85
)

// Matcher resolves listings to appraisals.
type Matcher struct {
	source       Source
	trims        Canonicalizer
	fuzzyMin     int
	canonicalMin int
	log          *slog.Logger
}

// Option configures the Matcher.
type Option func(*Matcher)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Matcher) {
		m.log = l
	}
}

// WithFuzzyAcceptMin overrides the fuzzy fallback threshold.
func WithFuzzyAcceptMin(threshold int) Option {
	return func(m *Matcher) {
		m.fuzzyMin = threshold
	}
}

// WithCanonicalMinConfidence overrides the canonicalization confidence gate.
func WithCanonicalMinConfidence(threshold int) Option {
	return func(m *Matcher) {
		m.canonicalMin = threshold
	}
}

// NewMatcher creates a Matcher. trims may be nil, which disables the
// canonical-trim step.
func NewMatcher(source Source, trims Canonicalizer, opts ...Option) *Matcher {
	m := &Matcher{
		source:       source,
		trims:        trims,
		fuzzyMin:     DefaultFuzzyAcceptMin,
		canonicalMin: DefaultCanonicalMinConfidence,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindBest returns the best-matching appraisal for the listing, the level
// it matched at, and a 0-100 confidence. A listing missing make, model, or
// year short-circuits to (nil, NONE, 0) — that is a defined result, not a
// failure. Only datastore errors propagate.
func (m *Matcher) FindBest(ctx context.Context, l *domain.Listing) (*domain.Appraisal, domain.MatchLevel, int, error) {
	if !l.HasIdentity() {
		return nil, domain.MatchNone, 0, nil
	}

	// Exact YMMT.
	if l.Trim != "" {
		rows, err := m.source.AppraisalsByYMMT(ctx, l.Year, l.Make, l.Model, l.Trim)
		if err != nil {
			return nil, domain.MatchNone, 0, fmt.Errorf("exact YMMT lookup: %w", err)
		}
		if len(rows) > 0 {
			return &rows[0], domain.MatchYMMT, 100, nil
		}

		// Canonicalized-trim YMMT.
		if app, conf, err := m.canonicalYMMT(ctx, l); err != nil {
			return nil, domain.MatchNone, 0, err
		} else if app != nil {
			return app, domain.MatchYMMT, conf, nil
		}
	}

	// Exact YMM: a trim-less benchmark covering every trim of the YMM.
	// Runs whether or not the listing has a trim.
	rows, err := m.source.AppraisalsByYMM(ctx, l.Year, l.Make, l.Model)
	if err != nil {
		return nil, domain.MatchNone, 0, fmt.Errorf("exact YMM lookup: %w", err)
	}
	if len(rows) > 0 {
		return &rows[0], domain.MatchYMM, 100, nil
	}

	return m.fuzzyFallback(ctx, l)
}

// canonicalYMMT maps the listing trim to a canonical trim and retries the
// YMMT lookup with it. Canonicalization errors are a data-quality concern:
// logged, then treated as "no canonical trim".
func (m *Matcher) canonicalYMMT(ctx context.Context, l *domain.Listing) (*domain.Appraisal, int, error) {
	if m.trims == nil {
		return nil, 0, nil
	}

	res, err := m.trims.Map(ctx, l.Make, l.Model, l.Year, l.Trim)
	if err != nil {
		m.log.Warn("trim canonicalization failed",
			"vin", l.VIN, "trim", l.Trim, "error", err)
		return nil, 0, nil
	}
	if res.MatchType == trim.MatchNone || res.Confidence < m.canonicalMin {
		return nil, 0, nil
	}

	rows, err := m.source.AppraisalsByYMMT(ctx, l.Year, l.Make, l.Model, res.Canonical)
	if err != nil {
		return nil, 0, fmt.Errorf("canonical YMMT lookup: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	return &rows[0], min(res.Confidence, 100), nil
}

// fuzzyFallback scans every appraisal, scoring the listing's full and base
// keys against each appraisal's keys with an order-insensitive token sort
// ratio. The level reflects which key won for the best candidate.
func (m *Matcher) fuzzyFallback(ctx context.Context, l *domain.Listing) (*domain.Appraisal, domain.MatchLevel, int, error) {
	full, base := normalize.Keys(l.Year, l.Make, l.Model, l.Trim)

	apps, err := m.source.AllAppraisals(ctx)
	if err != nil {
		return nil, domain.MatchNone, 0, fmt.Errorf("scanning appraisals: %w", err)
	}

	var (
		best      *domain.Appraisal
		bestLevel = domain.MatchNone
		bestScore int
	)
	for i := range apps {
		a := &apps[i]
		aTrim := ""
		if a.Trim != nil {
			aTrim = *a.Trim
		}
		aFull, aBase := normalize.Keys(a.Year, a.Make, a.Model, aTrim)

		s1 := fuzzy.TokenSortRatio(full, aFull)
		s2 := fuzzy.TokenSortRatio(base, aBase)

		score := max(s1, s2)
		if score > bestScore {
			best = a
			bestScore = score
			if s1 >= s2 {
				bestLevel = domain.MatchYMMT
			} else {
				bestLevel = domain.MatchYMM
			}
		}
	}

	if best == nil || bestScore < m.fuzzyMin {
		return nil, domain.MatchNone, bestScore, nil
	}
	return best, bestLevel, bestScore, nil
}
