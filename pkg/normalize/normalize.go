// Package normalize canonicalizes year/make/model/trim text so that fuzzy
// scores are always computed on identically prepared strings on both sides
// of a comparison.
package normalize

import (
	"strconv"
	"strings"
)

// Drivetrain tokens are stripped from the trim segment only; appraisals
// frequently omit them while listings spell them out.
var drivetrainTokens = map[string]struct{}{
	"4matic":  {},
	"xdrive":  {},
	"awd":     {},
	"rwd":     {},
	"fwd":     {},
	"quattro": {},
}

// Token lowercases s, replaces punctuation with whitespace (hyphens are
// kept), and collapses runs of whitespace. It never fails; empty or
// all-punctuation input yields "".
func Token(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Keys builds the comparable keys for a vehicle. fullKey is
// "{year} {make} {model} {trim}" and baseKey omits the trim segment.
// A zero year stays "0"-prefixed; an absent trim yields an empty segment.
func Keys(year int, make, model, trim string) (fullKey, baseKey string) {
	makeN := Token(make)
	modelN := Token(model)
	trimN := stripDrivetrain(Token(trim))

	yearS := strconv.Itoa(year)
	baseKey = strings.TrimSpace(yearS + " " + makeN + " " + modelN)
	fullKey = strings.TrimSpace(baseKey + " " + trimN)
	return fullKey, baseKey
}

// TrimText normalizes raw trim text for comparison: Token plus drivetrain
// stripping. Both sides of any trim comparison must go through this.
func TrimText(trim string) string {
	return stripDrivetrain(Token(trim))
}

func stripDrivetrain(trim string) string {
	if trim == "" {
		return ""
	}
	fields := strings.Fields(trim)
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := drivetrainTokens[f]; !drop {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
