package geo

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ExtractAreaCode pulls a North American area code out of a phone number
// in any common format: 3802275839, (380) 227-5839, +1 380-227-5839, etc.
// Returns "" when no NANP area code can be determined.
func ExtractAreaCode(phone string) string {
	if phone == "" {
		return ""
	}

	if num, err := phonenumbers.Parse(phone, "US"); err == nil {
		national := strconv.FormatUint(num.GetNationalNumber(), 10)
		if len(national) == 10 {
			return national[:3]
		}
	}

	// Parsing can reject partial or oddly formatted numbers the scrapers
	// still produce; fall back to plain digit rules.
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10:
		return d[:3]
	case len(d) == 11 && d[0] == '1':
		return d[1:4]
	default:
		return ""
	}
}
