package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "lowercases", in: "Honda CIVIC", want: "honda civic"},
		{name: "strips punctuation", in: "Sport! (Premium)", want: "sport premium"},
		{name: "keeps hyphens", in: "F-150", want: "f-150"},
		{name: "collapses whitespace", in: "  EX   L  ", want: "ex l"},
		{name: "all punctuation", in: "!!!", want: ""},
		{name: "slashes become spaces", in: "EX/L", want: "ex l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Token(tt.in))
		})
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		year     int
		make     string
		model    string
		trim     string
		wantFull string
		wantBase string
	}{
		{
			name: "full vehicle",
			year: 2019, make: "Honda", model: "Civic", trim: "EX-L",
			wantFull: "2019 honda civic ex-l",
			wantBase: "2019 honda civic",
		},
		{
			name: "no trim collapses to base",
			year: 2019, make: "Honda", model: "Civic", trim: "",
			wantFull: "2019 honda civic",
			wantBase: "2019 honda civic",
		},
		{
			name: "zero year stays zero",
			year: 0, make: "Honda", model: "Civic", trim: "",
			wantFull: "0 honda civic",
			wantBase: "0 honda civic",
		},
		{
			name: "drivetrain stripped from trim only",
			year: 2020, make: "BMW", model: "M340i", trim: "xDrive Premium",
			wantFull: "2020 bmw m340i premium",
			wantBase: "2020 bmw m340i",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			full, base := Keys(tt.year, tt.make, tt.model, tt.trim)
			assert.Equal(t, tt.wantFull, full)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}

func TestTrimText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain trim", in: "Sport Premium", want: "sport premium"},
		{name: "strips 4matic", in: "AMG GT 4MATIC", want: "amg gt"},
		{name: "strips awd", in: "Limited AWD", want: "limited"},
		{name: "strips quattro", in: "Premium Plus quattro", want: "premium plus"},
		{name: "only drivetrain", in: "AWD", want: ""},
		{name: "drivetrain inside word kept", in: "awd-special", want: "awd-special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TrimText(tt.in))
		})
	}
}
