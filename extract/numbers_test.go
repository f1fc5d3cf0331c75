package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberWithUnit(t *testing.T) {
	tests := []struct {
		name    string
		numeral string
		unit    string
		want    int64
	}{
		{name: "lakh", numeral: "50", unit: "lakh", want: 5_000_000},
		{name: "lac alias", numeral: "50", unit: "lac", want: 5_000_000},
		{name: "fractional crore", numeral: "1.5", unit: "crore", want: 15_000_000},
		{name: "k shorthand", numeral: "750", unit: "k", want: 750_000},
		{name: "million", numeral: "2", unit: "million", want: 2_000_000},
		{name: "m shorthand", numeral: "2", unit: "m", want: 2_000_000},
		{name: "unit omitted", numeral: "4500000", unit: "", want: 4_500_000},
		{name: "case insensitive unit", numeral: "50", unit: "Lakh", want: 5_000_000},
		{name: "thousands separators stripped", numeral: "4,500,000", unit: "", want: 4_500_000},
		{name: "unknown unit ignored", numeral: "50", unit: "euros", want: 50},
		{name: "non-numeric yields zero", numeral: "fifty", unit: "lakh", want: 0},
		{name: "empty yields zero", numeral: "", unit: "", want: 0},
		{name: "whitespace only yields zero", numeral: "   ", unit: "crore", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumberWithUnit(tt.numeral, tt.unit))
		})
	}
}

func TestParseNumberOrWord(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "number word", input: "two", want: 2, wantOK: true},
		{name: "number word uppercased", input: "  Ten ", want: 10, wantOK: true},
		{name: "numeral with unit", input: "50 lakh", want: 5_000_000, wantOK: true},
		{name: "fractional with unit", input: "1.5 crore", want: 15_000_000, wantOK: true},
		{name: "plain number", input: "4500000", want: 4_500_000, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "no numeric content", input: "any", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumberOrWord(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
