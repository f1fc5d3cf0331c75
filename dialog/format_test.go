package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "₹0"},
		{n: 999, want: "₹999"},
		{n: 1_000, want: "₹1,000"},
		{n: 123_456, want: "₹1,23,456"},
		{n: 5_000_000, want: "₹50,00,000"},
		{n: 15_000_000, want: "₹1,50,00,000"},
		{n: -1_000, want: "-₹1,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.n))
	}
}
