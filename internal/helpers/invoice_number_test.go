package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "zero", n: 0, want: "00000"},
		{name: "one", n: 1, want: "00001"},
		{name: "forty two", n: 42, want: "00042"},
		{name: "largest five digit", n: 99999, want: "99999"},
		{name: "grows past five digits", n: 100000, want: "100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInvoiceNumber(tt.n))
		})
	}
}

func TestFormatInvoiceNumber_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { FormatInvoiceNumber(-1) })
}

func TestInvoiceNumber_RoundTrip(t *testing.T) {
	for n := int64(0); n <= 99999; n++ {
		formatted := FormatInvoiceNumber(n)
		parsed, err := ParseInvoiceNumber(formatted)
		require.NoError(t, err)
		if parsed != n {
			t.Fatalf("round trip of %d gave %d via %q", n, parsed, formatted)
		}
		if FormatInvoiceNumber(parsed) != formatted {
			t.Fatalf("formatting %d is not stable", n)
		}
	}
}

func TestParseInvoiceNumber_Invalid(t *testing.T) {
	tests := []string{"", "ABC12", "00-42", " 00042", "+0042", "42.0", "99999999999999999999"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseInvoiceNumber(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInvoiceNumber)
		})
	}
}
