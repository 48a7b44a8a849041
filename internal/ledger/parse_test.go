package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"1234.56":      "1234.56",
		"1.234,56":     "1234.56",
		"R$ 10,00":     "10",
		"R$1.000.000":  "1000000",
		"1,234.56":     "1234.56",
		"-5,5":         "-5.5",
		" 42 ":         "42",
		"1 234,00":     "1234",
		"0,1":          "0.1",
		"1.234.567,89": "1234567.89",
		"R$ 1.500":     "1500",
		"1.234":        "1234",
		"-2.500":       "-2500",
		"0.125":        "0.125",
		"1234.567":     "1234.567",
		"12.3456":      "12.3456",
		"1.50":         "1.5",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(dec(want)), "%q parsed as %s", in, got)
	}

	for _, in := range []string{"", "abc", "R$", "12a"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-05-05", "05/05/2025", "5/5/2025", "2025-05-05T13:45:00Z", "2025-05-05 08:00:00"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseDate("2025-13-40")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "razao social", Fold("  Razão Social "))
	assert.Equal(t, "observacao", Fold("OBSERVAÇÃO"))
}
