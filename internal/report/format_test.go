package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{60000, "60.000,00"},
		{1234567.5, "1.234.567,50"},
		{0, "0,00"},
		{999, "999,00"},
		{1000, "1.000,00"},
		{-4500.75, "-4.500,75"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMoney(decimal.NewFromFloat(tc.in)), "input %v", tc.in)
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"60000", "60000", true},
		{"60000.00", "60000", true},
		{"60000,50", "60000.5", true},
		{"60.000,00", "60000", true},
		{"1.234.567,50", "1234567.5", true},
		{"1.234.567", "1234567", true},
		{"$ 60000", "60000", true},
		{"", "", false},
		{"N/A", "", false},
		{"sin valor", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseMoney(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			want, err := decimal.NewFromString(tc.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "input %q: want %s got %s", tc.in, want, got)
		}
	}
}

func TestParseMoney_UnparsableContributesNothing(t *testing.T) {
	total := decimal.Zero
	for _, cell := range []string{"60000", "N/A", "40000"} {
		if d, ok := ParseMoney(cell); ok {
			total = total.Add(d)
		}
	}
	assert.True(t, decimal.NewFromInt(100000).Equal(total))
}

func TestSpanishDate(t *testing.T) {
	d := time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "26 de noviembre de 2025", SpanishDate(d))

	d = time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2 de enero de 2026", SpanishDate(d))
}
