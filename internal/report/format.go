package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with dot as thousands separator and comma as
// decimal separator: 60000 -> "60.000,00".
func FormatMoney(v decimal.Decimal) string {
	str := v.Abs().StringFixed(2)
	parts := strings.Split(str, ".")

	intPart := parts[0]
	var result strings.Builder
	if v.IsNegative() {
		result.WriteRune('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			result.WriteRune('.')
		}
		result.WriteRune(digit)
	}

	return result.String() + "," + parts[1]
}

// ParseMoney normalizes a monetary cell value. It accepts plain decimals
// ("60000", "60000.5") and values already carrying thousands-dot or
// decimal-comma notation ("60.000,00", "60000,50"). Currency symbols and
// spaces are stripped. A false return means the value is not numeric.
func ParseMoney(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("$", "", " ", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, false
	}
	switch {
	case strings.Contains(s, ","):
		// Comma is the decimal mark; any dots are thousands separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		// Multiple dots can only be thousands separators.
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril",
	"mayo", "junio", "julio", "agosto",
	"septiembre", "octubre", "noviembre", "diciembre",
}

// SpanishDate renders a date in the long Spanish form: "26 de noviembre de 2025".
func SpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
