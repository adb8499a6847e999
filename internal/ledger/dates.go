package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsableDateRange indicates a caller-supplied range endpoint that
// could not be normalized to a calendar date.
var ErrUnparsableDateRange = errors.New("unparsable date range")

// Known fixed layouts, tried in order before the part heuristic. Day-first
// slash/dash orderings come before month-first so that ambiguous dates
// resolve day-first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

// Column aliases for date detection, in priority order.
var (
	startAliases = []string{"FECHA_INICIO", "FECHA INICIO", "FECHA_DESDE", "INICIO", "START"}
	endAliases   = []string{"FECHA_FIN", "FECHA FIN", "FECHA_HASTA", "FIN", "END"}
	dateAliases  = []string{"FECHA", "FECHA_ACTIVIDAD", "DIA", "DÍA", "DATE"}
)

// ParseDate normalizes a textual date to a UTC calendar date. It tries the
// fixed layouts first, then splits on slash, dash or dot and guesses the
// ordering: a part greater than 12 cannot be a month. Fully ambiguous
// numeric dates (both leading parts <= 12) are read day-first.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Drop a trailing time portion ("26/11/2025 08:30").
	if i := strings.IndexAny(s, " T"); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	var year, month, day int
	if nums[0] >= 1000 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		year = nums[2]
		if year < 100 {
			year += 2000
		}
		a, b := nums[0], nums[1]
		switch {
		case a > 12:
			day, month = a, b
		case b > 12:
			month, day = a, b
		default:
			day, month = a, b
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses both endpoints. Either endpoint failing to parse is
// fatal for the whole range.
func NewDateRange(from, to string) (DateRange, error) {
	start, ok := ParseDate(from)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnparsableDateRange, from)
	}
	end, ok := ParseDate(to)
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnparsableDateRange, to)
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r DateRange) Overlaps(start, end time.Time) bool {
	return !start.After(r.End) && !end.Before(r.Start)
}

// DateMode describes which date columns a table carries.
type DateMode int

const (
	DateModeNone   DateMode = iota // no date-bearing column detected
	DateModeSingle                 // one activity-date column
	DateModeRange                  // start/end column pair
)

// DetectDateMode inspects the table's columns. A start/end pair takes
// priority over a single date column.
func DetectDateMode(t *Table) DateMode {
	_, sok := t.Resolve(startAliases...)
	_, eok := t.Resolve(endAliases...)
	if sok && eok {
		return DateModeRange
	}
	if _, ok := t.Resolve(dateAliases...); ok {
		return DateModeSingle
	}
	return DateModeNone
}

// FilterByRange keeps the rows matching r. In single-date mode a row matches
// when its normalized date falls within the range; in start/end mode when
// the two intervals overlap. Rows whose dates do not parse are excluded.
// With no date-bearing column, or an inverted range, the table passes
// through unfiltered.
func FilterByRange(t *Table, r DateRange) *Table {
	if r.Start.After(r.End) {
		return t
	}
	switch DetectDateMode(t) {
	case DateModeRange:
		startCol, _ := t.Resolve(startAliases...)
		endCol, _ := t.Resolve(endAliases...)
		return t.filter(func(row int) bool {
			start, ok := ParseDate(t.Cell(row, startCol))
			if !ok {
				return false
			}
			end, ok := ParseDate(t.Cell(row, endCol))
			if !ok {
				return false
			}
			return r.Overlaps(start, end)
		})
	case DateModeSingle:
		dateCol, _ := t.Resolve(dateAliases...)
		return t.filter(func(row int) bool {
			d, ok := ParseDate(t.Cell(row, dateCol))
			return ok && r.Contains(d)
		})
	}
	return t
}
