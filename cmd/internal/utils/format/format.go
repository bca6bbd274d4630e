// Package format holds the presentation helpers used next to validated
// documents: BRL currency, pt-BR dates and text truncation.
//
// None of these fail. Missing values render as NotAvailable and values that
// cannot be understood are handed back as they came.
package format

import (
	"math"
	"regexp"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	NotAvailable          = "N/A"
	DefaultTruncateLength = 50

	brDateLayout = "02/01/2006"
)

var (
	compactDateRe = regexp.MustCompile(`^\d{8}$`)
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	brDateRe      = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

	fallbackLayouts = []string{time.RFC1123Z, time.RFC1123, time.RFC850, time.ANSIC}
)

// Currency renders value as Brazilian reais, e.g. "R$ 1.234,56" with a
// non-breaking space after the symbol, as CLDR pt-BR renders it.
func Currency(value float64) string {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + "R$\u00a0" + p.Sprintf("%v", number.Decimal(value, number.Scale(2)))
}

// Date renders value as DD/MM/YYYY. It understands YYYYMMDD, ISO dates
// (with or without a time part), DD/MM/YYYY and a few RFC layouts.
func Date(value string) string {
	if value == "" {
		return NotAvailable
	}

	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format(brDateLayout)
}

func parseDate(value string) (time.Time, bool) {
	var (
		t   time.Time
		err error
	)

	switch {
	case compactDateRe.MatchString(value):
		t, err = time.Parse("20060102", value)
	case isoDateRe.MatchString(value):
		// Only the calendar date matters, a UTC offset must not shift the day
		t, err = time.Parse(time.DateOnly, value[:len(time.DateOnly)])
	case brDateRe.MatchString(value):
		t, err = time.Parse(brDateLayout, value)
	default:
		for _, layout := range fallbackLayouts {
			if t, err = time.Parse(layout, value); err == nil {
				break
			}
		}
	}
	return t, err == nil
}

// Truncate cuts value to maxLength runes and appends "...".
// A non-positive maxLength falls back to DefaultTruncateLength.
func Truncate(value string, maxLength int) string {
	if value == "" {
		return NotAvailable
	}

	if maxLength <= 0 {
		maxLength = DefaultTruncateLength
	}

	runes := []rune(value)
	if len(runes) <= maxLength {
		return value
	}
	return string(runes[:maxLength]) + "..."
}
