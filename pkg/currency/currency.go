// Package currency renders raw numeric input as a grouped decimal with a
// currency suffix, the display form amount placeholders take in generated
// documents ("1 500 000 сум").
package currency

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultSuffix is the Uzbek sum currency name appended to formatted
	// amounts.
	DefaultSuffix = "сум"

	groupSeparator = " "
)

// Option customises a Formatter before construction.
type Option func(*Formatter)

// WithSuffix overrides the currency name appended to formatted values.
func WithSuffix(suffix string) Option {
	return func(f *Formatter) {
		trimmed := strings.TrimSpace(suffix)
		if trimmed != "" {
			f.suffix = trimmed
		}
	}
}

// Formatter is a pure value formatter: Format never mutates state and
// stripping a formatted result back to digits and reformatting is stable.
type Formatter struct {
	suffix string
}

// New constructs a Formatter applying any provided options.
func New(options ...Option) Formatter {
	f := Formatter{suffix: DefaultSuffix}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&f)
	}
	return f
}

// Format strips the raw input to digits and one decimal point, parses it, and
// renders a space-grouped decimal with at most two fraction digits and the
// currency suffix. Empty or unparseable input yields an empty string.
func (f Formatter) Format(raw string) string {
	stripped := Strip(raw)
	if stripped == "" {
		return ""
	}
	amount, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return ""
	}
	return f.FormatFloat(amount)
}

// FormatFloat renders an already-parsed amount.
func (f Formatter) FormatFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}

	rounded := math.Round(amount*100) / 100
	text := strconv.FormatFloat(rounded, 'f', -1, 64)

	integer, fraction, hasFraction := strings.Cut(text, ".")
	grouped := groupThousands(integer)
	if hasFraction {
		grouped += "." + fraction
	}
	return grouped + " " + f.suffix
}

// Strip reduces raw input to digits and the first decimal point. This is the
// canonical stored form for amount fields: format for display, strip for
// state.
func Strip(raw string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

func groupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, groupSeparator)
	if negative {
		out = "-" + out
	}
	return out
}
