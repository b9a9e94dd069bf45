package utils

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

var (
	// Anything that is not a decimal digit (any script) or a period
	nonNumericRegex = regexp.MustCompile(`[^\p{Nd}.]`)
	// A cleaned salary must be digits with an optional fractional part
	salaryRegex = regexp.MustCompile(`^\p{Nd}+(\.\p{Nd}+)?$`)
)

// humanize groups through int64, so larger values take the big.Int path
const maxHumanizedSalary = 1e15

// UnparseableSalaryError is returned when a raw salary cannot be turned into a number
type UnparseableSalaryError struct {
	Raw     string
	Cleaned string
}

func (e *UnparseableSalaryError) Error() string {
	return fmt.Sprintf("unparseable salary %q (cleaned to %q)", e.Raw, e.Cleaned)
}

// CleanSalary normalizes a raw salary string into a numeric string.
// All characters except decimal digits and periods are stripped, then every period but
// the last one is dropped, so "1.234.56" becomes "1234.56". The result is only
// accepted when it looks like digits optionally followed by a fractional part.
func CleanSalary(raw string) (string, bool) {
	s := nonNumericRegex.ReplaceAllString(raw, "")

	if last := strings.LastIndex(s, "."); last > 0 {
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}

	if !salaryRegex.MatchString(s) {
		return s, false
	}
	return s, true
}

// ParseSalary cleans a raw salary string and parses it as a float64
func ParseSalary(raw string) (float64, error) {
	cleaned, ok := CleanSalary(raw)
	if !ok {
		return 0, &UnparseableSalaryError{Raw: raw, Cleaned: cleaned}
	}

	value, err := strconv.ParseFloat(asciiDigits(cleaned), 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, &UnparseableSalaryError{Raw: raw, Cleaned: cleaned}
	}
	return value, nil
}

// asciiDigits rewrites decimal digits of any script as 0-9. Unicode keeps each
// decimal digit set as a run of ten starting at zero, so a digit's value is its
// offset from the start of the run, mod 10.
func asciiDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= '9' || !unicode.Is(unicode.Nd, r) {
			b.WriteRune(r)
			continue
		}
		start := r
		for unicode.Is(unicode.Nd, start-1) {
			start--
		}
		b.WriteRune('0' + (r-start)%10)
	}
	return b.String()
}

// FormatSalary formats a salary with comma separators and two decimals, prefixed
// with the currency symbol when one is given
func FormatSalary(value float64, currency string) string {
	var formatted string
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		formatted = strconv.FormatFloat(value, 'f', 2, 64)
	case math.Abs(value) < maxHumanizedSalary:
		formatted = humanize.FormatFloat("#,###.##", value)
	default:
		formatted = formatLargeSalary(value)
	}
	if currency == "" {
		return formatted
	}
	return currency + " " + formatted
}

func formatLargeSalary(value float64) string {
	digits := strconv.FormatFloat(math.Abs(value), 'f', 2, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	n, _ := new(big.Int).SetString(whole, 10)

	sign := ""
	if value < 0 {
		sign = "-"
	}
	return sign + humanize.BigComma(n) + "." + frac
}

// TruncateString truncates a string to the specified length and adds "..." if necessary
func TruncateString(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length || length <= 3 {
		return s
	}
	return string(runes[:length-3]) + "..."
}
