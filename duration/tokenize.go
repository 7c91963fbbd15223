package duration

import (
	"strconv"
	"strings"
)

// fragment is one space-delimited run of the input, split into its numeric
// prefix and unit label.
type fragment struct {
	qty    Number
	hasQty bool
	label  string
}

// splitFragments splits s on runs of the space character. Other whitespace
// is not a separator.
func splitFragments(s string) []string {
	var out []string
	for _, f := range strings.Split(s, " ") {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// scanFragment extracts the longest numeric prefix of raw. A literal is an
// optional minus sign, at least one digit, and an optional fraction. A
// non-empty reason is returned when raw can never be valid.
func scanFragment(raw string) (fragment, string) {
	if strings.HasPrefix(raw, ".") || strings.HasPrefix(raw, "-.") {
		return fragment{}, reasonLeadingDot
	}

	i := 0
	if i < len(raw) && raw[i] == '-' {
		i++
	}
	start := i
	for i < len(raw) && isDigit(raw[i]) {
		i++
	}
	if i == start {
		return fragment{label: raw}, ""
	}

	frac := false
	if i+1 < len(raw) && raw[i] == '.' && isDigit(raw[i+1]) {
		frac = true
		i++
		for i < len(raw) && isDigit(raw[i]) {
			i++
		}
	}

	lit, rest := raw[:i], raw[i:]
	if frac {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return fragment{}, reasonBadNumber
		}
		return fragment{qty: Float(f), hasQty: true, label: rest}, ""
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		// Integers beyond int64 become real, as composition overflow does.
		f, ferr := strconv.ParseFloat(lit, 64)
		if ferr != nil {
			return fragment{}, reasonBadNumber
		}
		return fragment{qty: Float(f), hasQty: true, label: rest}, ""
	}
	return fragment{qty: Int(n), hasQty: true, label: rest}, ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
