package util

import (
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/lucrnz/humandur/duration"
)

// Resolution is the outcome of resolving one expression.
type Resolution struct {
	Input string
	// Value is set when the expression matched the strict grammar.
	Value duration.Value
	// Millis is the expression's length in milliseconds.
	Millis duration.Number
	// Fallback is true when the expression was accepted only by the
	// Go-style compact parser.
	Fallback bool
}

// ResolveDuration parses s with the strict expression grammar. When lenient is
// set and the strict grammar rejects s, Go-style compact durations
// ("1h30m", "2d3h", "1w2d") are accepted as well.
// Examples: "1h 30m", "1.5mo", "-3 days", "250"
func ResolveDuration(s string, lenient bool) (Resolution, error) {
	v, err := duration.Parse(s)
	if err == nil {
		return Resolution{Input: s, Value: v, Millis: v.Milliseconds()}, nil
	}
	if !lenient {
		return Resolution{}, err
	}

	d, ferr := str2duration.ParseDuration(s)
	if ferr != nil {
		// The strict grammar's error carries the input.
		return Resolution{}, err
	}
	return Resolution{
		Input:    s,
		Millis:   duration.Int(d.Milliseconds()),
		Fallback: true,
	}, nil
}
