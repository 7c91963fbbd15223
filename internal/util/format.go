package util

import (
	"github.com/dustin/go-humanize"

	"github.com/lucrnz/humandur/duration"
)

// ScaleMillis expresses ms in units of step. Division stays integral when it
// is exact.
func ScaleMillis(ms duration.Number, step duration.Step) duration.Number {
	k := step.Millis()
	if k <= 1 {
		return ms
	}
	if ms.IsInt() && ms.Int64()%k == 0 {
		return duration.Int(ms.Int64() / k)
	}
	return duration.Float(ms.Float64() / float64(k))
}

// FormatNumber renders n, grouping thousands with commas when comma is set.
func FormatNumber(n duration.Number, comma bool) string {
	if !comma {
		return n.String()
	}
	if n.IsInt() {
		return humanize.Comma(n.Int64())
	}
	return humanize.Commaf(n.Float64())
}
