package duration

import (
	"math"
	"time"
)

// Add returns t moved forward by v.
func Add(t time.Time, v Value) time.Time {
	return t.Add(v.Duration())
}

// Subtract returns t moved backward by v.
func Subtract(t time.Time, v Value) time.Time {
	d := v.Duration()
	if d == math.MinInt64 {
		return t.Add(math.MaxInt64)
	}
	return t.Add(-d)
}
