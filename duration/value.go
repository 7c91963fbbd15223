package duration

import (
	"math"
	"strings"
	"time"
)

// Value is a parsed duration: one optional quantity per Step. The zero Value
// has no steps set. Values are immutable.
type Value struct {
	q   [numSteps]Number
	set [numSteps]bool
}

// Get returns the quantity recorded for s.
func (v Value) Get(s Step) (Number, bool) {
	if !s.Valid() || !v.set[s] {
		return Number{}, false
	}
	return v.q[s], true
}

// Has reports whether s is set.
func (v Value) Has(s Step) bool {
	return s.Valid() && v.set[s]
}

// Steps returns the set steps from coarsest to finest.
func (v Value) Steps() []Step {
	var out []Step
	for i, ok := range v.set {
		if ok {
			out = append(out, Step(i))
		}
	}
	return out
}

// IsZero reports whether no step is set.
func (v Value) IsZero() bool {
	for _, ok := range v.set {
		if ok {
			return false
		}
	}
	return true
}

// Milliseconds folds v into a single millisecond count. The result is
// integral when every set quantity is integral.
func (v Value) Milliseconds() Number {
	total := Int(0)
	for i, ok := range v.set {
		if !ok {
			continue
		}
		total = total.add(v.q[i].mul(steps[i].millis))
	}
	return total
}

// Duration converts v to a time.Duration, rounding fractional nanoseconds
// and saturating at the limits of time.Duration.
func (v Value) Duration() time.Duration {
	ms := v.Milliseconds()
	if ms.IsInt() {
		n := ms.Int64()
		if n > math.MaxInt64/int64(time.Millisecond) {
			return time.Duration(math.MaxInt64)
		}
		if n < math.MinInt64/int64(time.Millisecond) {
			return time.Duration(math.MinInt64)
		}
		return time.Duration(n) * time.Millisecond
	}
	ns := math.Round(ms.Float64() * float64(time.Millisecond))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

// String renders the stored quantities using each step's shortest unit
// label, e.g. "1h 30m". It is meant for debugging and logs.
func (v Value) String() string {
	var parts []string
	for _, s := range v.Steps() {
		parts = append(parts, v.q[s].String()+s.Symbol())
	}
	return strings.Join(parts, " ")
}

// with returns a copy of v with s set to n.
func (v Value) with(s Step, n Number) Value {
	v.q[s] = n
	v.set[s] = true
	return v
}
