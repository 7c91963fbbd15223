package duration

import (
	"math"
	"strconv"
)

// Number is a signed quantity that is either integral or real. Arithmetic on
// Numbers stays integral until a real operand is involved or the integral
// result would overflow int64.
type Number struct {
	i    int64
	f    float64
	real bool
}

// Int returns an integral Number.
func Int(n int64) Number {
	return Number{i: n}
}

// Float returns a real Number.
func Float(f float64) Number {
	return Number{f: f, real: true}
}

// IsInt reports whether n is integral.
func (n Number) IsInt() bool {
	return !n.real
}

// Int64 returns n truncated toward zero.
func (n Number) Int64() int64 {
	if n.real {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	if n.real {
		return n.f
	}
	return float64(n.i)
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.real {
		return Float(-n.f)
	}
	if n.i == math.MinInt64 {
		return Float(-float64(n.i))
	}
	return Int(-n.i)
}

func (n Number) mul(k int64) Number {
	if n.real {
		return Float(n.f * float64(k))
	}
	if n.i == 0 || k == 0 {
		return Int(0)
	}
	p := n.i * k
	if p/k != n.i || (n.i == -1 && k == math.MinInt64) || (k == -1 && n.i == math.MinInt64) {
		return Float(float64(n.i) * float64(k))
	}
	return Int(p)
}

func (n Number) add(m Number) Number {
	if n.real || m.real {
		return Float(n.Float64() + m.Float64())
	}
	s := n.i + m.i
	if (s > n.i) != (m.i > 0) {
		return Float(float64(n.i) + float64(m.i))
	}
	return Int(s)
}

func (n Number) String() string {
	if n.real {
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}
