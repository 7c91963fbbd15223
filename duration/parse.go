package duration

import "strings"

type parseState int

const (
	// stateIdle: no quantity is waiting for a unit.
	stateIdle parseState = iota
	// statePending: a bare quantity was read and may take the next fragment
	// as its unit.
	statePending
)

// parser consumes fragments one at a time:
//
//	state    fragment          result
//	idle     quantity+unit     emit, idle
//	idle     quantity          pending
//	idle     unit              fail
//	pending  unit              emit with pending quantity, idle
//	pending  quantity[+unit]   fail
//	pending  end of input      emit as milliseconds
type parser struct {
	state   parseState
	pending Number
	last    Step
	emitted int
	value   Value
}

func (p *parser) feed(f fragment) string {
	switch p.state {
	case stateIdle:
		switch {
		case !f.hasQty:
			return reasonOrphanUnit
		case f.label == "":
			p.pending = f.qty
			p.state = statePending
			return ""
		default:
			return p.emit(f.qty, f.label)
		}
	case statePending:
		if f.hasQty {
			return reasonDoubleValue
		}
		p.state = stateIdle
		return p.emit(p.pending, f.label)
	}
	return reasonOrphanUnit
}

func (p *parser) finish() string {
	if p.state == statePending {
		p.state = stateIdle
		return p.emit(p.pending, "")
	}
	if p.emitted == 0 {
		return reasonEmpty
	}
	return ""
}

// emit records qty under the step named by label. Each step must be finer
// than the previous one.
func (p *parser) emit(qty Number, label string) string {
	step, ok := LookupUnit(label)
	if !ok {
		return reasonUnknownUnit
	}
	if p.emitted > 0 && step <= p.last {
		return reasonOrder
	}
	p.value = p.value.with(step, qty)
	p.last = step
	p.emitted++
	return ""
}

// Parse parses a duration expression such as "1h 30m", "1.5mo" or "-200".
// Unit labels are case-insensitive. A bare number is milliseconds, and a
// quantity may be separated from its unit by spaces ("3 days"). Units must
// be given from coarsest to finest, each at most once.
//
// The returned error is always a *ParseError.
func Parse(s string) (Value, error) {
	text := strings.ToLower(strings.TrimSpace(s))

	var p parser
	for _, raw := range splitFragments(text) {
		f, reason := scanFragment(raw)
		if reason == "" {
			reason = p.feed(f)
		}
		if reason != "" {
			return Value{}, &ParseError{Input: s, Reason: reason}
		}
	}
	if reason := p.finish(); reason != "" {
		return Value{}, &ParseError{Input: s, Reason: reason}
	}
	return p.value, nil
}

// MustParse is like Parse but panics with a *ParseError if s is invalid.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ToMilliseconds parses s and returns its length in milliseconds.
func ToMilliseconds(s string) (Number, error) {
	v, err := Parse(s)
	if err != nil {
		return Number{}, err
	}
	return v.Milliseconds(), nil
}

// MustToMilliseconds is like ToMilliseconds but panics if s is invalid.
func MustToMilliseconds(s string) Number {
	return MustParse(s).Milliseconds()
}
