package duration

// Step is one of the fixed granularities a duration is expressed in.
// Steps are declared from coarsest to finest.
type Step int

const (
	Year Step = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond

	numSteps = int(Millisecond) + 1
)

// stepInfo holds everything known about a step.
type stepInfo struct {
	name    string
	millis  int64
	aliases []string
}

var steps = [numSteps]stepInfo{
	Year:        {"year", 31_557_600_000, []string{"years", "year", "yrs", "yr", "y"}},
	Month:       {"month", 2_592_000_000, []string{"months", "month", "mo"}},
	Week:        {"week", 604_800_000, []string{"weeks", "week", "w"}},
	Day:         {"day", 86_400_000, []string{"days", "day", "d"}},
	Hour:        {"hour", 3_600_000, []string{"hours", "hour", "hrs", "hr", "h"}},
	Minute:      {"minute", 60_000, []string{"minutes", "minute", "mins", "min", "m"}},
	Second:      {"second", 1_000, []string{"seconds", "second", "secs", "sec", "s"}},
	Millisecond: {"millisecond", 1, []string{"milliseconds", "millisecond", "msecs", "msec", "ms", ""}},
}

// unitTable maps every lower-case unit label to its step.
var unitTable = func() map[string]Step {
	m := make(map[string]Step)
	for i, info := range steps {
		for _, a := range info.aliases {
			if _, dup := m[a]; dup {
				panic("duration: unit alias " + a + " registered twice")
			}
			m[a] = Step(i)
		}
	}
	return m
}()

// Steps returns all steps from coarsest to finest.
func Steps() []Step {
	out := make([]Step, numSteps)
	for i := range out {
		out[i] = Step(i)
	}
	return out
}

// LookupUnit resolves a lower-case unit label. The empty label resolves to
// Millisecond.
func LookupUnit(label string) (Step, bool) {
	s, ok := unitTable[label]
	return s, ok
}

// Valid reports whether s is one of the declared steps.
func (s Step) Valid() bool {
	return s >= Year && s <= Millisecond
}

// Millis returns the number of milliseconds in one unit of s.
func (s Step) Millis() int64 {
	if !s.Valid() {
		return 0
	}
	return steps[s].millis
}

// Aliases returns the accepted unit labels for s, longest first.
func (s Step) Aliases() []string {
	if !s.Valid() {
		return nil
	}
	return append([]string(nil), steps[s].aliases...)
}

// Symbol returns the shortest non-empty alias of s.
func (s Step) Symbol() string {
	if !s.Valid() {
		return ""
	}
	a := steps[s].aliases
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != "" {
			return a[i]
		}
	}
	return ""
}

func (s Step) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return steps[s].name
}
