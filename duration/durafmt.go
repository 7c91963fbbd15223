package duration

import "github.com/hako/durafmt"

// ToDurafmt converts v into a durafmt value, which splits the duration into
// weeks, days, hours, minutes, seconds and milliseconds.
func ToDurafmt(v Value) *durafmt.Durafmt {
	return durafmt.Parse(v.Duration())
}
