// Package duration parses human-readable duration expressions such as
// "1h 1m 1s", "1.5mo" or "-200" into a normalized millisecond count.
//
// An expression is a sequence of space-separated quantities, each followed by
// an optional unit label. Units must appear from coarsest to finest and each
// unit may appear at most once. A bare number is a count of milliseconds.
//
// Months and years are fixed-length approximations (30 and 365.25 days).
package duration
