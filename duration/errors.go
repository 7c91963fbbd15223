package duration

import "errors"

// ErrInvalidFormat is the sentinel wrapped by every ParseError.
var ErrInvalidFormat = errors.New("invalid duration format")

// ParseError reports an expression that could not be parsed. Input holds the
// expression exactly as it was given to the parser.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "Format is invalid: " + e.Input
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}

// Failure reasons carried in ParseError.Reason.
const (
	reasonEmpty       = "empty expression"
	reasonLeadingDot  = "number starts with a decimal point"
	reasonBadNumber   = "number out of range"
	reasonOrphanUnit  = "unit without a quantity"
	reasonDoubleValue = "quantity without a unit followed by another quantity"
	reasonUnknownUnit = "unknown unit"
	reasonOrder       = "unit repeated or out of order"
)
