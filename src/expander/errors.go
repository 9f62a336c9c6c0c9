package expander

import "errors"

var (
	// ErrInvalidFormat is returned when a sub-expression matches none of the
	// accepted forms
	ErrInvalidFormat = errors.New("invalid cron format, use only the accepted formats: *, */n, d, d-d, d-d/n")
	// ErrInvalidStep is returned for a step of zero
	ErrInvalidStep = errors.New("step must be at least 1")
	// ErrOutOfBounds is returned in strict mode for values outside a field's domain
	ErrOutOfBounds = errors.New("value out of bounds")
	// ErrTooManyValues is returned when a sub-expression expands past MaxSequenceLength
	ErrTooManyValues = errors.New("too many values")
	// ErrUnknownField is returned when a field has no bounds entry
	ErrUnknownField = errors.New("unknown field")
)
