package expander

import (
	"fmt"
	"regexp"
)

// Form is the syntactic category of a sub-expression
type Form int

const (
	FormUnknown Form = iota
	FormEvery
	FormEveryNth
	FormSingle
	FormRange
	FormRangeNth
)

func (f Form) String() string {
	switch f {
	case FormEvery:
		return "every"
	case FormEveryNth:
		return "everyth"
	case FormSingle:
		return "single"
	case FormRange:
		return "range"
	case FormRangeNth:
		return "rangeth"
	default:
		return "unknown"
	}
}

type formPattern struct {
	form    Form
	pattern *regexp.Regexp
}

// checked in this order; the last match wins
var formPatterns = []formPattern{
	{FormEvery, regexp.MustCompile(`^\*$`)},
	{FormEveryNth, regexp.MustCompile(`^\*/\d+$`)},
	{FormSingle, regexp.MustCompile(`^\d+$`)},
	{FormRange, regexp.MustCompile(`^\d+-\d+$`)},
	{FormRangeNth, regexp.MustCompile(`^\d+-\d+/\d+$`)},
}

// Classify returns the form of a single sub-expression
func Classify(expr string) (Form, error) {
	matched := FormUnknown
	for _, fp := range formPatterns {
		if fp.pattern.MatchString(expr) {
			matched = fp.form
		}
	}
	if matched == FormUnknown {
		return FormUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, expr)
	}
	return matched, nil
}
