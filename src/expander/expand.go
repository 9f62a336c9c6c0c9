package expander

import (
	"fmt"
	"strings"
)

const separator = ","

// Fields holds the raw text of each field before expansion
type Fields map[Field]string

// Schedule is the expanded form of a cron line. Field order of the struct
// is the order in which it is serialized.
type Schedule struct {
	Minute     []int    `json:"minute" yaml:"minute,flow"`
	Hour       []int    `json:"hour" yaml:"hour,flow"`
	DayOfMonth []int    `json:"day of month" yaml:"day of month,flow"`
	Month      []int    `json:"month" yaml:"month,flow"`
	DayOfWeek  []int    `json:"day of week" yaml:"day of week,flow"`
	Command    []string `json:"command" yaml:"command,flow"`
}

// Values returns the expanded sequence of a time field
func (s *Schedule) Values(field Field) []int {
	switch field {
	case Minute:
		return s.Minute
	case Hour:
		return s.Hour
	case DayOfMonth:
		return s.DayOfMonth
	case Month:
		return s.Month
	case DayOfWeek:
		return s.DayOfWeek
	}
	return nil
}

func (s *Schedule) set(field Field, values []int) {
	switch field {
	case Minute:
		s.Minute = values
	case Hour:
		s.Hour = values
	case DayOfMonth:
		s.DayOfMonth = values
	case Month:
		s.Month = values
	case DayOfWeek:
		s.DayOfWeek = values
	}
}

// Option configures an Expander
type Option func(*Expander)

// WithStrictBounds rejects literal values outside the field's domain
func WithStrictBounds() Option {
	return func(e *Expander) {
		e.strict = true
	}
}

// WithBounds replaces the bounds table
func WithBounds(table BoundsTable) Option {
	return func(e *Expander) {
		e.bounds = table
	}
}

// Expander turns raw field text into schedules. It holds no mutable state
// and is safe for concurrent use.
type Expander struct {
	bounds BoundsTable
	strict bool
}

// New creates an expander using the default bounds
func New(opts ...Option) *Expander {
	e := &Expander{bounds: DefaultBounds()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strict reports whether bounds are enforced on literal values
func (e *Expander) Strict() bool {
	return e.strict
}

var defaultExpander = New()

// Expand expands fields with the default permissive expander
func Expand(fields Fields) (*Schedule, error) {
	return defaultExpander.Expand(fields)
}

// ExpandSubExpression classifies one comma-free expression and generates
// its sequence
func (e *Expander) ExpandSubExpression(expr string, field Field) ([]int, error) {
	b, ok := e.bounds.Lookup(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	form, err := Classify(expr)
	if err != nil {
		return nil, err
	}

	if e.strict {
		if err := checkLimits(form, expr, b); err != nil {
			return nil, err
		}
	}

	switch form {
	case FormEvery:
		return everySequence(b)
	case FormEveryNth:
		return everyNthSequence(expr, b)
	case FormSingle:
		return singleSequence(expr)
	case FormRange:
		return rangeSequence(expr, b)
	case FormRangeNth:
		return rangeNthSequence(expr, b)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, expr)
}

// checkLimits validates the literal values of expr against b. Wildcard
// forms are within bounds by construction.
func checkLimits(form Form, expr string, b Bounds) error {
	var limits []int
	switch form {
	case FormSingle:
		n, err := atoi(expr, expr)
		if err != nil {
			return err
		}
		limits = []int{n}
	case FormRange, FormRangeNth:
		from, to, err := rangeLimits(expr)
		if err != nil {
			return err
		}
		limits = []int{from, to}
	}
	for _, v := range limits {
		if !b.Contains(v) {
			return fmt.Errorf("%w: %q outside [%d,%d]", ErrOutOfBounds, expr, b.Min, b.Max)
		}
	}
	return nil
}

// ComposeField expands every comma separated piece of raw and merges the
// results, keeping the first occurrence of each value
func (e *Expander) ComposeField(raw string, field Field) ([]int, error) {
	var merged []int
	for _, part := range strings.Split(raw, separator) {
		sequence, err := e.ExpandSubExpression(part, field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		merged = append(merged, sequence...)
	}
	return dedupe(merged), nil
}

func dedupe(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	unique := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}

// Expand expands the five time fields and splits the command. The first
// failing field aborts the whole call.
func (e *Expander) Expand(fields Fields) (*Schedule, error) {
	schedule := &Schedule{}
	for _, field := range TimeFields {
		values, err := e.ComposeField(fields[field], field)
		if err != nil {
			return nil, err
		}
		schedule.set(field, values)
	}
	schedule.Command = strings.Split(fields[Command], separator)
	return schedule, nil
}
