package expander

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitRuns = regexp.MustCompile(`\d+`)

// parseRange returns the first two digit runs of expr as lower and upper limit
func parseRange(expr string) (string, string, error) {
	limits := digitRuns.FindAllString(expr, 2)
	if len(limits) < 2 {
		return "", "", fmt.Errorf("%w: %q has no range limits", ErrInvalidFormat, expr)
	}
	return limits[0], limits[1], nil
}

func atoi(expr, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, expr, err)
	}
	return n, nil
}

// MaxSequenceLength caps the values one sub-expression may produce. It is
// the size of the largest field domain (minute).
const MaxSequenceLength = 60

// stepped emits from, from+step, ... up to and including to
func stepped(expr string, from, to, step int) ([]int, error) {
	if from > to {
		return []int{}, nil
	}
	// from and to are non-negative, so to-from cannot overflow
	if (to-from)/step >= MaxSequenceLength {
		return nil, fmt.Errorf("%w: %q yields more than %d values", ErrTooManyValues, expr, MaxSequenceLength)
	}
	var sequence []int
	for current := from; current <= to; current += step {
		sequence = append(sequence, current)
		if current > to-step {
			break
		}
	}
	return sequence, nil
}

func everySequence(b Bounds) ([]int, error) {
	return stepped("*", b.Min, b.Max, 1)
}

func everyNthSequence(expr string, b Bounds) ([]int, error) {
	token := digitRuns.FindString(expr)
	if token == "" {
		return nil, fmt.Errorf("%w: %q has no step", ErrInvalidFormat, expr)
	}
	step, err := atoi(expr, token)
	if err != nil {
		return nil, err
	}
	if step < 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStep, expr)
	}
	return stepped(expr, b.Min, b.Max, step)
}

func singleSequence(expr string) ([]int, error) {
	n, err := atoi(expr, expr)
	if err != nil {
		return nil, err
	}
	return []int{n}, nil
}

func rangeLimits(expr string) (int, int, error) {
	lo, hi, err := parseRange(expr)
	if err != nil {
		return 0, 0, err
	}
	from, err := atoi(expr, lo)
	if err != nil {
		return 0, 0, err
	}
	to, err := atoi(expr, hi)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// rangeSequence ignores the field bounds; the literal limits govern
func rangeSequence(expr string, _ Bounds) ([]int, error) {
	from, to, err := rangeLimits(expr)
	if err != nil {
		return nil, err
	}
	return stepped(expr, from, to, 1)
}

func rangeNthSequence(expr string, _ Bounds) ([]int, error) {
	rng, stepText, ok := strings.Cut(expr, "/")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no step", ErrInvalidFormat, expr)
	}
	from, to, err := rangeLimits(rng)
	if err != nil {
		return nil, err
	}
	step, err := atoi(expr, stepText)
	if err != nil {
		return nil, err
	}
	if step < 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStep, expr)
	}
	return stepped(expr, from, to, step)
}
