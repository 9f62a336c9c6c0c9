package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashkumarverma/cronparser/src/expander"
)

func sample() *expander.Schedule {
	return &expander.Schedule{
		Minute:     []int{0, 15, 30, 45},
		Hour:       []int{0},
		DayOfMonth: []int{1, 15},
		Month:      []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		DayOfWeek:  []int{1, 2, 3, 4, 5},
		Command:    []string{"/usr/bin/find"},
	}
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), FormatTable))

	want := strings.Join([]string{
		"minute        0 15 30 45",
		"hour          0",
		"day of month  1 15",
		"month         1 2 3 4 5 6 7 8 9 10 11 12",
		"day of week   1 2 3 4 5",
		"command       /usr/bin/find",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_JSONKeepsFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), "JSON"))

	out := buf.String()
	order := []string{`"minute"`, `"hour"`, `"day of month"`, `"month"`, `"day of week"`, `"command"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.Greater(t, idx, last, key)
		last = idx
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sample(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "minute: [0, 15, 30, 45]")
	assert.Contains(t, out, "day of month: [1, 15]")
	assert.Contains(t, out, "command: [/usr/bin/find]")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sample(), "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRows(t *testing.T) {
	rows := Rows(&expander.Schedule{Command: []string{"a", "b"}})
	require.Len(t, rows, len(expander.FieldOrder))
	assert.Equal(t, "minute", rows[0].Label)
	assert.Empty(t, rows[0].Values)
	assert.Equal(t, Row{Label: "command", Values: []string{"a", "b"}}, rows[5])
}
