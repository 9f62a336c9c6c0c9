package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yashkumarverma/cronparser/src/expander"
	"gopkg.in/yaml.v3"
)

// ColumnWidth is the width of the label column in table output
const ColumnWidth = 14

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an output format that has no renderer
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes the schedule to w in the requested format
func Render(w io.Writer, schedule *expander.Schedule, format string) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		return renderTable(w, schedule)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(schedule)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schedule); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Row is one line of table output
type Row struct {
	Label  string
	Values []string
}

// Rows lists the schedule in field order with values as text
func Rows(schedule *expander.Schedule) []Row {
	rows := make([]Row, 0, len(expander.FieldOrder))
	for _, field := range expander.FieldOrder {
		var values []string
		if field == expander.Command {
			values = schedule.Command
		} else {
			for _, v := range schedule.Values(field) {
				values = append(values, strconv.Itoa(v))
			}
		}
		rows = append(rows, Row{Label: string(field), Values: values})
	}
	return rows
}

func renderTable(w io.Writer, schedule *expander.Schedule) error {
	for _, row := range Rows(schedule) {
		if _, err := fmt.Fprintf(w, "%-*s%s\n", ColumnWidth, row.Label, strings.Join(row.Values, " ")); err != nil {
			return err
		}
	}
	return nil
}
