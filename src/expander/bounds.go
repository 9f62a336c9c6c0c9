package expander

// Field is the label of one position in a cron line
type Field string

const (
	Minute     Field = "minute"
	Hour       Field = "hour"
	DayOfMonth Field = "day of month"
	Month      Field = "month"
	DayOfWeek  Field = "day of week"
	Command    Field = "command"
)

// TimeFields are the fields that get expanded, in output order
var TimeFields = []Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// FieldOrder is the order in which a parsed schedule is reported
var FieldOrder = []Field{Minute, Hour, DayOfMonth, Month, DayOfWeek, Command}

// Bounds is the inclusive legal domain of a time field
type Bounds struct {
	Min int
	Max int
}

// Contains reports whether v lies inside the bounds
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// BoundsTable maps every time field to its bounds. It is never mutated
// once built.
type BoundsTable map[Field]Bounds

// DefaultBounds returns the standard five-field cron domains
func DefaultBounds() BoundsTable {
	return BoundsTable{
		Minute:     {Min: 0, Max: 59},
		Hour:       {Min: 0, Max: 23},
		DayOfMonth: {Min: 1, Max: 31},
		Month:      {Min: 1, Max: 12},
		DayOfWeek:  {Min: 0, Max: 6},
	}
}

// Lookup returns the bounds of a time field
func (t BoundsTable) Lookup(field Field) (Bounds, bool) {
	b, ok := t[field]
	return b, ok
}
