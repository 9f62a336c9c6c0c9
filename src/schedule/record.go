package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/yashkumarverma/cronparser/src/expander"
)

// Cache keys
const (
	RecordKeyPrefix = "cronparser:schedule:"
	RecordKey       = RecordKeyPrefix + "%016x" // Format string for record lookup
)

// Record is one expanded cron line
type Record struct {
	ID       string             `json:"id"`
	Fields   map[string]string  `json:"fields"`
	Strict   bool               `json:"strict"`
	Schedule *expander.Schedule `json:"schedule"`
	ParsedAt time.Time          `json:"parsed_at"`
}

// NewRecord wraps a freshly expanded schedule
func NewRecord(fields expander.Fields, strict bool, schedule *expander.Schedule) *Record {
	raw := make(map[string]string, len(expander.FieldOrder))
	for _, field := range expander.FieldOrder {
		raw[string(field)] = fields[field]
	}
	return &Record{
		ID:       uuid.New().String(),
		Fields:   raw,
		Strict:   strict,
		Schedule: schedule,
		ParsedAt: time.Now().UTC(),
	}
}

// CacheKey identifies a cron line regardless of how the fields were supplied
func CacheKey(fields expander.Fields, strict bool) string {
	var b strings.Builder
	for _, field := range expander.FieldOrder {
		b.WriteString(fields[field])
		b.WriteByte(0)
	}
	if strict {
		b.WriteString("strict")
	}
	return fmt.Sprintf(RecordKey, xxhash.Sum64String(b.String()))
}

// String returns a string representation of the record
func (r *Record) String() string {
	return fmt.Sprintf("Record[%s] - Parsed: %s, Strict: %t",
		r.ID, r.ParsedAt.Format(time.RFC3339), r.Strict)
}
