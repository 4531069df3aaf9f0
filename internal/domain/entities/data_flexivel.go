package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var ErrDataInvalida = errors.New("invalid timestamp")

var flexibleLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp accepts ISO-8601 style timestamps with or without offset,
// fractional seconds or time of day. Values without an offset are taken as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrDataInvalida
	}
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrDataInvalida
}

// DataFlexivel is a date field that keeps the caller's raw text when it could
// not be parsed.
type DataFlexivel struct {
	Time *time.Time
	Raw  string
}

func NewDataFlexivel(raw string) DataFlexivel {
	if t, err := ParseTimestamp(raw); err == nil {
		return DataFlexivel{Time: &t}
	}
	return DataFlexivel{Raw: raw}
}

func DataFlexivelFromTime(t time.Time) DataFlexivel {
	t = t.UTC()
	return DataFlexivel{Time: &t}
}

func (d DataFlexivel) IsZero() bool {
	return d.Time == nil && d.Raw == ""
}

func (d DataFlexivel) String() string {
	if d.Time != nil {
		return d.Time.UTC().Format(time.RFC3339)
	}
	return d.Raw
}

func (d DataFlexivel) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *DataFlexivel) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = DataFlexivel{}
		return nil
	}
	*d = NewDataFlexivel(*s)
	return nil
}
