package outseta

import (
	"bytes"
	"encoding/json"
	"time"
)

// TimestampLayout is the date-time format used on the wire.
const TimestampLayout = "2006-01-02T15:04:05"

// DateLayout is used where the API expects a bare date in a path.
const DateLayout = "2006-01-02"

var timestampParseLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// Timestamp is a time.Time that encodes with TimestampLayout in UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, truncated to whole seconds.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.Truncate(time.Second)}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.wire())
}

// UnmarshalJSON implements json.Unmarshaler. Empty strings decode to the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return ParseError("timestamp is not a string", err)
	}

	if raw == "" {
		t.Time = time.Time{}

		return nil
	}

	var parseErr error

	for _, layout := range timestampParseLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed

			return nil
		}

		parseErr = err
	}

	return ParseError("unparseable timestamp "+raw, parseErr)
}

// MarshalYAML renders the timestamp in the wire layout.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.wire(), nil
}

// String returns the wire representation, or an empty string for the zero time.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}

	return t.wire()
}

func (t Timestamp) wire() string {
	return t.UTC().Format(TimestampLayout)
}
