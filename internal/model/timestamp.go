package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Canvas timestamps use a single fixed shape: seconds precision with a zone
// designator of Z, +hh:mm or +hhmm.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
}

const secondsEnd = len("2006-01-02T15:04:05")

type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func ParseTimestamp(s string) (Timestamp, error) {
	// time.Parse silently accepts fractional seconds, the wire format does not.
	if len(s) > secondsEnd && (s[secondsEnd] == '.' || s[secondsEnd] == ',') {
		return Timestamp{}, fmt.Errorf("timestamp %q: fractional seconds are not accepted", s)
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Timestamp{Time: t}, nil
		}
		lastErr = err
	}
	return Timestamp{}, fmt.Errorf("timestamp %q: %w", s, lastErr)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339))
}
