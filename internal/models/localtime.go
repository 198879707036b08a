package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// localLayouts are tried in order after RFC 3339. The marketplace API
// serialises zone-less local date-times.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LocalTime is a timestamp that tolerates the API's zone-less format
type LocalTime struct {
	time.Time
}

// ParseLocalTime parses s as RFC 3339 or one of the zone-less layouts (as UTC)
func ParseLocalTime(s string) (LocalTime, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return LocalTime{t}, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return LocalTime{t}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("parse time %q: unsupported layout", s)
}

// UnmarshalJSON accepts a string timestamp or null
func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*lt = LocalTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("local time: %w", err)
	}
	if s == "" {
		*lt = LocalTime{}
		return nil
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}

// MarshalJSON writes RFC 3339, or null for the zero time
func (lt LocalTime) MarshalJSON() ([]byte, error) {
	if lt.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(lt.UTC().Format(time.RFC3339))
}
