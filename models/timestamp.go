package models

import "time"

// ParseTimestamp reads the timestamp formats the backend emits. The zero time is
// returned for values it cannot read.
func ParseTimestamp(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
