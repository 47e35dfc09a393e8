package services

import "time"

// now returns the current instant as stored: UTC, microsecond precision
// (PostgreSQL timestamptz resolution). Every operation reads it once and
// threads the value through.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
