// Package timeutil formats timestamps in the zone named by TZ.
package timeutil

import (
	"os"
	"sync"
	"time"
)

//nolint:gochecknoglobals // cached once per process
var location = sync.OnceValue(loadLocation)

// loadLocation returns the zone named by TZ, the local zone when TZ is unset,
// and UTC when TZ is invalid.
func loadLocation() *time.Location {
	tz, ok := os.LookupEnv("TZ")
	if !ok || tz == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}

	return loc
}

// FormatRFC3339 formats t in RFC 3339. The zero time formats as "".
func FormatRFC3339(t time.Time) string {
	return FormatRFC3339In(t, location())
}

// FormatRFC3339In formats t in loc. The zero time formats as "".
func FormatRFC3339In(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}

	return t.In(loc).Format(time.RFC3339)
}
