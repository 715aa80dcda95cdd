package capture

import (
	"strings"
	"time"
)

// timestampLayouts are the accepted metadata timestamp shapes: the EXIF
// colon-separated form with and without an offset, and the OS
// content-creation form.
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{"2006:01:02 15:04:05-07:00", true},
	{"2006:01:02 15:04:05-0700", true},
	{"2006:01:02 15:04:05", false},
	{"2006-01-02 15:04:05 -0700", true},
	{"2006-01-02 15:04:05", false},
}

// parseTimestamp tries each accepted layout in order. Unparsable values are
// treated as absent by callers, which keeps the fallback chain moving.
func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, candidate := range timestampLayouts {
		var t time.Time
		var err error
		if candidate.zoned {
			t, err = time.Parse(candidate.layout, value)
		} else {
			t, err = time.ParseInLocation(candidate.layout, value, time.Local)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
