package utils

import (
	"fmt"
	"strings"
	"time"
)

// lastModLayouts are the timestamp shapes observed in sitemap lastmod
// fields and article metadata, probed in order.
var lastModLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleTime parses an ISO-8601-ish timestamp, tolerating a trailing
// "Z", a missing offset, or a bare date. The result is normalized to UTC.
func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	trimmed := strings.TrimSuffix(s, "Z")
	for _, layout := range lastModLayouts[1:] {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
