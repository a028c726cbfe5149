package feed

import (
	"time"

	"github.com/araddon/dateparse"
)

// normalizeDate renders a parsed timestamp as RFC 3339 UTC. When the
// parser could not interpret the date itself, the raw string gets one
// best-effort pass through dateparse with naive times pinned to UTC.
// Absence and garbage both come back as the empty string, never an error.
func normalizeDate(parsed *time.Time, raw string) string {
	if parsed != nil {
		return parsed.UTC().Format(time.RFC3339)
	}

	if raw == "" {
		return ""
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
