package feed

import (
	"bytes"
)

type Dialect string

const (
	DialectRSS  Dialect = "rss"
	DialectAtom Dialect = "atom"
)

const detectionWindow = 500

// DetectDialect classifies raw feed bytes by sniffing a bounded prefix for
// an Atom root element together with the Atom namespace token. Everything
// else is treated as RSS; a false negative only changes which fallback
// chain runs, and the RSS chain still resolves most fields.
func DetectDialect(data []byte) Dialect {
	prefix := data
	if len(prefix) > detectionWindow {
		prefix = prefix[:detectionWindow]
	}
	prefix = bytes.ToLower(prefix)

	if bytes.Contains(prefix, []byte("<feed")) && bytes.Contains(prefix, []byte("atom")) {
		return DialectAtom
	}

	return DialectRSS
}
