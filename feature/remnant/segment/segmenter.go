package segment

import (
	"strings"
	"unicode/utf8"
)

// Segmenter splits a raw log into per-site buckets. It runs the WASON and the
// APOPLUS machines side by side over a single pass of the input.
//
// A Segmenter is not safe for concurrent use; use one per log.
type Segmenter struct {
	sites     map[string]string
	buckets   *Buckets
	call      callMachine
	inventory inventoryMachine
}

// New creates a Segmenter resolving display names through sites.
func New(sites map[string]string) *Segmenter {
	return &Segmenter{
		sites:   sites,
		buckets: NewBuckets(),
	}
}

// Feed processes one physical line.
func (s *Segmenter) Feed(line string) {
	line = strings.TrimSuffix(line, "\r")
	s.call.feed(line, s.buckets, s.sites)
	s.inventory.feed(line, s.buckets, s.sites)
}

// Buckets returns the buckets accumulated so far. Lines still waiting in an
// unbound prebuffer are not part of any bucket.
func (s *Segmenter) Buckets() *Buckets {
	return s.buckets
}

// CallState returns the state of the WASON machine.
func (s *Segmenter) CallState() State {
	return s.call.state
}

// InventoryState returns the state of the APOPLUS machine.
func (s *Segmenter) InventoryState() State {
	return s.inventory.state
}

// Parse segments rawText into per-site buckets.
func Parse(rawText string, sites map[string]string) *Buckets {
	s := New(sites)
	for _, line := range SplitLines(rawText) {
		s.Feed(line)
	}
	return s.Buckets()
}

// SplitLines splits text at every line boundary: \n, \r, \r\n, \v, \f,
// the file, group and record separators (\x1c-\x1e), NEL, and the Unicode
// line and paragraph separators. A trailing boundary does not start a new line.
func SplitLines(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if i < start {
			continue
		}
		switch r {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			out = append(out, text[start:i])
			start = i + utf8.RuneLen(r)
		case '\r':
			out = append(out, text[start:i])
			start = i + 1
			if start < len(text) && text[start] == '\n' {
				start++
			}
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
