package highlight

import (
	"regexp"
	"strings"
)

// jsonNumber matches a JSON number anchored at the scan position.
var jsonNumber = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?`)

// jsonScanner is a single forward pass over a JSON document. It keeps
// one index cursor and never backtracks; malformed constructs fall
// through to escaped plain text.
type jsonScanner struct {
	src    string
	out    strings.Builder
	i      int
	col    int // plain-text column since the last emitted newline
	nested bool
	ids    *tokenIDs
}

func highlightJSON(code string, nested bool) string {
	s := &jsonScanner{src: code, nested: nested, ids: &tokenIDs{}}
	s.run()
	return s.out.String()
}

func (s *jsonScanner) run() {
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '"':
			s.scanString()
		case c == '-' || (c >= '0' && c <= '9'):
			if m := jsonNumber.FindString(s.src[s.i:]); m != "" {
				s.emitSpan("number", m)
				s.i += len(m)
			} else {
				s.emitText(string(c))
				s.i++
			}
		case strings.HasPrefix(s.src[s.i:], "true"):
			s.emitSpan("boolean", "true")
			s.i += len("true")
		case strings.HasPrefix(s.src[s.i:], "false"):
			s.emitSpan("boolean", "false")
			s.i += len("false")
		case strings.HasPrefix(s.src[s.i:], "null"):
			s.emitSpan("null", "null")
			s.i += len("null")
		case strings.IndexByte("{}[],:", c) >= 0:
			s.emitSpan("punctuation", string(c))
			s.i++
		default:
			s.emitText(string(c))
			s.i++
		}
	}
}

// scanString consumes a double-quoted run starting at the current index.
// The run is a key if the next non-whitespace character is a colon,
// otherwise a string value. Unterminated strings extend to end of input.
func (s *jsonScanner) scanString() {
	start := s.i
	j := s.i + 1
	closed := false
	for j < len(s.src) {
		switch s.src[j] {
		case '\\':
			j += 2
		case '"':
			j++
			closed = true
		default:
			j++
		}
		if closed {
			break
		}
	}
	if j > len(s.src) {
		j = len(s.src)
	}
	raw := s.src[start:j]
	s.i = j

	if closed && s.isKeyAt(j) {
		s.emitSpan("key", raw)
		return
	}
	if closed && s.nested {
		if decoded, ok := decodeJSONString(raw); ok {
			if s.emitNestedJSON(raw, decoded) {
				return
			}
		}
	}
	s.emitSpan("string", raw)
}

// isKeyAt reports whether the first non-whitespace character at or
// after pos is a colon.
func (s *jsonScanner) isKeyAt(pos int) bool {
	for pos < len(s.src) {
		switch s.src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// emitText writes escaped plain text with no span wrapper.
func (s *jsonScanner) emitText(text string) {
	s.out.WriteString(escapeHTML(text))
	s.col = advanceColumn(s.col, text)
}

func (s *jsonScanner) emitSpan(class, text string) {
	s.out.WriteString(span(class, text))
	s.col = advanceColumn(s.col, text)
}

// advanceColumn tracks the plain-text output column across emitted
// literals, resetting at each newline.
func advanceColumn(col int, text string) int {
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		return len(text) - idx - 1
	}
	return col + len(text)
}
