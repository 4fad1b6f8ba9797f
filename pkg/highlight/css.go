package highlight

import "strings"

// cssContext tracks where the scanner sits relative to rule braces.
type cssContext int

const (
	cssSelector cssContext = iota // outside any rule
	cssProperty                   // inside braces, before a colon
	cssValue                      // after a colon, before ; or }
)

// cssScanner highlights stylesheets with a three-state brace context.
type cssScanner struct {
	src string
	out strings.Builder
	i   int
	ctx cssContext
}

func highlightCSS(code string) string {
	s := &cssScanner{src: code}
	s.run()
	return s.out.String()
}

func (s *cssScanner) run() {
	for s.i < len(s.src) {
		c := s.src[s.i]
		rest := s.src[s.i:]
		switch {
		case strings.HasPrefix(rest, "/*"):
			s.scanComment()
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.emitText(string(c))
			s.i++
		case c == '{':
			s.emitSpan("punctuation", "{")
			s.i++
			s.ctx = cssProperty
		case c == '}':
			s.emitSpan("punctuation", "}")
			s.i++
			s.ctx = cssSelector
		case c == ';':
			s.emitSpan("punctuation", ";")
			s.i++
			if s.ctx == cssValue {
				s.ctx = cssProperty
			}
		case c == ':' && s.ctx == cssProperty:
			s.emitSpan("punctuation", ":")
			s.i++
			s.ctx = cssValue
		case c == '"' || c == '\'':
			s.scanString(c)
		case s.ctx == cssSelector:
			s.scanSelector()
		case s.ctx == cssProperty:
			s.scanPropertyName()
		default:
			s.scanValueToken()
		}
	}
}

func (s *cssScanner) scanComment() {
	end := strings.Index(s.src[s.i+2:], "*/")
	if end < 0 {
		s.emitSpan("comment", s.src[s.i:])
		s.i = len(s.src)
		return
	}
	stop := s.i + 2 + end + 2
	s.emitSpan("comment", s.src[s.i:stop])
	s.i = stop
}

func (s *cssScanner) scanString(quote byte) {
	j := s.i + 1
	for j < len(s.src) {
		if s.src[j] == '\\' {
			j += 2
			continue
		}
		if s.src[j] == quote {
			j++
			break
		}
		j++
	}
	if j > len(s.src) {
		j = len(s.src)
	}
	s.emitSpan("string", s.src[s.i:j])
	s.i = j
}

// scanSelector consumes selector text up to a brace, comment, or
// newline. At-rules are classed as keywords.
func (s *cssScanner) scanSelector() {
	j := s.i
	for j < len(s.src) {
		c := s.src[j]
		if c == '{' || c == '}' || c == '\n' || strings.HasPrefix(s.src[j:], "/*") {
			break
		}
		j++
	}
	text := s.src[s.i:j]
	s.i = j
	if strings.HasPrefix(strings.TrimSpace(text), "@") {
		s.emitSpan("keyword", text)
		return
	}
	s.emitSpan("selector", text)
}

func (s *cssScanner) scanPropertyName() {
	j := s.i
	for j < len(s.src) {
		c := s.src[j]
		if c == ':' || c == ';' || c == '}' || c == '\n' || c == ' ' || c == '\t' {
			break
		}
		j++
	}
	if j == s.i {
		s.emitText(string(s.src[s.i]))
		s.i++
		return
	}
	s.emitSpan("property", s.src[s.i:j])
	s.i = j
}

// scanValueToken emits one value token: numbers (with units) are
// classed, everything else stays plain so the hex-color decorator can
// still find swatch candidates.
func (s *cssScanner) scanValueToken() {
	c := s.src[s.i]
	if isDigit(c) || (c == '-' && s.i+1 < len(s.src) && isDigit(s.src[s.i+1])) {
		j := s.i
		if s.src[j] == '-' {
			j++
		}
		for j < len(s.src) && (isDigit(s.src[j]) || s.src[j] == '.') {
			j++
		}
		for j < len(s.src) && (s.src[j] == '%' || isCSSUnitChar(s.src[j])) {
			j++
		}
		s.emitSpan("number", s.src[s.i:j])
		s.i = j
		return
	}

	j := s.i
	for j < len(s.src) {
		ch := s.src[j]
		if ch == ';' || ch == '}' || ch == '\n' || ch == '"' || ch == '\'' ||
			ch == ' ' || ch == '\t' || strings.HasPrefix(s.src[j:], "/*") {
			break
		}
		j++
	}
	if j == s.i {
		s.emitText(string(c))
		s.i++
		return
	}
	s.emitText(s.src[s.i:j])
	s.i = j
}

func isCSSUnitChar(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func (s *cssScanner) emitText(text string) {
	s.out.WriteString(escapeHTML(text))
}

func (s *cssScanner) emitSpan(class, text string) {
	s.out.WriteString(span(class, text))
}
