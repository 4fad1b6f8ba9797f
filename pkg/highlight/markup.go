package highlight

import "strings"

// markupScanner highlights HTML and Vue templates. Text content stays
// plain; tags are decomposed into name, attribute, and value spans.
type markupScanner struct {
	src string
	out strings.Builder
	i   int
}

func highlightMarkup(code string) string {
	s := &markupScanner{src: code}
	s.run()
	return s.out.String()
}

func (s *markupScanner) run() {
	for s.i < len(s.src) {
		if s.src[s.i] != '<' {
			s.scanText()
			continue
		}
		rest := s.src[s.i:]
		switch {
		case strings.HasPrefix(rest, "<!--"):
			s.scanComment()
		case strings.HasPrefix(rest, "<!"):
			s.scanDeclaration()
		default:
			s.scanTag()
		}
	}
}

func (s *markupScanner) scanText() {
	j := strings.IndexByte(s.src[s.i:], '<')
	if j < 0 {
		j = len(s.src) - s.i
	}
	s.emitText(s.src[s.i : s.i+j])
	s.i += j
}

func (s *markupScanner) scanComment() {
	end := strings.Index(s.src[s.i+4:], "-->")
	if end < 0 {
		s.emitSpan("comment", s.src[s.i:])
		s.i = len(s.src)
		return
	}
	stop := s.i + 4 + end + 3
	s.emitSpan("comment", s.src[s.i:stop])
	s.i = stop
}

// scanDeclaration handles <!DOCTYPE ...> and similar.
func (s *markupScanner) scanDeclaration() {
	end := strings.IndexByte(s.src[s.i:], '>')
	if end < 0 {
		s.emitSpan("tag", s.src[s.i:])
		s.i = len(s.src)
		return
	}
	stop := s.i + end + 1
	s.emitSpan("tag", s.src[s.i:stop])
	s.i = stop
}

// scanTag decomposes an element tag. A missing closing bracket emits
// whatever was seen as plain text so the scanner always advances.
func (s *markupScanner) scanTag() {
	end := strings.IndexByte(s.src[s.i:], '>')
	if end < 0 {
		s.emitText(s.src[s.i:])
		s.i = len(s.src)
		return
	}
	tag := s.src[s.i : s.i+end+1]
	s.i += end + 1
	s.emitTag(tag)
}

// emitTag re-scans the bracketed run: <, optional /, tag name,
// attributes, optional /, >.
func (s *markupScanner) emitTag(tag string) {
	j := 0
	open := "<"
	j++
	if j < len(tag) && tag[j] == '/' {
		open = "</"
		j++
	}
	s.emitSpan("punctuation", open)

	// Tag name.
	k := j
	for k < len(tag) && isTagNameChar(tag[k]) {
		k++
	}
	if k > j {
		s.emitSpan("tag", tag[j:k])
	}
	j = k

	// Attributes.
	for j < len(tag)-1 {
		c := tag[j]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			s.emitText(string(c))
			j++
		case c == '=':
			s.emitSpan("operator", "=")
			j++
		case c == '"' || c == '\'':
			k = j + 1
			for k < len(tag)-1 && tag[k] != c {
				k++
			}
			if k < len(tag)-1 {
				k++
			}
			s.emitSpan("string", tag[j:k])
			j = k
		case c == '/':
			s.emitText("/")
			j++
		default:
			k = j
			for k < len(tag)-1 && !isAttrBoundary(tag[k]) {
				k++
			}
			if k == j {
				s.emitText(string(c))
				j++
				break
			}
			s.emitSpan("property", tag[j:k])
			j = k
		}
	}

	s.emitSpan("punctuation", ">")
}

func isTagNameChar(c byte) bool {
	return c == '-' || c == ':' || (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isAttrBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
		c == '=' || c == '"' || c == '\'' || c == '/'
}

func (s *markupScanner) emitText(text string) {
	s.out.WriteString(escapeHTML(text))
}

func (s *markupScanner) emitSpan(class, text string) {
	s.out.WriteString(span(class, text))
}
