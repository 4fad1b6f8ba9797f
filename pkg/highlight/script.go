package highlight

import "strings"

// jsKeywords is the base JavaScript keyword set.
var jsKeywords = makeKeywordSet(
	"var", "let", "const", "function", "return", "if", "else", "for",
	"while", "do", "switch", "case", "default", "break", "continue",
	"new", "delete", "typeof", "instanceof", "in", "of", "class",
	"extends", "super", "this", "import", "export", "from", "try",
	"catch", "finally", "throw", "async", "await", "yield", "void",
	"static", "get", "set", "debugger", "with",
)

// tsKeywords extends the JavaScript set with TypeScript-only keywords.
var tsKeywords = makeKeywordSet(append(tsOnlyKeywords, jsKeywordList()...)...)

var tsOnlyKeywords = []string{
	"type", "interface", "enum", "namespace", "declare", "abstract",
	"implements", "readonly", "keyof", "infer", "is", "asserts",
	"override", "satisfies", "public", "private", "protected",
	"never", "unknown", "any",
}

func makeKeywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func jsKeywordList() []string {
	words := make([]string, 0, len(jsKeywords))
	for w := range jsKeywords {
		words = append(words, w)
	}
	return words
}

// scriptScanner highlights JavaScript; TypeScript reuses it with the
// extended keyword set.
type scriptScanner struct {
	src      string
	out      strings.Builder
	i        int
	keywords map[string]bool
}

func highlightScript(code string, keywords map[string]bool) string {
	s := &scriptScanner{src: code, keywords: keywords}
	s.run()
	return s.out.String()
}

func (s *scriptScanner) run() {
	for s.i < len(s.src) {
		c := s.src[s.i]
		rest := s.src[s.i:]
		switch {
		case strings.HasPrefix(rest, "//"):
			s.scanLineComment()
		case strings.HasPrefix(rest, "/*"):
			s.scanBlockComment()
		case c == '"' || c == '\'' || c == '`':
			s.scanString(c)
		case c >= '0' && c <= '9':
			s.scanNumber()
		case isScriptIdentStart(c):
			s.scanIdent()
		case strings.IndexByte("+-*/%=!<>&|?^~", c) >= 0:
			s.emitSpan("operator", string(c))
			s.i++
		case strings.IndexByte("(){}[];,.:", c) >= 0:
			s.emitSpan("punctuation", string(c))
			s.i++
		default:
			s.emitText(string(c))
			s.i++
		}
	}
}

func (s *scriptScanner) scanLineComment() {
	end := strings.IndexByte(s.src[s.i:], '\n')
	if end < 0 {
		end = len(s.src) - s.i
	}
	s.emitSpan("comment", s.src[s.i:s.i+end])
	s.i += end
}

func (s *scriptScanner) scanBlockComment() {
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

// scanString consumes a quoted or template literal. Template literals
// may span lines; all three quote styles honor backslash escapes.
func (s *scriptScanner) scanString(quote byte) {
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
		if s.src[j] == '\n' && quote != '`' {
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

func (s *scriptScanner) scanNumber() {
	j := s.i
	if strings.HasPrefix(s.src[j:], "0x") || strings.HasPrefix(s.src[j:], "0X") {
		j += 2
		for j < len(s.src) && isHexDigit(s.src[j]) {
			j++
		}
	} else {
		for j < len(s.src) && (isDigit(s.src[j]) || s.src[j] == '.') {
			j++
		}
		if j < len(s.src) && (s.src[j] == 'e' || s.src[j] == 'E') {
			j++
			if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
				j++
			}
			for j < len(s.src) && isDigit(s.src[j]) {
				j++
			}
		}
	}
	s.emitSpan("number", s.src[s.i:j])
	s.i = j
}

func (s *scriptScanner) scanIdent() {
	j := s.i
	for j < len(s.src) && isScriptIdentChar(s.src[j]) {
		j++
	}
	word := s.src[s.i:j]
	s.i = j

	switch {
	case word == "true" || word == "false":
		s.emitSpan("boolean", word)
	case word == "null" || word == "undefined":
		s.emitSpan("null", word)
	case s.keywords[word]:
		s.emitSpan("keyword", word)
	default:
		s.emitText(word)
	}
}

func (s *scriptScanner) emitText(text string) {
	s.out.WriteString(escapeHTML(text))
}

func (s *scriptScanner) emitSpan(class, text string) {
	s.out.WriteString(span(class, text))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isScriptIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isScriptIdentChar(c byte) bool {
	return isScriptIdentStart(c) || isDigit(c)
}
