package highlight

import "strings"

// bashKeywordSet always highlights as keywords and re-arms command
// position, since a keyword like "then" is followed by a command.
var bashKeywordSet = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "in": true, "function": true,
	"return": true, "local": true, "export": true, "source": true,
	"eval": true, "exec": true, "select": true,
}

// bashMultiOps are matched before any single-character operator.
var bashMultiOps = []string{"||", "&&", ";;", ">>", "<<", "2>", "&>"}

// bashSpecialVars are the single-character $ forms.
const bashSpecialVars = "0123456789@?#$!*_"

// bashScanner highlights shell scripts with one piece of persistent
// state: whether the next word sits in command position.
type bashScanner struct {
	src           string
	out           strings.Builder
	i             int
	expectCommand bool
}

func highlightBash(code string) string {
	s := &bashScanner{src: code, expectCommand: true}
	s.run()
	return s.out.String()
}

func (s *bashScanner) run() {
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\n':
			s.emitText("\n")
			s.i++
			s.expectCommand = true
		case c == ' ' || c == '\t' || c == '\r':
			s.emitText(string(c))
			s.i++
		case c == '#' && s.atCommentStart():
			s.scanComment()
		case c == '"':
			s.scanDoubleQuoted()
		case c == '\'':
			s.scanSingleQuoted()
		case c == '$':
			s.scanVariable()
		case s.scanOperator():
			// consumed by scanOperator
		case isBashWordChar(c):
			s.scanWord()
		default:
			s.emitText(string(c))
			s.i++
		}
	}
}

// atCommentStart reports whether a # at the current index starts a
// comment rather than sitting inside a word (word#fragment).
func (s *bashScanner) atCommentStart() bool {
	if s.i == 0 {
		return true
	}
	prev := s.src[s.i-1]
	return prev == ' ' || prev == '\t' || prev == '\n' || prev == ';' ||
		prev == '|' || prev == '&' || prev == '('
}

func (s *bashScanner) scanComment() {
	end := strings.IndexByte(s.src[s.i:], '\n')
	if end < 0 {
		end = len(s.src) - s.i
	}
	s.emitSpan("comment", s.src[s.i:s.i+end])
	s.i += end
}

// scanDoubleQuoted consumes a double-quoted string honoring backslash
// escapes. Unterminated strings run to end of input.
func (s *bashScanner) scanDoubleQuoted() {
	j := s.i + 1
	for j < len(s.src) {
		if s.src[j] == '\\' {
			j += 2
			continue
		}
		if s.src[j] == '"' {
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
	s.expectCommand = false
}

// scanSingleQuoted consumes a single-quoted string. No escapes apply.
func (s *bashScanner) scanSingleQuoted() {
	j := s.i + 1
	for j < len(s.src) && s.src[j] != '\'' {
		j++
	}
	if j < len(s.src) {
		j++
	}
	s.emitSpan("string", s.src[s.i:j])
	s.i = j
	s.expectCommand = false
}

// scanVariable consumes $VAR, ${VAR}, positional, and special
// parameters. A lone $ falls through to plain text.
func (s *bashScanner) scanVariable() {
	j := s.i + 1
	switch {
	case j < len(s.src) && s.src[j] == '{':
		for j < len(s.src) && s.src[j] != '}' {
			j++
		}
		if j < len(s.src) {
			j++
		}
	case j < len(s.src) && strings.IndexByte(bashSpecialVars, s.src[j]) >= 0:
		j++
	case j < len(s.src) && isBashNameChar(s.src[j]):
		for j < len(s.src) && isBashNameChar(s.src[j]) {
			j++
		}
	default:
		s.emitText("$")
		s.i = j
		return
	}
	s.emitSpan("variable", s.src[s.i:j])
	s.i = j
	s.expectCommand = false
}

// scanOperator tries multi-character operators first, then single
// characters. Returns false when the current character is not an
// operator at all.
func (s *bashScanner) scanOperator() bool {
	rest := s.src[s.i:]
	for _, op := range bashMultiOps {
		if strings.HasPrefix(rest, op) {
			s.emitSpan("operator", op)
			s.i += len(op)
			if op == "||" || op == "&&" || op == ";;" {
				s.expectCommand = true
			}
			return true
		}
	}
	switch rest[0] {
	case '|', ';':
		s.emitSpan("operator", string(rest[0]))
		s.i++
		s.expectCommand = true
		return true
	case '>', '<', '&', '=':
		s.emitSpan("operator", string(rest[0]))
		s.i++
		return true
	case '(', '{':
		s.emitSpan("punctuation", string(rest[0]))
		s.i++
		s.expectCommand = true
		return true
	case ')', '}', '[', ']':
		s.emitSpan("punctuation", string(rest[0]))
		s.i++
		return true
	}
	return false
}

// scanWord consumes a word-or-path token. Keywords always win; in
// command position any other word is highlighted as the command.
func (s *bashScanner) scanWord() {
	j := s.i
	for j < len(s.src) && isBashWordChar(s.src[j]) {
		j++
	}
	word := s.src[s.i:j]
	s.i = j

	switch {
	case bashKeywordSet[word]:
		s.emitSpan("keyword", word)
		s.expectCommand = true
	case s.expectCommand:
		s.emitSpan("command", word)
		s.expectCommand = false
	default:
		s.emitText(word)
	}
}

func (s *bashScanner) emitText(text string) {
	s.out.WriteString(escapeHTML(text))
}

func (s *bashScanner) emitSpan(class, text string) {
	s.out.WriteString(span(class, text))
}

func isBashWordChar(c byte) bool {
	return c == '-' || c == '.' || c == '/' || c == ':' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isBashNameChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
