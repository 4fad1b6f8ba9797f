package highlight

import (
	"regexp"
	"strings"
)

// YAML line classification patterns.
var (
	yamlCommentLine  = regexp.MustCompile(`^\s*#`)
	yamlKeyValue     = regexp.MustCompile(`^(\s*)([^:]+?)(:)(\s*)(.*)$`)
	yamlArrayItem    = regexp.MustCompile(`^(\s*)(-)(\s*)(.*)$`)
	yamlBlockScalar  = regexp.MustCompile(`^[|>][-+]?\d*$`)
	yamlStrictNumber = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)
)

// yamlState is the multi-line continuation state carried across lines.
// The four states are mutually exclusive.
type yamlState int

const (
	yamlNormal yamlState = iota
	yamlInBlockScalar
	yamlInQuotedString
	yamlInPlainString
)

// yamlScanner highlights YAML line by line. Unlike the character
// scanners, it needs explicit state for block scalars and multi-line
// strings, plus one line of lookahead for unquoted continuations.
type yamlScanner struct {
	lines  []string
	out    strings.Builder
	col    int
	nested bool
	ids    *tokenIDs

	state       yamlState
	blockIndent int  // indent of the key line that opened a block scalar
	quote       byte // open quote char of a multi-line quoted string
	plainIndent int  // indent of the key line that opened a plain multi-line value
}

func highlightYAML(code string, nested bool) string {
	s := &yamlScanner{
		lines:  strings.Split(code, "\n"),
		nested: nested,
		ids:    &tokenIDs{},
	}
	for idx := range s.lines {
		if idx > 0 {
			s.out.WriteByte('\n')
			s.col = 0
		}
		s.line(idx)
	}
	return s.out.String()
}

func (s *yamlScanner) line(idx int) {
	line := s.lines[idx]
	switch s.state {
	case yamlInBlockScalar:
		s.blockScalarLine(idx, line)
	case yamlInQuotedString:
		s.quotedLine(line)
	case yamlInPlainString:
		s.plainLine(idx, line)
	default:
		s.normalLine(idx, line)
	}
}

// blockScalarLine continues a block scalar while lines stay more
// indented than the opening key; the first less-indented non-empty
// line drops back to normal classification.
func (s *yamlScanner) blockScalarLine(idx int, line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		s.emitText(line)
		return
	}
	if indentOf(line) > s.blockIndent {
		s.emitSpan("string", line)
		return
	}
	s.state = yamlNormal
	s.normalLine(idx, line)
}

// quotedLine continues a multi-line quoted string, splitting the line
// at the first unescaped matching quote when one appears.
func (s *yamlScanner) quotedLine(line string) {
	j := 0
	for j < len(line) {
		if line[j] == '\\' && s.quote == '"' {
			j += 2
			continue
		}
		if line[j] == s.quote {
			s.emitSpan("string", line[:j+1])
			s.state = yamlNormal
			s.emitLineRemainder(line[j+1:])
			return
		}
		j++
	}
	s.emitSpan("string", line)
}

// plainLine continues an unquoted multi-line value while lines stay
// strictly more indented and contain neither a colon nor a leading
// dash. This heuristic can misread deeply indented mapping
// continuations as scalar text; that boundary is accepted as is.
func (s *yamlScanner) plainLine(idx int, line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed != "" && indentOf(line) > s.plainIndent &&
		!strings.Contains(line, ":") && !strings.HasPrefix(trimmed, "-") {
		s.emitSpan("string", line)
		return
	}
	s.state = yamlNormal
	s.normalLine(idx, line)
}

func (s *yamlScanner) normalLine(idx int, line string) {
	if yamlCommentLine.MatchString(line) {
		s.emitSpan("comment", line)
		return
	}
	if m := yamlKeyValue.FindStringSubmatch(line); m != nil {
		s.emitText(m[1])
		s.emitSpan("key", m[2])
		s.emitSpan("punctuation", m[3])
		s.emitText(m[4])
		s.value(idx, len(m[1]), m[5])
		return
	}
	if m := yamlArrayItem.FindStringSubmatch(line); m != nil {
		s.emitText(m[1])
		s.emitSpan("punctuation", m[2])
		s.emitText(m[3])
		s.value(idx, len(m[1]), m[4])
		return
	}
	s.emitText(line)
}

// value classifies a scalar value. Order: complete quoted string,
// strict number, boolean, null, block scalar indicator, unquoted
// string.
func (s *yamlScanner) value(idx, keyIndent int, value string) {
	if value == "" {
		return
	}

	if value[0] == '"' || value[0] == '\'' {
		s.quotedValue(value)
		return
	}

	switch {
	case yamlStrictNumber.MatchString(value):
		s.emitSpan("number", value)
	case strings.EqualFold(value, "true") || strings.EqualFold(value, "false"):
		s.emitSpan("boolean", value)
	case strings.EqualFold(value, "null") || value == "~":
		s.emitSpan("null", value)
	case yamlBlockScalar.MatchString(value):
		s.emitSpan("punctuation", value)
		s.state = yamlInBlockScalar
		s.blockIndent = keyIndent
	default:
		s.plainValue(idx, keyIndent, value)
	}
}

// quotedValue handles a value opening with a quote char: complete on
// the same line, or the start of a multi-line quoted string.
func (s *yamlScanner) quotedValue(value string) {
	quote := value[0]
	j := 1
	for j < len(value) {
		if value[j] == '\\' && quote == '"' {
			j += 2
			continue
		}
		if value[j] == quote {
			s.emitSpan("string", value[:j+1])
			s.emitLineRemainder(value[j+1:])
			return
		}
		j++
	}
	// No close on this line: the string continues.
	s.emitSpan("string", value)
	s.state = yamlInQuotedString
	s.quote = quote
}

// plainValue emits an unquoted scalar, arming the plain-continuation
// state when the next line looks like a wrapped scalar.
func (s *yamlScanner) plainValue(idx, keyIndent int, value string) {
	if idx+1 < len(s.lines) {
		next := s.lines[idx+1]
		trimmed := strings.TrimSpace(next)
		if trimmed != "" && indentOf(next) > keyIndent &&
			!strings.Contains(next, ":") && !strings.HasPrefix(trimmed, "-") {
			s.state = yamlInPlainString
			s.plainIndent = keyIndent
		}
	}

	if s.nested {
		if markup, ok := nestedJSONMarkup(value, value, s.col, s.ids); ok {
			s.out.WriteString(markup)
			s.col = advanceColumn(s.col, value)
			return
		}
	}
	s.emitSpan("string", value)
}

// emitLineRemainder handles trailing content after a closed quoted
// string: a trailing comment keeps its class, anything else stays
// plain.
func (s *yamlScanner) emitLineRemainder(rest string) {
	if rest == "" {
		return
	}
	if yamlCommentLine.MatchString(rest) {
		s.emitSpan("comment", rest)
		return
	}
	s.emitText(rest)
}

func (s *yamlScanner) emitText(text string) {
	s.out.WriteString(escapeHTML(text))
	s.col = advanceColumn(s.col, text)
}

func (s *yamlScanner) emitSpan(class, text string) {
	s.out.WriteString(span(class, text))
	s.col = advanceColumn(s.col, text)
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
