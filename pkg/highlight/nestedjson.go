package highlight

import (
	"encoding/json"
	"strconv"
	"strings"
)

// tokenIDs hands out stable per-call identifiers for toggle markup.
// Injected HTML cannot carry live event handlers, so the ids are the
// click-delegation targets for expand/collapse.
type tokenIDs struct {
	n int
}

func (t *tokenIDs) next() string {
	t.n++
	return "nested-json-" + strconv.Itoa(t.n)
}

// decodeJSONString decodes a double-quoted JSON string literal
// (including its quotes) into its unescaped content.
func decodeJSONString(raw string) (string, bool) {
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return "", false
	}
	return s, true
}

// looksLikeJSON reports whether content is a complete JSON object or
// array.
func looksLikeJSON(content string) bool {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid([]byte(trimmed))
}

// emitNestedJSON emits toggle markup for a string value whose decoded
// content parses as JSON. The collapsed state shows the raw escaped
// literal; the expanded state shows a recursive pretty-print indented to
// the current output column. Returns false when the content is not
// nested JSON, leaving the caller to emit a plain string span.
func (s *jsonScanner) emitNestedJSON(raw, decoded string) bool {
	markup, ok := nestedJSONMarkup(raw, decoded, s.col, s.ids)
	if !ok {
		return false
	}
	s.out.WriteString(markup)
	s.col = advanceColumn(s.col, raw)
	return true
}

// nestedJSONMarkup builds the toggle wrapper shared by the JSON and
// YAML highlighters. raw is the literal text as it appeared in the
// source (quoted for JSON string values, bare for YAML scalars);
// decoded is its unescaped content.
func nestedJSONMarkup(raw, decoded string, col int, ids *tokenIDs) (string, bool) {
	if !looksLikeJSON(decoded) {
		return "", false
	}

	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(decoded)), &v); err != nil {
		return "", false
	}
	pretty, err := json.MarshalIndent(v, strings.Repeat(" ", col), "  ")
	if err != nil {
		return "", false
	}

	var b strings.Builder
	b.WriteString(`<span class="nested-json" data-nested-json-toggle="true" data-nested-json-id="`)
	b.WriteString(ids.next())
	b.WriteString(`"><span class="nested-json-raw"><span class="syntax-string">`)
	b.WriteString(escapeHTML(raw))
	b.WriteString(`</span></span><span class="nested-json-pretty">`)
	b.WriteString(highlightJSON(string(pretty), false))
	b.WriteString(`</span></span>`)
	return b.String(), true
}
