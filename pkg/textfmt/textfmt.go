// Package textfmt is the conversion boundary between raw code text
// and structured values: parsing, pretty-printing, validation with
// line/column positions, and format-to-format conversion for the code
// viewer.
package textfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/editkit/pkg/highlight"
)

// ValidationError locates a syntax error in the source text. Line and
// Column are 1-based; zero means the position is unknown.
type ValidationError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// yamlLinePattern pulls the line number out of yaml.v3 error text.
var yamlLinePattern = regexp.MustCompile(`line (\d+):`)

// StripFence removes a surrounding markdown code fence, returning the
// inner text unchanged when no fence is present.
func StripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return text
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines[1:], "\n")
}

// Parse converts raw text to a structured value. Text format passes
// through unparsed. A surrounding code fence is stripped first.
func Parse(text string, format highlight.Format) (any, error) {
	body := StripFence(text)

	switch format {
	case highlight.FormatJSON:
		var v any
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			return nil, err
		}
		return v, nil
	case highlight.FormatYAML:
		var v any
		if err := yaml.Unmarshal([]byte(body), &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return body, nil
	}
}

// FormatValue pretty-prints a structured value: two-space indented
// JSON or YAML. Other formats require a string value, returned as is.
func FormatValue(v any, format highlight.Format) (string, error) {
	switch format {
	case highlight.FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case highlight.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	default:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", fmt.Errorf("format %q needs a string value, got %T", format, v)
	}
}

// ValidateWithError checks text against a format and returns a
// positioned error, or nil when the text is valid. Text format is
// always valid.
func ValidateWithError(text string, format highlight.Format) *ValidationError {
	body := StripFence(text)

	switch format {
	case highlight.FormatJSON:
		var v any
		err := json.Unmarshal([]byte(body), &v)
		if err == nil {
			return nil
		}
		return jsonValidationError(body, err)
	case highlight.FormatYAML:
		var v any
		err := yaml.Unmarshal([]byte(body), &v)
		if err == nil {
			return nil
		}
		return yamlValidationError(err)
	default:
		return nil
	}
}

// Convert re-expresses text in another format via parse and
// pretty-print. Converting to the same format normalizes the text.
func Convert(text string, from, to highlight.Format) (string, error) {
	v, err := Parse(text, from)
	if err != nil {
		return "", err
	}
	return FormatValue(v, to)
}

func jsonValidationError(body string, err error) *ValidationError {
	var offset int64 = -1
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	if offset < 0 {
		return &ValidationError{Msg: err.Error()}
	}
	line, col := lineCol(body, int(offset))
	return &ValidationError{Line: line, Column: col, Msg: err.Error()}
}

func yamlValidationError(err error) *ValidationError {
	msg := err.Error()
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		line := 0
		fmt.Sscanf(m[1], "%d", &line)
		return &ValidationError{Line: line, Msg: msg}
	}
	return &ValidationError{Msg: msg}
}

// lineCol converts a byte offset to a 1-based line and column.
func lineCol(text string, offset int) (int, int) {
	line, col := 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
