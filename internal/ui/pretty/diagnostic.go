package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/editkit/pkg/textfmt"
)

// FormatValidationError formats a single validation error for terminal
// output.
func (s *Styles) FormatValidationError(path string, verr *textfmt.ValidationError, showContext bool, sourceLine string) string {
	var builder strings.Builder

	// Location: path:line:col
	location := s.FilePath.Render(path)
	if verr.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, verr.Line)
		if verr.Column > 0 {
			location = fmt.Sprintf("%s:%d", location, verr.Column)
		}
	}

	// Main line: location  severity  message
	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(verr.Msg),
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, verr.Column))
	}

	return builder.String()
}

// FormatValid formats the success line for a file that validated
// cleanly.
func (s *Styles) FormatValid(path string, format string) string {
	return fmt.Sprintf("  %s  %s  %s\n",
		s.FilePath.Render(path),
		s.Success.Render("ok"),
		s.Dim.Render(format),
	)
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	// Source line
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	// Caret marker
	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, blockCount int) string {
	header := s.FilePath.Render(path)
	if blockCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d code blocks)", blockCount))
	}
	return header
}
