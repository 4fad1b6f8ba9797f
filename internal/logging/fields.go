// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Conversion fields.
	FieldFormat = "format"
	FieldFrom   = "from"
	FieldTo     = "to"

	// Document fields.
	FieldLanguage      = "language"
	FieldCodeBlocks    = "code_blocks"
	FieldTokens        = "tokens"
	FieldMarkdownBytes = "markdown_bytes"
	FieldHTMLBytes     = "html_bytes"
	FieldLine          = "line"
	FieldColumn        = "column"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
