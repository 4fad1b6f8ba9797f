// Package highlight converts raw source text into HTML annotated with
// syntax-* span wrappers. Every highlighter is a single forward-scanning
// pass that preserves the input byte-for-byte: stripping the injected
// markup and unescaping entities reconstructs the original string exactly.
// Highlighting never fails; unrecognized constructs degrade to escaped
// plain text.
package highlight

// Format identifies the source format of a piece of text.
type Format string

// Supported source formats.
const (
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatText       Format = "text"
	FormatMarkdown   Format = "markdown"
	FormatHTML       Format = "html"
	FormatCSS        Format = "css"
	FormatJavaScript Format = "javascript"
	FormatTypeScript Format = "typescript"
	FormatBash       Format = "bash"
	FormatVue        Format = "vue"
)

// Options controls optional highlighter behavior.
type Options struct {
	// Format selects the tokenizer. Unknown formats, text, and markdown
	// fall through to plain HTML escaping.
	Format Format

	// NestedJSON enables toggle markup for string values whose content
	// itself parses as a JSON object or array (JSON and YAML only).
	NestedJSON bool

	// ColorSwatches wraps recognized hex color literals in preview spans.
	ColorSwatches bool
}

// Highlight renders code as HTML with syntax-* span annotations.
// It never returns an error and never panics: for any input the output
// strips back to the input.
func Highlight(code string, opts Options) string {
	var out string

	switch opts.Format {
	case FormatJSON:
		out = highlightJSON(code, opts.NestedJSON)
	case FormatYAML:
		out = highlightYAML(code, opts.NestedJSON)
	case FormatBash:
		out = highlightBash(code)
	case FormatJavaScript:
		out = highlightScript(code, jsKeywords)
	case FormatTypeScript:
		out = highlightScript(code, tsKeywords)
	case FormatCSS:
		out = highlightCSS(code)
	case FormatHTML, FormatVue:
		out = highlightMarkup(code)
	default:
		out = escapeHTML(code)
	}

	if opts.ColorSwatches {
		out = ApplyColorSwatches(out)
	}

	return out
}

// JSON highlights a JSON document.
func JSON(code string) string { return highlightJSON(code, false) }

// YAML highlights a YAML document.
func YAML(code string) string { return highlightYAML(code, false) }

// Bash highlights a shell script.
func Bash(code string) string { return highlightBash(code) }

// JavaScript highlights a JavaScript source file.
func JavaScript(code string) string { return highlightScript(code, jsKeywords) }

// TypeScript highlights a TypeScript source file. TypeScript is treated
// as JavaScript with an extended keyword set.
func TypeScript(code string) string { return highlightScript(code, tsKeywords) }

// CSS highlights a stylesheet.
func CSS(code string) string { return highlightCSS(code) }

// Markup highlights an HTML (or Vue template) document.
func Markup(code string) string { return highlightMarkup(code) }
