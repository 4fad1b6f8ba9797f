// Package langdetect guesses the fence language of code block content
// that was typed without an explicit language tag. It combines
// shebang and pattern checks with the go-enry classifier, and maps
// fence tags onto the highlighter's format set.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/editkit/pkg/highlight"
)

const (
	langJSON       = "json"
	langYAML       = "yaml"
	langBash       = "bash"
	langJavaScript = "javascript"
	langTypeScript = "typescript"
	langCSS        = "css"
	langHTML       = "html"
	langText       = "text"
)

// Detect returns a fence language tag for code content, or "text"
// when nothing matches with confidence.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// Shebangs are the strongest signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Classifier restricted to the languages the highlighter renders,
	// so a confident answer is always displayable.
	candidates := []string{
		"JSON", "YAML", "Shell", "JavaScript", "TypeScript",
		"CSS", "HTML", "Markdown",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// FormatFor maps a fence language tag to the highlighter format used
// to render it. Unknown tags fall through to plain text.
func FormatFor(lang string) highlight.Format {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "json", "jsonc", "json5":
		return highlight.FormatJSON
	case "yaml", "yml":
		return highlight.FormatYAML
	case "bash", "sh", "shell", "zsh":
		return highlight.FormatBash
	case "javascript", "js", "jsx", "mjs":
		return highlight.FormatJavaScript
	case "typescript", "ts", "tsx":
		return highlight.FormatTypeScript
	case "css", "scss", "less":
		return highlight.FormatCSS
	case "html", "htm", "xml", "svg":
		return highlight.FormatHTML
	case "vue":
		return highlight.FormatVue
	case "markdown", "md":
		return highlight.FormatMarkdown
	default:
		return highlight.FormatText
	}
}

// detectByPattern checks highly indicative constructs before handing
// off to the statistical classifier.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	if lang := detectHTML(trimmed); lang != "" {
		return lang
	}
	if lang := detectJSON(trimmed); lang != "" {
		return lang
	}
	if lang := detectScript(text); lang != "" {
		return lang
	}
	if lang := detectCSS(text); lang != "" {
		return lang
	}
	if lang := detectBash(text); lang != "" {
		return lang
	}
	if lang := detectYAML(content); lang != "" {
		return lang
	}
	return ""
}

func detectHTML(trimmed []byte) string {
	lower := bytes.ToLower(trimmed)
	if bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>")) {
		return langHTML
	}
	return ""
}

func detectJSON(trimmed []byte) string {
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return langJSON
	}
	return ""
}

func detectCSS(text string) string {
	// Selector block with property: value; lines.
	if strings.Contains(text, "{") && strings.Contains(text, "}") &&
		strings.Contains(text, ";") && strings.Contains(text, ":") &&
		!strings.Contains(text, "=>") && !strings.Contains(text, "function") {
		return langCSS
	}
	return ""
}

func detectScript(text string) string {
	tsMarkers := strings.Contains(text, "interface ") ||
		strings.Contains(text, ": string;") ||
		strings.Contains(text, ": number;") ||
		strings.Contains(text, "as const")
	jsMarkers := strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") ||
		strings.Contains(text, "console.log")

	if tsMarkers {
		return langTypeScript
	}
	if jsMarkers {
		return langJavaScript
	}
	return ""
}

func detectBash(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "#!") {
		return langBash
	}
	for _, cmd := range []string{"echo ", "cd ", "mkdir ", "curl ", "grep ", "export "} {
		if strings.HasPrefix(trimmed, cmd) || strings.Contains(text, "\n"+cmd) {
			return langBash
		}
	}
	return ""
}

// detectYAML counts key: value lines, excluding lines that look like
// code.
func detectYAML(content []byte) string {
	keyCount := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			keyCount++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keyCount++
		}
	}
	if keyCount >= 2 {
		return langYAML
	}
	return ""
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
