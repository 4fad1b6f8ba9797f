package langdetect_test

import (
	"testing"

	"github.com/yaklabco/editkit/pkg/highlight"
	"github.com/yaklabco/editkit/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "shebang bash",
			content:  "#!/bin/bash\necho hello",
			expected: "bash",
		},
		{
			name:     "shebang sh",
			content:  "#!/bin/sh\necho hello",
			expected: "bash",
		},
		{
			name:     "json object",
			content:  `{"key": "value", "number": 123}`,
			expected: "json",
		},
		{
			name:     "json array",
			content:  `[{"a": 1}, {"a": 2}]`,
			expected: "json",
		},
		{
			name:     "yaml mapping",
			content:  "name: demo\nversion: 1\nitems:\n- one\n- two",
			expected: "yaml",
		},
		{
			name:     "javascript arrow function",
			content:  "const x = () => { return 42; };\nconsole.log(x());",
			expected: "javascript",
		},
		{
			name:     "typescript interface",
			content:  "interface User {\n  name: string;\n}\nconst u = { name: \"a\" };",
			expected: "typescript",
		},
		{
			name:     "html document",
			content:  "<!DOCTYPE html>\n<html><body>hi</body></html>",
			expected: "html",
		},
		{
			name:     "css rule",
			content:  ".card {\n  color: red;\n  margin: 0;\n}",
			expected: "css",
		},
		{
			name:     "shell commands",
			content:  "mkdir -p build\ncd build",
			expected: "bash",
		},
		{
			name:     "empty content",
			content:  "",
			expected: "text",
		},
		{
			name:     "whitespace only",
			content:  "   \n\t\n",
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Detect([]byte(tt.content))
			if got != tt.expected {
				t.Errorf("Detect(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang     string
		expected highlight.Format
	}{
		{"json", highlight.FormatJSON},
		{"yml", highlight.FormatYAML},
		{"sh", highlight.FormatBash},
		{"JS", highlight.FormatJavaScript},
		{"tsx", highlight.FormatTypeScript},
		{"scss", highlight.FormatCSS},
		{"xml", highlight.FormatHTML},
		{"vue", highlight.FormatVue},
		{"md", highlight.FormatMarkdown},
		{"fortran", highlight.FormatText},
		{"", highlight.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.FormatFor(tt.lang); got != tt.expected {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.lang, got, tt.expected)
			}
		})
	}
}
