package highlight_test

import (
	"regexp"
	"testing"

	"github.com/yaklabco/editkit/pkg/highlight"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripMarkup removes injected span wrappers and decodes entities,
// which must reconstruct the highlighter input exactly.
func stripMarkup(html string) string {
	return highlight.UnescapeHTML(tagPattern.ReplaceAllString(html, ""))
}

// Every highlighter must preserve input byte-for-byte: markup is
// additive, escaping only.
func TestHighlightRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"json":     "{\"a\": [1, -2.5e3, true, null], \"s\": \"x\\\"y<z>\"}",
		"json bad": "{\"unterminated: [1,",
		"yaml": "top: value\nlist:\n  - 1\n  - \"two\"\nblock: |\n  raw <text>\n" +
			"  more\nplain: start\n    wrapped\n# comment\nnum: 3.5",
		"yaml bad":   "a: \"open\n  - ][\nb: |",
		"bash":       "#!/bin/sh\nif [ -f x ]; then cat x | grep 'a' >> out 2> err; fi\necho \"$HOME <&>\"",
		"javascript": "const f = (a) => { return `t${a}` } // done\n/* c */ let n = 0x1F;",
		"typescript": "interface X { readonly n: number }\ndeclare const v: unknown;",
		"css":        "@import url(x);\n.a > .b { color: #fff; width: 50%; } /* z */",
		"html":       "<!DOCTYPE html>\n<div class='a' data-x=\"1\">a & b</div><!-- c --><br/>",
		"text":       "plain <text> & \"stuff\"",
		"markdown":   "# heading\n- item",
		"empty":      "",
	}

	formats := map[string]highlight.Format{
		"json":       highlight.FormatJSON,
		"json bad":   highlight.FormatJSON,
		"yaml":       highlight.FormatYAML,
		"yaml bad":   highlight.FormatYAML,
		"bash":       highlight.FormatBash,
		"javascript": highlight.FormatJavaScript,
		"typescript": highlight.FormatTypeScript,
		"css":        highlight.FormatCSS,
		"html":       highlight.FormatHTML,
		"text":       highlight.FormatText,
		"markdown":   highlight.FormatMarkdown,
		"empty":      highlight.FormatJSON,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := highlight.Highlight(input, highlight.Options{Format: formats[name]})
			if got := stripMarkup(out); got != input {
				t.Errorf("round trip failed:\n got %q\nwant %q", got, input)
			}
		})
	}
}

// Unknown formats fall through to plain escaping.
func TestHighlightUnknownFormat(t *testing.T) {
	t.Parallel()

	got := highlight.Highlight("<x>", highlight.Options{Format: "fortran"})
	if got != "&lt;x&gt;" {
		t.Errorf("unknown format should escape only, got %q", got)
	}
}
