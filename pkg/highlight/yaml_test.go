package highlight_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/editkit/pkg/highlight"
)

func TestYAMLBlockScalar(t *testing.T) {
	t.Parallel()

	got := highlight.YAML("description: |\n  line 1\n  line 2")

	if !strings.Contains(got, `<span class="syntax-punctuation">|</span>`) {
		t.Errorf("block scalar indicator should be punctuation: %q", got)
	}
	if !strings.Contains(got, `<span class="syntax-string">  line 1</span>`) {
		t.Errorf("first continuation line missing: %q", got)
	}
	if !strings.Contains(got, `<span class="syntax-string">  line 2</span>`) {
		t.Errorf("second continuation line missing: %q", got)
	}
}

func TestYAMLBlockScalarEndsOnDedent(t *testing.T) {
	t.Parallel()

	got := highlight.YAML("a: |\n  scalar text\nnext: 1")

	if !strings.Contains(got, `<span class="syntax-key">next</span>`) {
		t.Errorf("dedented line should return to normal classification: %q", got)
	}
	if !strings.Contains(got, `<span class="syntax-number">1</span>`) {
		t.Errorf("value after block scalar should classify: %q", got)
	}
}

func TestYAMLValueClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quoted string", `msg: "hello"`, `<span class="syntax-string">&quot;hello&quot;</span>`},
		{"single quoted", `msg: 'hi'`, `<span class="syntax-string">&#39;hi&#39;</span>`},
		{"number", "count: 42", `<span class="syntax-number">42</span>`},
		{"float", "ratio: -0.5", `<span class="syntax-number">-0.5</span>`},
		{"bool true", "on: true", `<span class="syntax-boolean">true</span>`},
		{"bool mixed case", "on: True", `<span class="syntax-boolean">True</span>`},
		{"null word", "x: null", `<span class="syntax-null">null</span>`},
		{"null tilde", "x: ~", `<span class="syntax-null">~</span>`},
		{"unquoted string", "name: hello world", `<span class="syntax-string">hello world</span>`},
		{"comment", "# a note", `<span class="syntax-comment"># a note</span>`},
		{"array dash", "- item", `<span class="syntax-punctuation">-</span>`},
		{"key", "top: v", `<span class="syntax-key">top</span>`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := highlight.YAML(testCase.input)
			if !strings.Contains(got, testCase.want) {
				t.Errorf("highlight.YAML(%q) = %q, want substring %q",
					testCase.input, got, testCase.want)
			}
		})
	}
}

func TestYAMLQuotedMultiLine(t *testing.T) {
	t.Parallel()

	got := highlight.YAML("msg: \"first\nsecond\" trailing\nkey: 1")

	// Opening line carries the unclosed quote as a string span.
	if !strings.Contains(got, `<span class="syntax-string">&quot;first</span>`) {
		t.Errorf("open quote line should be a string span: %q", got)
	}
	// Continuation line splits at the closing quote.
	if !strings.Contains(got, `<span class="syntax-string">second&quot;</span>`) {
		t.Errorf("continuation should split at the close quote: %q", got)
	}
	// After the close, classification resumes.
	if !strings.Contains(got, `<span class="syntax-key">key</span>`) {
		t.Errorf("line after close should classify normally: %q", got)
	}
}

func TestYAMLUnquotedMultiLine(t *testing.T) {
	t.Parallel()

	got := highlight.YAML("summary: first part\n    wrapped tail\nnext: 2")

	if !strings.Contains(got, `<span class="syntax-string">    wrapped tail</span>`) {
		t.Errorf("wrapped scalar continuation missing: %q", got)
	}
	if !strings.Contains(got, `<span class="syntax-key">next</span>`) {
		t.Errorf("following mapping line should classify: %q", got)
	}
}

// A document ending mid-way through any continuation state must end
// cleanly: no panic, balanced spans, exact text round trip.
func TestYAMLUnterminatedStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"open block scalar", "a: |\n  one\n  two"},
		{"open double quote", "a: \"never closed\ncontinued"},
		{"open single quote", "a: 'never closed\ncontinued"},
		{"open plain continuation", "a: start\n    continued forever"},
		{"dangling indicator", "a: |"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := highlight.YAML(testCase.input)
			if strings.Count(got, "<span") != strings.Count(got, "</span>") {
				t.Errorf("unbalanced spans: %q", got)
			}
			if stripped := stripMarkup(got); stripped != testCase.input {
				t.Errorf("round trip: got %q want %q", stripped, testCase.input)
			}
		})
	}
}

func TestYAMLNestedJSONValue(t *testing.T) {
	t.Parallel()

	got := highlight.Highlight(`data: {"a": 1}`, highlight.Options{
		Format:     highlight.FormatYAML,
		NestedJSON: true,
	})
	if !strings.Contains(got, "data-nested-json-toggle") {
		t.Errorf("unquoted JSON scalar should grow toggle markup: %q", got)
	}
}
