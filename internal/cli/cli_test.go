package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand(BuildInfo{Version: "test", Commit: "none", Date: "today"})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHighlightCommand_JSON(t *testing.T) {
	out, _, err := execute(t, `{"key": "value"}`, "highlight", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="syntax-key">&quot;key&quot;</span>`)
	assert.Contains(t, out, `<span class="syntax-string">&quot;value&quot;</span>`)
}

func TestHighlightCommand_AutoDetect(t *testing.T) {
	out, _, err := execute(t, "name: demo\nversion: 2", "highlight")
	require.NoError(t, err)
	assert.Contains(t, out, `syntax-key`)
}

func TestHighlightCommand_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.css")
	require.NoError(t, os.WriteFile(path, []byte(".a { color: #fff; }"), 0o644))

	out, _, err := execute(t, "", "highlight", "--format", "css", "--color-swatches", path)
	require.NoError(t, err)
	assert.Contains(t, out, `syntax-selector`)
	assert.Contains(t, out, `color-preview`)
}

func TestConvertCommand_JSONToYAML(t *testing.T) {
	out, _, err := execute(t, `{"a": 1}`, "convert", "--from", "json", "--to", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "a: 1")
}

func TestConvertCommand_YAMLToJSON(t *testing.T) {
	out, _, err := execute(t, "name: demo", "convert", "--to", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "demo"`)
}

func TestConvertCommand_InvalidInput(t *testing.T) {
	_, errOut, err := execute(t, "{broken", "convert", "--from", "json", "--to", "yaml")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, errOut, "error")
}

func TestConvertCommand_BadTargetFormat(t *testing.T) {
	_, _, err := execute(t, "{}", "convert", "--from", "json", "--to", "toml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidationFailed)
}

func TestValidateCommand_Valid(t *testing.T) {
	out, _, err := execute(t, `{"ok": true}`, "validate", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "json")
}

func TestValidateCommand_Invalid(t *testing.T) {
	_, errOut, err := execute(t, "{\n  \"a\": nope\n}", "validate", "--format", "json")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, errOut, "stdin:2")
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "# Title\n\n```go\nx := 1\n```", "render")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, `data-code-block-id="code-block-1"`)
}

func TestExtractCommand(t *testing.T) {
	out, _, err := execute(t, "<h2>Sub</h2><ul><li>one</li></ul>", "extract")
	require.NoError(t, err)
	assert.Contains(t, out, "## Sub")
	assert.Contains(t, out, "- one")
}

func TestRenderExtractRoundTrip(t *testing.T) {
	doc := "# Title\n\n- a\n- b\n\n```yaml\nkey: value\n```"

	rendered, _, err := execute(t, doc, "render")
	require.NoError(t, err)

	extracted, _, err := execute(t, rendered, "extract")
	require.NoError(t, err)
	assert.Equal(t, doc, strings.TrimRight(extracted, "\n"))
}

func TestSourceLineAt(t *testing.T) {
	text := "first\nsecond\nthird"
	assert.Equal(t, "second", sourceLineAt(text, 2, 80))
	assert.Equal(t, "", sourceLineAt(text, 9, 80))
	assert.Equal(t, "", sourceLineAt(text, 0, 80))
	assert.Equal(t, "se...", sourceLineAt(text, 2, 5))
}
