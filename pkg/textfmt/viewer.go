package textfmt

import (
	"sync"
	"time"

	"github.com/yaklabco/editkit/pkg/debounce"
	"github.com/yaklabco/editkit/pkg/highlight"
)

// ViewerOptions configures a Viewer.
type ViewerOptions struct {
	Format highlight.Format

	// ValidateDelay and HighlightDelay are the quiet periods before
	// re-validation and re-highlighting after a text change. Zero runs
	// synchronously.
	ValidateDelay  time.Duration
	HighlightDelay time.Duration

	// OnHTML receives the highlighted markup after each re-highlight.
	OnHTML func(html string)

	// OnValidation receives the current validation state after each
	// re-validation; nil means the text is valid.
	OnValidation func(err *ValidationError)

	// NestedJSON and ColorSwatches pass through to the highlighter.
	NestedJSON    bool
	ColorSwatches bool
}

// Viewer is the live code-viewer pipeline: raw text in one format,
// debounced validation and re-highlighting, and format switching that
// converts the value rather than reinterpreting the text.
type Viewer struct {
	mu     sync.Mutex
	opts   ViewerOptions
	format highlight.Format
	text   string
	err    *ValidationError

	validateDeb  *debounce.Debouncer
	highlightDeb *debounce.Debouncer
}

// NewViewer creates a viewer. An unset format defaults to plain text.
func NewViewer(opts ViewerOptions) *Viewer {
	format := opts.Format
	if format == "" {
		format = highlight.FormatText
	}
	v := &Viewer{opts: opts, format: format}
	v.validateDeb = debounce.New(opts.ValidateDelay, v.validate)
	v.highlightDeb = debounce.New(opts.HighlightDelay, v.rehighlight)
	return v
}

// Format returns the current format.
func (v *Viewer) Format() highlight.Format {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.format
}

// Text returns the current raw text.
func (v *Viewer) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.text
}

// Err returns the validation state from the last completed validation.
func (v *Viewer) Err() *ValidationError {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetText replaces the raw text and schedules re-validation and
// re-highlighting.
func (v *Viewer) SetText(text string) {
	v.mu.Lock()
	v.text = text
	v.mu.Unlock()

	v.validateDeb.Schedule()
	v.highlightDeb.Schedule()
}

// SetFormat switches the viewer to another format, converting the
// current value so the content stays semantically equivalent. Invalid
// text keeps its bytes and only the format label changes.
func (v *Viewer) SetFormat(format highlight.Format) {
	v.mu.Lock()
	if converted, err := Convert(v.text, v.format, format); err == nil {
		v.text = converted
	}
	v.format = format
	v.mu.Unlock()

	v.validateDeb.Schedule()
	v.highlightDeb.Schedule()
}

// HTML highlights the current text immediately.
func (v *Viewer) HTML() string {
	v.mu.Lock()
	text, format := v.text, v.format
	opts := v.opts
	v.mu.Unlock()

	return highlight.Highlight(text, highlight.Options{
		Format:        format,
		NestedJSON:    opts.NestedJSON,
		ColorSwatches: opts.ColorSwatches,
	})
}

// Validate checks the current text immediately and records the result.
func (v *Viewer) Validate() *ValidationError {
	v.mu.Lock()
	text, format := v.text, v.format
	v.mu.Unlock()

	err := ValidateWithError(text, format)

	v.mu.Lock()
	v.err = err
	v.mu.Unlock()
	return err
}

// Close cancels the pending validation and highlight callbacks.
func (v *Viewer) Close() {
	v.validateDeb.Close()
	v.highlightDeb.Close()
}

func (v *Viewer) validate() {
	err := v.Validate()
	if v.opts.OnValidation != nil {
		v.opts.OnValidation(err)
	}
}

func (v *Viewer) rehighlight() {
	if v.opts.OnHTML != nil {
		v.opts.OnHTML(v.HTML())
	}
}
