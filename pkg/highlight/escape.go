package highlight

import "strings"

// escaper encodes the five characters that are unsafe inside element
// content or double-quoted attribute values. &quot; is used instead of
// the numeric form so attribute-safe output stays readable.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// unescaper reverses escaper. &amp; must come last so doubly-escaped
// sequences are not collapsed twice.
var unescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#34;", `"`,
	"&amp;", "&",
)

func escapeHTML(s string) string { return escaper.Replace(s) }

// UnescapeHTML decodes the entity set produced by the highlighters.
func UnescapeHTML(s string) string { return unescaper.Replace(s) }

// span wraps text in a syntax-classed span, escaping the literal text.
func span(class, text string) string {
	return `<span class="syntax-` + class + `">` + escapeHTML(text) + `</span>`
}
