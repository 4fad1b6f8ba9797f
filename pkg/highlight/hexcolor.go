package highlight

import (
	"regexp"
	"strings"
)

// htmlSegment splits highlighted output into alternating tag and text
// runs so swatch markup is only injected into text.
var htmlSegment = regexp.MustCompile(`(?:<[^>]*>)|(?:[^<]+)`)

// ApplyColorSwatches wraps #RRGGBB and #RGB literals found in the text
// segments of already-highlighted HTML in color-preview spans. The
// swatch pixel is driven by the --swatch-color custom property on a
// ::before pseudo element, so the preview itself never becomes part of
// the editable text. The transformation is purely additive.
func ApplyColorSwatches(highlighted string) string {
	var out strings.Builder
	for _, seg := range htmlSegment.FindAllString(highlighted, -1) {
		if strings.HasPrefix(seg, "<") {
			out.WriteString(seg)
			continue
		}
		out.WriteString(decorateHexColors(seg))
	}
	return out.String()
}

// decorateHexColors scans one text segment for hex color literals.
// A match must not follow an ampersand (HTML entities like &#039;) or
// a word character (word#abc), and must be exactly 3 or 6 hex digits.
func decorateHexColors(text string) string {
	var out strings.Builder
	last := 0

	for i := 0; i < len(text); i++ {
		if text[i] != '#' {
			continue
		}
		if i > 0 && isHexGuardChar(text[i-1]) {
			continue
		}

		run := 0
		for i+1+run < len(text) && isHexDigit(text[i+1+run]) {
			run++
		}
		if run != 3 && run != 6 {
			continue
		}

		literal := text[i : i+1+run]
		out.WriteString(text[last:i])
		out.WriteString(`<span class="color-preview" style="--swatch-color: `)
		out.WriteString(literal)
		out.WriteString(`;">`)
		out.WriteString(literal)
		out.WriteString(`</span>`)
		i += run
		last = i + 1
	}

	out.WriteString(text[last:])
	return out.String()
}

// isHexGuardChar mirrors the (?<![&\w]) exclusion.
func isHexGuardChar(c byte) bool {
	return c == '&' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
