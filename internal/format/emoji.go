package format

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// variationSelector asks for emoji presentation. It is dropped so glyphs
// keep the width of the surrounding text in boxed lines.
const variationSelector = "\ufe0f"

// Glyph returns the glyph for a shortcode given with or without colons.
func Glyph(code string) (string, bool) {
	return lookup(strings.Trim(code, ":"))
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	g, ok := emoji.CodeMap()[":"+name+":"]
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(g, variationSelector), true
}

// Emojize replaces every known ":code:" in s with its glyph. Unknown codes
// are kept verbatim, and their closing colon may open the next code, so
// "a:nope:warning:" still expands ":warning:".
func Emojize(s string) string {
	if strings.IndexByte(s, ':') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.IndexByte(s, ':')
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		closing := strings.IndexByte(s[open+1:], ':')
		if closing < 0 {
			b.WriteString(s)
			return b.String()
		}
		closing += open + 1

		if glyph, ok := lookup(s[open+1 : closing]); ok {
			b.WriteString(s[:open])
			b.WriteString(glyph)
			s = s[closing+1:]
			continue
		}
		b.WriteString(s[:closing])
		s = s[closing:]
	}
}
