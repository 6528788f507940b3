package format

import (
	"path/filepath"
	"strings"
)

// Preprocessor normalizes a raw message before it is rendered.
type Preprocessor struct {
	// Separator is the host path separator rewritten to "/". Zero means the
	// separator of the running OS.
	Separator rune
}

// Process rewrites path separators then expands emoji shortcodes.
func (p Preprocessor) Process(raw string) string {
	sep := p.Separator
	if sep == 0 {
		sep = filepath.Separator
	}
	if sep != '/' {
		raw = strings.ReplaceAll(raw, string(sep), "/")
	}
	return Emojize(raw)
}
