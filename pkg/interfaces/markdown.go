package interfaces

// ParseOptions tunes markdown rendering. Names stay flat so they can be filled
// from configuration or CLI flags.
type ParseOptions struct {
	// Extensions lists goldmark extensions by name (gfm, table, strikethrough,
	// linkify, tasklist, footnote). Empty selects the GFM set.
	Extensions []string
	// HardWraps renders single newlines as <br>.
	HardWraps bool
}

// MarkdownParser converts markdown bytes into unsanitised HTML.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
}

// Sanitizer strips executable constructs from rendered HTML.
type Sanitizer interface {
	Sanitize(html string) string
}
