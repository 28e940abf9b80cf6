package markup

import (
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

// SafeHTML is HTML that has been through the renderer's sanitiser. Only a
// Renderer can produce a non-empty value, so templates may emit it unescaped.
type SafeHTML struct {
	html string
}

// String returns the vetted markup.
func (s SafeHTML) String() string {
	return s.html
}

// HTML returns the markup typed for html/template.
func (s SafeHTML) HTML() template.HTML {
	return template.HTML(s.html)
}

// IsZero reports whether there is nothing to render.
func (s SafeHTML) IsZero() bool {
	return s.html == ""
}

// MarshalJSON encodes the markup as a JSON string.
func (s SafeHTML) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.html)
}

// Renderer converts markdown into SafeHTML. Output depends only on the input,
// so results can be memoised by source text.
type Renderer struct {
	parser    interfaces.MarkdownParser
	sanitizer interfaces.Sanitizer
	logger    interfaces.Logger
}

// RendererOption customises a Renderer.
type RendererOption func(*Renderer)

// WithParser replaces the goldmark parser.
func WithParser(parser interfaces.MarkdownParser) RendererOption {
	return func(r *Renderer) {
		if parser != nil {
			r.parser = parser
		}
	}
}

// WithSanitizer replaces the default UGC policy.
func WithSanitizer(sanitizer interfaces.Sanitizer) RendererOption {
	return func(r *Renderer) {
		if sanitizer != nil {
			r.sanitizer = sanitizer
		}
	}
}

// WithRendererLogger sets the logger used when parsing fails.
func WithRendererLogger(logger interfaces.Logger) RendererOption {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// DefaultParseOptions enables GFM with line-break-sensitive paragraphs.
func DefaultParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{HardWraps: true}
}

// NewRenderer builds a renderer with GFM, hard wraps per opts and the UGC
// sanitiser.
func NewRenderer(opts interfaces.ParseOptions, options ...RendererOption) *Renderer {
	r := &Renderer{
		parser:    NewGoldmarkParser(opts),
		sanitizer: NewUGCSanitizer(),
		logger:    logging.NoOp(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render converts markdown to sanitised HTML. A leading front matter block is
// not rendered. Empty input renders empty. If the parser fails the source is
// shown escaped instead.
func (r *Renderer) Render(markdown string) SafeHTML {
	if markdown == "" {
		return SafeHTML{}
	}
	_, body := SplitFrontMatter(markdown)
	raw, err := r.parser.Parse([]byte(body))
	if err != nil {
		r.logger.Warn("markdown render failed, falling back to escaped text", "error", err)
		return SafeHTML{html: "<p>" + template.HTMLEscapeString(markdown) + "</p>"}
	}
	return SafeHTML{html: r.sanitizer.Sanitize(string(raw))}
}
