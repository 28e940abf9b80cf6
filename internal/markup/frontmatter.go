package markup

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata block some posts carry ahead of the body.
type FrontMatter struct {
	Summary string         `yaml:"summary" json:"summary,omitempty"`
	Tags    []string       `yaml:"tags" json:"tags,omitempty"`
	Cover   string         `yaml:"cover" json:"cover,omitempty"`
	Custom  map[string]any `yaml:",inline" json:"custom,omitempty"`
}

// SplitFrontMatter separates a leading YAML, TOML or JSON front matter block
// from the markdown body. Input without a block, or with one that does not
// parse, is returned unchanged with zero metadata.
func SplitFrontMatter(markdown string) (FrontMatter, string) {
	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(markdown), &meta)
	if err != nil {
		return FrontMatter{}, markdown
	}
	meta.Summary = strings.TrimSpace(meta.Summary)
	return meta, string(body)
}

// Summary returns the front matter summary of document when it has one and
// an excerpt of the body otherwise. Front matter never reaches the excerpt.
func Summary(document string, max int) string {
	meta, body := SplitFrontMatter(document)
	if meta.Summary != "" {
		return meta.Summary
	}
	return Excerpt(body, max)
}

// StripDocument is Strip applied to the body of document.
func StripDocument(document string) string {
	_, body := SplitFrontMatter(document)
	return Strip(body)
}
