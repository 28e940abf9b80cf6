package markup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	fencedCodePattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern = regexp.MustCompile("`[^`]*`")
	imagePattern      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	symbolPattern     = regexp.MustCompile(`[#>*_~\-]+`)
	spacePattern      = regexp.MustCompile(`\s{2,}`)
)

// Strip removes markdown syntax and returns plain text. Fenced and inline
// code and images are dropped, links keep their label. The result is not
// HTML-escaped.
func Strip(markdown string) string {
	if markdown == "" {
		return ""
	}
	out := fencedCodePattern.ReplaceAllString(markdown, "")
	out = inlineCodePattern.ReplaceAllString(out, "")
	out = imagePattern.ReplaceAllString(out, "")
	out = linkPattern.ReplaceAllString(out, "$1")
	out = symbolPattern.ReplaceAllString(out, " ")
	out = spacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Excerpt strips markdown and shortens the text to at most max runes, cutting
// at the last word break and appending an ellipsis. max <= 0 disables the
// cut.
func Excerpt(markdown string, max int) string {
	text := Strip(markdown)
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}

	runes := []rune(text)[:max]
	cut := len(runes)
	for i := len(runes) - 1; i > 0; i-- {
		if unicode.IsSpace(runes[i]) {
			cut = i
			break
		}
	}
	return strings.TrimRightFunc(string(runes[:cut]), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + "…"
}
