// Package filter narrows already-fetched collections by free-text term and
// category without changing the element type.
package filter

import "strings"

// Fields are the only values the filter reads from an item.
type Fields struct {
	Title        string
	Content      string
	Category     string
	CategorySlug string
}

// Label is the category used for matching: the slug when present, otherwise
// the category name.
func (f Fields) Label() string {
	if f.CategorySlug != "" {
		return f.CategorySlug
	}
	return f.Category
}

// Filterable is implemented by any record the filter can inspect.
type Filterable interface {
	FilterFields() Fields
}

// Items returns the elements of items matching both term and category, in
// their original order. term is a case-insensitive substring of the title,
// content or category label; category must equal the label ignoring case.
// A blank term or category does not constrain. items is never modified and a
// nil or empty input yields an empty slice.
func Items[T Filterable](items []T, term, category string) []T {
	if len(items) == 0 {
		return []T{}
	}

	t := strings.ToLower(strings.TrimSpace(term))
	c := strings.ToLower(strings.TrimSpace(category))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item.FilterFields(), t, c) {
			out = append(out, item)
		}
	}
	return out
}

func matches(f Fields, term, category string) bool {
	label := strings.ToLower(f.Label())

	if category != "" && label != category {
		return false
	}
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.Title), term) ||
		strings.Contains(strings.ToLower(f.Content), term) ||
		strings.Contains(label, term)
}
