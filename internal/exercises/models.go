package exercises

import "github.com/goliatone/go-content-site/internal/filter"

// Entry is one catalog exercise.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion,omitempty"`
	Files       []FileRef `json:"archivos"`
}

// FilterFields exposes the entry to the collection filter. The description
// stands in for the body.
func (e Entry) FilterFields() filter.Fields {
	return filter.Fields{Title: e.Title, Content: e.Description}
}

// FileRef points at one source file of an entry.
type FileRef struct {
	Name           string `json:"nombre"`
	Path           string `json:"ruta"`
	ExpectedOutput string `json:"salida_esperada,omitempty"`
}

// File is a fetched, render-ready source file.
type File struct {
	Name           string `json:"name"`
	Content        string `json:"content"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
}

// Result is what an exercise page renders. Files is empty, never nil, on
// success and nil on failure.
type Result struct {
	Exercise *Entry `json:"exercise,omitempty"`
	Files    []File `json:"files"`
	Error    string `json:"error,omitempty"`
}
