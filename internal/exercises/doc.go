// Package exercises loads the exercise catalog: a JSON manifest of entries,
// each listing source files that are fetched as raw text.
package exercises
