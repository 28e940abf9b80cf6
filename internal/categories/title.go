package categories

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Acronyms are rendered fully upper-cased.
var Acronyms = map[string]struct{}{
	"ia":  {},
	"ai":  {},
	"ml":  {},
	"nlp": {},
	"cv":  {},
	"dl":  {},
	"llm": {},
	"api": {},
}

// Spellings restores the accents slugs drop.
var Spellings = map[string]string{
	"ingenieria":   "Ingeniería",
	"programacion": "Programación",
	"vision":       "Visión",
	"analisis":     "Análisis",
	"estadistica":  "Estadística",
	"matematicas":  "Matemáticas",
	"introduccion": "Introducción",
	"computacion":  "Computación",
}

// SmallWords stay lower-case unless they open the title. The English
// loanwords keep the Spanish sentence case of titles like "Deep learning".
var SmallWords = map[string]struct{}{
	"learning": {},
	"science":  {},
	"de":   {},
	"del":  {},
	"la":   {},
	"las":  {},
	"los":  {},
	"el":   {},
	"y":    {},
	"e":    {},
	"o":    {},
	"en":   {},
	"para": {},
	"con":  {},
	"por":  {},
	"a":    {},
}

// TitleOptions overrides the lookup tables. Nil fields use the package
// tables.
type TitleOptions struct {
	Acronyms   map[string]struct{}
	Spellings  map[string]string
	SmallWords map[string]struct{}
	Separator  string
}

// TitleFromSlug derives a display title from slug using the package tables.
// "ingenieria-de-ia" becomes "Ingeniería de IA".
func TitleFromSlug(slug string) string {
	return TitleOptions{}.Title(slug)
}

// Title derives a display title from slug. Tokens are split on the
// separator ("-" by default) and empty tokens are skipped.
func (o TitleOptions) Title(slug string) string {
	acronyms := o.Acronyms
	if acronyms == nil {
		acronyms = Acronyms
	}
	spellings := o.Spellings
	if spellings == nil {
		spellings = Spellings
	}
	small := o.SmallWords
	if small == nil {
		small = SmallWords
	}
	sep := o.Separator
	if sep == "" {
		sep = "-"
	}

	words := make([]string, 0, 4)
	for _, raw := range strings.Split(strings.TrimSpace(slug), sep) {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}
		first := len(words) == 0

		if _, ok := acronyms[token]; ok {
			words = append(words, strings.ToUpper(token))
			continue
		}
		if spelled, ok := spellings[token]; ok {
			words = append(words, spelled)
			continue
		}
		if _, ok := small[token]; ok && !first {
			words = append(words, token)
			continue
		}
		words = append(words, capitalize(token))
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
