// Package markup turns stored markdown into either vetted HTML (Renderer) or
// a plain-text excerpt (Strip, Excerpt).
package markup
