package markup

import (
	"strings"
	"testing"
)

func TestSplitFrontMatterYAML(t *testing.T) {
	src := "---\nsummary: Resumen corto\ntags: [ia, ml]\nlevel: intro\n---\n# Cuerpo\n"
	meta, body := SplitFrontMatter(src)
	if meta.Summary != "Resumen corto" {
		t.Fatalf("unexpected summary %q", meta.Summary)
	}
	if len(meta.Tags) != 2 || meta.Tags[1] != "ml" {
		t.Fatalf("unexpected tags %v", meta.Tags)
	}
	if meta.Custom["level"] != "intro" {
		t.Fatalf("expected custom key preserved, got %v", meta.Custom)
	}
	if strings.Contains(body, "summary") || !strings.Contains(body, "# Cuerpo") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSplitFrontMatterWithoutBlock(t *testing.T) {
	src := "# Solo cuerpo\n\ntexto"
	meta, body := SplitFrontMatter(src)
	if body != src || meta.Summary != "" || len(meta.Tags) != 0 {
		t.Fatalf("expected input unchanged, got %+v %q", meta, body)
	}
}

func TestRenderSkipsFrontMatter(t *testing.T) {
	got := newTestRenderer().Render("---\nsummary: oculto\n---\n**visible**").String()
	if strings.Contains(got, "oculto") || !strings.Contains(got, "<strong>visible</strong>") {
		t.Fatalf("unexpected html %q", got)
	}
}

func TestSummaryIgnoresFrontMatterText(t *testing.T) {
	doc := "---\ntitle: x\ntags: [ia]\n---\n# Título\n\nCuerpo del post"
	if got := Summary(doc, 100); got != "Título Cuerpo del post" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := StripDocument(doc); got != "Título Cuerpo del post" {
		t.Fatalf("unexpected plain text %q", got)
	}
	if got := Summary("---\nsummary: Corto\n---\nlargo", 100); got != "Corto" {
		t.Fatalf("expected front matter summary, got %q", got)
	}
	if got := StripDocument("---\ntitle: x\n---\n"); got != "" {
		t.Fatalf("expected empty body, got %q", got)
	}
}
