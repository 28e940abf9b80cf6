package filter

import (
	"reflect"
	"testing"
)

type article struct {
	ID    string
	Title string
	Body  string
	Slug  string
}

func (a article) FilterFields() Fields {
	return Fields{Title: a.Title, Content: a.Body, CategorySlug: a.Slug}
}

type note struct {
	Heading string
	Topic   string
}

func (n *note) FilterFields() Fields {
	return Fields{Title: n.Heading, Category: n.Topic}
}

func sampleArticles() []article {
	return []article{
		{ID: "1", Title: "Redes neuronales", Body: "Capas y pesos", Slug: "deep-learning"},
		{ID: "2", Title: "Prompting", Body: "Cómo hablar con LLMs", Slug: "ingenieria-de-ia"},
		{ID: "3", Title: "Listas en Python", Body: "append y extend", Slug: ""},
	}
}

func TestItemsEmptyInputs(t *testing.T) {
	if got := Items[article](nil, "x", "y"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice for nil input, got %#v", got)
	}
	if got := Items([]article{}, "", ""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice for empty input, got %#v", got)
	}
}

func TestItemsIdentityOnEmptyConstraints(t *testing.T) {
	items := sampleArticles()
	got := Items(items, "", "  ")
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected identity, got %#v", got)
	}
}

func TestItemsTermMatching(t *testing.T) {
	cases := []struct {
		term string
		want []string
	}{
		{"REDES", []string{"1"}},
		{"llms", []string{"2"}},
		{"learning", []string{"1"}},
		{"python", []string{"3"}},
		{"nothing-here", nil},
	}
	for _, tc := range cases {
		got := ids(Items(sampleArticles(), tc.term, ""))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("term %q: expected %v, got %v", tc.term, tc.want, got)
		}
	}
}

func TestItemsCategoryIsExactMatch(t *testing.T) {
	if got := ids(Items(sampleArticles(), "", "Deep-Learning")); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("expected exact case-insensitive match, got %v", got)
	}
	if got := ids(Items(sampleArticles(), "", "deep")); got != nil {
		t.Fatalf("expected partial category to match nothing, got %v", got)
	}
	if got := ids(Items(sampleArticles(), "pesos", "ingenieria-de-ia")); got != nil {
		t.Fatalf("expected both axes to be required, got %v", got)
	}
}

func TestItemsFallsBackToCategoryName(t *testing.T) {
	notes := []*note{{Heading: "Uno", Topic: "Python"}, {Heading: "Dos", Topic: "Go"}}
	got := Items(notes, "", "python")
	if len(got) != 1 || got[0] != notes[0] {
		t.Fatalf("expected pointer to first note, got %#v", got)
	}
}

func TestItemsIsIdempotentAndPure(t *testing.T) {
	items := sampleArticles()
	snapshot := append([]article(nil), items...)

	once := Items(items, "a", "")
	twice := Items(once, "a", "")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotence, got %v then %v", ids(once), ids(twice))
	}
	if !reflect.DeepEqual(items, snapshot) {
		t.Fatalf("input mutated")
	}
}

func ids(items []article) []string {
	var out []string
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}
