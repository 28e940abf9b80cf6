package content

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-content-site/internal/gateway"
)

type stubResponse struct {
	status int
	body   string
}

type fakeStore struct {
	mu        sync.Mutex
	responses map[string]stubResponse
	requests  []*http.Request
	bodies    []string
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(context.Background()))
	f.bodies = append(f.bodies, string(payload))
	resp, ok := f.responses[r.Method+" "+strings.TrimPrefix(r.URL.Path, "/rest/v1/")]
	f.mu.Unlock()
	if !ok {
		resp = stubResponse{status: http.StatusNotFound, body: `{"message":"no stub"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeStore) last() (*http.Request, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func newTestService(t *testing.T, responses map[string]stubResponse) (*Service, *fakeStore) {
	t.Helper()
	store := &fakeStore{responses: responses}
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)
	client := gateway.New(gateway.Config{BaseURL: srv.URL, APIKey: "anon"})
	return NewService(client, Config{}), store
}

func TestListPostsUsesDefaultLimitAndOrder(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"GET posts": {http.StatusOK, `[{"id":"1","title":"Uno","content":"**a**","category_slug":"ia","created_at":"2024-05-01T10:00:00.123456+00:00"}]`},
	})

	posts, err := svc.ListPosts(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].CategorySlug != "ia" || posts[0].CreatedAt == nil {
		t.Fatalf("unexpected posts %+v", posts)
	}

	req, _ := store.last()
	q := req.URL.Query()
	if q.Get("limit") != "10" || q.Get("order") != "created_at.desc.nullslast" {
		t.Fatalf("unexpected query %v", q)
	}
	if q.Get("select") != strings.Join(PostFields, ",") {
		t.Fatalf("unexpected projection %q", q.Get("select"))
	}
}

func TestPostsByCategoryFiltersBySlug(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"GET posts": {http.StatusOK, `[]`},
	})

	posts, err := svc.PostsByCategory(context.Background(), "deep-learning", 0)
	if err != nil {
		t.Fatalf("PostsByCategory: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty non-nil posts, got %#v", posts)
	}
	req, _ := store.last()
	if got := req.URL.Query().Get("category_slug"); got != "eq.deep-learning" {
		t.Fatalf("expected slug filter, got %q", got)
	}
	if got := req.URL.Query().Get("limit"); got != "20" {
		t.Fatalf("expected limit 20, got %q", got)
	}
}

func TestListCategoriesOrdersByName(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"GET categories": {http.StatusOK, `[{"id":"c1","name":"Deep learning","slug":"deep-learning"}]`},
	})
	cats, err := svc.ListCategories(context.Background())
	if err != nil || len(cats) != 1 {
		t.Fatalf("ListCategories: %v %+v", err, cats)
	}
	req, _ := store.last()
	if got := req.URL.Query().Get("order"); got != "name.asc.nullslast" {
		t.Fatalf("unexpected order %q", got)
	}
}

func TestPostByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t, map[string]stubResponse{
		"GET posts": {http.StatusOK, `[]`},
	})
	_, err := svc.PostByID(context.Background(), "missing")
	if !goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreatePostValidatesBeforeSending(t *testing.T) {
	svc, store := newTestService(t, nil)

	cases := []NewPost{
		{Title: " ", Content: "body"},
		{Title: "Ok", Content: "   "},
		{Title: "Ok", Content: "body", CategorySlug: "Not A Slug!"},
		{Title: "Ok", Content: "body", AuthorID: "user-1"},
	}
	for _, input := range cases {
		if _, err := svc.CreatePost(context.Background(), input); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
	if store.calls() != 0 {
		t.Fatalf("expected no store calls, got %d", store.calls())
	}
}

func TestCreatePostReturnsStoredRow(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"POST posts": {http.StatusCreated, `[{"id":"p1","title":"Nuevo","content":"x","category_slug":"ia"}]`},
	})

	post, err := svc.CreatePost(context.Background(), NewPost{
		Title:        "  Nuevo ",
		Content:      "x",
		CategorySlug: "ia",
		AuthorID:     "9b2f4a1e-3c55-4c1b-9d3e-1f2a3b4c5d6e",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID != "p1" {
		t.Fatalf("unexpected post %+v", post)
	}
	req, body := store.last()
	if req.Header.Get("Prefer") != "return=representation" {
		t.Fatalf("expected representation preference")
	}
	if !strings.Contains(body, `"title":"Nuevo"`) || !strings.Contains(body, `"user_id":"9b2f4a1e`) {
		t.Fatalf("unexpected payload %s", body)
	}
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"POST newsletter_subscribers": {http.StatusCreated, `{"id":"s1","email":"ana@example.com"}`},
	})

	res, err := svc.Subscribe(context.Background(), "  Ana@Example.COM ")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if res.AlreadySubscribed || res.Subscriber == nil || res.Subscriber.ID != "s1" {
		t.Fatalf("unexpected result %+v", res)
	}
	_, body := store.last()
	if body != `{"email":"ana@example.com"}` {
		t.Fatalf("unexpected payload %s", body)
	}
}

func TestSubscribeDuplicateIsNotAnError(t *testing.T) {
	svc, _ := newTestService(t, map[string]stubResponse{
		"POST newsletter_subscribers": {http.StatusConflict, `{"message":"duplicate key value violates unique constraint","code":"23505"}`},
	})

	res, err := svc.Subscribe(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.AlreadySubscribed || res.Subscriber != nil {
		t.Fatalf("expected already subscribed, got %+v", res)
	}
}

func TestSubscribeOtherFailuresSurface(t *testing.T) {
	svc, _ := newTestService(t, map[string]stubResponse{
		"POST newsletter_subscribers": {http.StatusForbidden, `{"message":"new row violates row-level security policy","code":"42501"}`},
	})

	_, err := svc.Subscribe(context.Background(), "ana@example.com")
	var storeErr *gateway.StoreError
	if !errors.As(err, &storeErr) || storeErr.Status != http.StatusForbidden {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc, store := newTestService(t, nil)
	for _, email := range []string{"", "   ", "no-at-sign", "a@b"} {
		if _, err := svc.Subscribe(context.Background(), email); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
			t.Fatalf("expected validation error for %q, got %v", email, err)
		}
	}
	if store.calls() != 0 {
		t.Fatalf("expected no store calls")
	}
}

func TestListSubscribersDefaultLimit(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"GET newsletter_subscribers": {http.StatusOK, `[{"id":"s1","email":"a@b.co"}]`},
	})
	subs, err := svc.ListSubscribers(context.Background(), 0)
	if err != nil || len(subs) != 1 {
		t.Fatalf("ListSubscribers: %v %+v", err, subs)
	}
	req, _ := store.last()
	if req.URL.Query().Get("limit") != "5" {
		t.Fatalf("expected limit 5, got %q", req.URL.Query().Get("limit"))
	}
}

func TestSendContactMessageWritesMinimal(t *testing.T) {
	svc, store := newTestService(t, map[string]stubResponse{
		"POST contact_messages": {http.StatusCreated, ``},
	})

	err := svc.SendContactMessage(context.Background(), ContactMessage{Name: " Ana ", Email: "ANA@example.com", Message: "Hola"})
	if err != nil {
		t.Fatalf("SendContactMessage: %v", err)
	}
	req, body := store.last()
	if req.Header.Get("Prefer") != "return=minimal" {
		t.Fatalf("expected minimal preference, got %q", req.Header.Get("Prefer"))
	}
	if !strings.Contains(body, `"email":"ana@example.com"`) || !strings.Contains(body, `"name":"Ana"`) {
		t.Fatalf("unexpected payload %s", body)
	}
}

func TestSendContactMessageValidates(t *testing.T) {
	svc, store := newTestService(t, nil)
	err := svc.SendContactMessage(context.Background(), ContactMessage{Name: "Ana", Email: "bad", Message: ""})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.calls() != 0 {
		t.Fatalf("expected no store calls")
	}
}

func TestPostFilterFields(t *testing.T) {
	f := Post{Title: "T", Content: "C", CategorySlug: "s"}.FilterFields()
	if f.Label() != "s" || f.Title != "T" || f.Content != "C" {
		t.Fatalf("unexpected fields %+v", f)
	}
}
