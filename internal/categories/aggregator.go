package categories

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-content-site/internal/content"
	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

const (
	MessageNotSpecified = "category not specified"
	MessagePostsFailed  = "could not load category posts"

	TextCodeNotSpecified = "CATEGORY_NOT_SPECIFIED"
)

// Store is the subset of the content service the aggregator reads from.
type Store interface {
	CategoryBySlug(ctx context.Context, slug string) (*content.Category, error)
	PostsByCategory(ctx context.Context, slug string, limit int) ([]content.Post, error)
	ListCategories(ctx context.Context) ([]content.Category, error)
}

// Page is everything a category page renders. Error is the user-facing
// message when the page could not be built.
type Page struct {
	Slug     string            `json:"slug"`
	Title    string            `json:"title"`
	Category *content.Category `json:"category,omitempty"`
	Posts    []content.Post    `json:"posts"`
	Error    string            `json:"error,omitempty"`
}

// Aggregator builds category pages from two concurrent store reads.
type Aggregator struct {
	store  Store
	titles TitleOptions
	limit  int
	logger interfaces.Logger
}

// Option customises an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the aggregator logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTitleOptions replaces the slug-to-title tables.
func WithTitleOptions(opts TitleOptions) Option {
	return func(a *Aggregator) {
		a.titles = opts
	}
}

// WithPostsLimit caps posts per page. Zero leaves the store default.
func WithPostsLimit(limit int) Option {
	return func(a *Aggregator) {
		a.limit = limit
	}
}

// NewAggregator builds an Aggregator over store.
func NewAggregator(store Store, opts ...Option) *Aggregator {
	a := &Aggregator{store: store, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// LoadPage fetches the category row and its posts concurrently and waits for
// both. A posts failure fails the page. A metadata failure or missing row only
// costs the stored name: the title is derived from the slug instead.
func (a *Aggregator) LoadPage(ctx context.Context, slug string) (Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		page := Page{Title: a.titles.Title(slug), Posts: []content.Post{}, Error: MessageNotSpecified}
		return page, goerrors.New(MessageNotSpecified, goerrors.CategoryValidation).
			WithTextCode(TextCodeNotSpecified)
	}

	logger := logging.FromContext(ctx, a.logger)

	var (
		category *content.Category
		metaErr  error
		posts    []content.Post
		postsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		category, metaErr = a.store.CategoryBySlug(ctx, slug)
		return nil
	})
	g.Go(func() error {
		posts, postsErr = a.store.PostsByCategory(ctx, slug, a.limit)
		return nil
	})
	_ = g.Wait()

	page := Page{Slug: slug, Posts: []content.Post{}}

	if metaErr != nil {
		logger.Warn("category metadata unavailable, deriving title", "slug", slug, "error", metaErr)
	} else if category != nil {
		page.Category = category
	}
	page.Title = a.resolveTitle(slug, page.Category)

	if postsErr != nil {
		page.Error = userMessage(postsErr, MessagePostsFailed)
		logger.Error("category posts failed", "slug", slug, "error", postsErr)
		return page, postsErr
	}
	if posts != nil {
		page.Posts = posts
	}
	return page, nil
}

// ListCategories returns every category ordered by name.
func (a *Aggregator) ListCategories(ctx context.Context) ([]content.Category, error) {
	return a.store.ListCategories(ctx)
}

func (a *Aggregator) resolveTitle(slug string, category *content.Category) string {
	if category != nil {
		if name := strings.TrimSpace(category.Name); name != "" {
			return name
		}
	}
	return a.titles.Title(slug)
}

func userMessage(err error, fallback string) string {
	if text := strings.TrimSpace(err.Error()); text != "" {
		return text
	}
	return fallback
}
