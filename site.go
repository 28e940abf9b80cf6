package site

import (
	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-content-site/internal/categories"
	"github.com/goliatone/go-content-site/internal/content"
	"github.com/goliatone/go-content-site/internal/di"
	"github.com/goliatone/go-content-site/internal/exercises"
	"github.com/goliatone/go-content-site/internal/filter"
	"github.com/goliatone/go-content-site/internal/gateway"
	sitehttp "github.com/goliatone/go-content-site/internal/http"
	"github.com/goliatone/go-content-site/internal/markup"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

// Post, Category and the other records are re-exported for consumers of the
// site package.
type (
	Post            = content.Post
	Category        = content.Category
	Subscriber      = content.Subscriber
	NewPost         = content.NewPost
	ContactMessage  = content.ContactMessage
	SubscribeResult = content.SubscribeResult
	CategoryPage    = categories.Page
	Exercise        = exercises.Entry
	ExerciseFile    = exercises.File
	ExerciseResult  = exercises.Result
	SafeHTML        = markup.SafeHTML
	StoreError      = gateway.StoreError
)

// ContentService exports the posts, categories and forms service.
type ContentService = *content.Service

// CategoryAggregator exports the category page builder.
type CategoryAggregator = *categories.Aggregator

// ExerciseLoader exports the exercise catalog loader.
type ExerciseLoader = *exercises.Loader

// Renderer exports the sanitising markdown renderer.
type Renderer = *markup.Renderer

// Option overrides container defaults.
type Option = di.Option

// WithLoggerProvider replaces the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// Module represents the top level site runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a site module using the provided configuration and optional
// overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the content service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Categories returns the category page builder.
func (m *Module) Categories() CategoryAggregator {
	return m.container.CategoryAggregator()
}

// Exercises returns the exercise catalog loader.
func (m *Module) Exercises() ExerciseLoader {
	return m.container.ExerciseLoader()
}

// Renderer returns the markdown renderer.
func (m *Module) Renderer() Renderer {
	return m.container.Renderer()
}

// Register mounts the site API on router.
func (m *Module) Register(router gin.IRouter) error {
	return m.container.SiteAPI().Register(router)
}

// Router returns a standalone gin engine serving the site API.
func (m *Module) Router() (*gin.Engine, error) {
	return sitehttp.NewRouter(m.container.SiteAPI())
}

// Strip removes markdown syntax and returns plain text.
func Strip(markdown string) string {
	return markup.Strip(markdown)
}

// Excerpt returns at most max runes of the plain text of markdown.
func Excerpt(markdown string, max int) string {
	return markup.Excerpt(markdown, max)
}

// Summary returns the front matter summary of a post, or an excerpt of its
// body without the front matter block.
func Summary(document string, max int) string {
	return markup.Summary(document, max)
}

// FilterPosts narrows posts by free-text term and category label.
func FilterPosts(posts []Post, term, category string) []Post {
	return filter.Items(posts, term, category)
}

// FilterExercises narrows catalog entries by free-text term.
func FilterExercises(entries []Exercise, term string) []Exercise {
	return filter.Items(entries, term, "")
}
