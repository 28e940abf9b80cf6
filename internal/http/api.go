package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-content-site/internal/categories"
	"github.com/goliatone/go-content-site/internal/content"
	"github.com/goliatone/go-content-site/internal/exercises"
	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/internal/markup"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

const defaultExcerptLength = 160

// ContentService is the subset of content.Service the API serves.
type ContentService interface {
	ListPosts(ctx context.Context, limit int) ([]content.Post, error)
	PostByID(ctx context.Context, id string) (*content.Post, error)
	CreatePost(ctx context.Context, input content.NewPost) (*content.Post, error)
	Subscribe(ctx context.Context, email string) (content.SubscribeResult, error)
	SendContactMessage(ctx context.Context, msg content.ContactMessage) error
}

// CategoryPages builds category pages.
type CategoryPages interface {
	LoadPage(ctx context.Context, slug string) (categories.Page, error)
	ListCategories(ctx context.Context) ([]content.Category, error)
}

// ExerciseCatalog reads the exercise catalog.
type ExerciseCatalog interface {
	List(ctx context.Context) ([]exercises.Entry, error)
	Load(ctx context.Context, id string) (exercises.Result, error)
}

// MarkupRenderer turns post bodies into vetted HTML.
type MarkupRenderer interface {
	Render(markdown string) markup.SafeHTML
}

// SiteAPI registers the public site endpoints.
type SiteAPI struct {
	basePath      string
	content       ContentService
	categories    CategoryPages
	exercises     ExerciseCatalog
	renderer      MarkupRenderer
	excerptLength int
	logger        interfaces.Logger
}

// SiteOption mutates the SiteAPI configuration.
type SiteOption func(*SiteAPI)

// NewSiteAPI constructs a SiteAPI instance.
func NewSiteAPI(opts ...SiteOption) *SiteAPI {
	api := &SiteAPI{
		basePath:      "/api",
		excerptLength: defaultExcerptLength,
		logger:        logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) SiteOption {
	return func(api *SiteAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentService wires posts, newsletter and contact handlers.
func WithContentService(service ContentService) SiteOption {
	return func(api *SiteAPI) {
		api.content = service
	}
}

// WithCategoryPages wires the category handlers.
func WithCategoryPages(pages CategoryPages) SiteOption {
	return func(api *SiteAPI) {
		api.categories = pages
	}
}

// WithExerciseCatalog wires the exercise handlers.
func WithExerciseCatalog(catalog ExerciseCatalog) SiteOption {
	return func(api *SiteAPI) {
		api.exercises = catalog
	}
}

// WithRenderer sets the renderer used for post bodies and previews.
func WithRenderer(renderer MarkupRenderer) SiteOption {
	return func(api *SiteAPI) {
		api.renderer = renderer
	}
}

// WithExcerptLength caps post excerpts. Non-positive values are ignored.
func WithExcerptLength(n int) SiteOption {
	return func(api *SiteAPI) {
		if n > 0 {
			api.excerptLength = n
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger interfaces.Logger) SiteOption {
	return func(api *SiteAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts the routes on router. Route groups whose service is not
// wired are skipped.
func (api *SiteAPI) Register(router gin.IRouter) error {
	if router == nil {
		return fmt.Errorf("http: router is required")
	}
	if api == nil {
		return fmt.Errorf("http: site api is nil")
	}
	if api.renderer == nil {
		api.renderer = markup.NewRenderer(markup.DefaultParseOptions())
	}

	group := router.Group(joinPath(api.basePath, ""))
	group.Use(requestID())

	if api.content != nil {
		group.GET("/posts", api.listPosts)
		group.GET("/posts/:id", api.getPost)
		group.POST("/posts", api.createPost)
		group.POST("/newsletter", api.subscribe)
		group.POST("/contact", api.contact)
	}
	if api.categories != nil {
		group.GET("/categories", api.listCategories)
		group.GET("/categories/:slug", api.categoryPage)
	}
	if api.exercises != nil {
		group.GET("/exercises", api.listExercises)
		group.GET("/exercises/:id", api.getExercise)
	}
	group.POST("/render", api.render)

	return nil
}

// NewRouter builds a gin engine with recovery, access logging and the site
// routes.
func NewRouter(api *SiteAPI) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery(), accessLog(api.logger))
	if err := api.Register(router); err != nil {
		return nil, err
	}
	return router, nil
}
