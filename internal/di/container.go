package di

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-content-site/internal/categories"
	"github.com/goliatone/go-content-site/internal/content"
	"github.com/goliatone/go-content-site/internal/exercises"
	"github.com/goliatone/go-content-site/internal/gateway"
	sitehttp "github.com/goliatone/go-content-site/internal/http"
	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/internal/logging/gologger"
	"github.com/goliatone/go-content-site/internal/markup"
	"github.com/goliatone/go-content-site/internal/runtimeconfig"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

// Container wires module dependencies from a validated config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	parser         interfaces.MarkdownParser
	sanitizer      interfaces.Sanitizer

	gatewayClient *gateway.Client
	contentSvc    *content.Service
	aggregator    *categories.Aggregator
	loader        *exercises.Loader
	renderer      *markup.Renderer
	siteAPI       *sitehttp.SiteAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithHTTPClient sets the transport shared by the store gateway and the
// catalog loader.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMarkdownParser replaces the goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithSanitizer replaces the UGC sanitiser.
func WithSanitizer(sanitizer interfaces.Sanitizer) Option {
	return func(c *Container) {
		if sanitizer != nil {
			c.sanitizer = sanitizer
		}
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, httpClient: http.DefaultClient}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureRenderer()
	c.configureServices()
	if err := c.configureCatalog(); err != nil {
		return nil, err
	}
	c.configureAPI()

	logging.ModuleLogger(c.loggerProvider, "").Debug("site container configured",
		"store", cfg.Store.BaseURL,
		"catalog", cfg.Catalog.ManifestURL,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger || c.Config.Logging.Provider == "noop" {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return fmt.Errorf("di: configure logger: %w", err)
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureRenderer() {
	opts := []markup.RendererOption{
		markup.WithRendererLogger(logging.ContentLogger(c.loggerProvider)),
	}
	if c.parser != nil {
		opts = append(opts, markup.WithParser(c.parser))
	}
	if c.sanitizer != nil {
		opts = append(opts, markup.WithSanitizer(c.sanitizer))
	}
	c.renderer = markup.NewRenderer(interfaces.ParseOptions{
		Extensions: c.Config.Markdown.Extensions,
		HardWraps:  c.Config.Markdown.HardWraps,
	}, opts...)
}

func (c *Container) configureServices() {
	store := c.Config.Store
	c.gatewayClient = gateway.New(gateway.Config{
		BaseURL:     store.BaseURL,
		APIKey:      store.APIKey,
		ReadSchema:  store.ReadSchema,
		WriteSchema: store.WriteSchema,
	},
		gateway.WithHTTPClient(c.httpClient),
		gateway.WithLogger(logging.GatewayLogger(c.loggerProvider)),
	)

	limits := c.Config.Content
	c.contentSvc = content.NewService(c.gatewayClient, content.Config{
		PostsLimit:         limits.PostsLimit,
		CategoryPostsLimit: limits.CategoryPostsLimit,
		SubscribersLimit:   limits.SubscribersLimit,
	}, content.WithLogger(logging.ContentLogger(c.loggerProvider)))

	c.aggregator = categories.NewAggregator(c.contentSvc,
		categories.WithLogger(logging.CategoriesLogger(c.loggerProvider)),
		categories.WithPostsLimit(limits.CategoryPostsLimit),
	)
}

func (c *Container) configureCatalog() error {
	loader, err := exercises.New(exercises.Config{
		ManifestURL:  c.Config.Catalog.ManifestURL,
		FilesBaseURL: c.Config.Catalog.FilesBaseURL,
	},
		exercises.WithHTTPClient(c.httpClient),
		exercises.WithLogger(logging.ExercisesLogger(c.loggerProvider)),
	)
	if err != nil {
		return fmt.Errorf("di: configure catalog: %w", err)
	}
	c.loader = loader
	return nil
}

func (c *Container) configureAPI() {
	c.siteAPI = sitehttp.NewSiteAPI(
		sitehttp.WithContentService(c.contentSvc),
		sitehttp.WithCategoryPages(c.aggregator),
		sitehttp.WithExerciseCatalog(c.loader),
		sitehttp.WithRenderer(c.renderer),
		sitehttp.WithExcerptLength(c.Config.Content.ExcerptLength),
		sitehttp.WithLogger(logging.HTTPLogger(c.loggerProvider)),
	)
}

// LoggerProvider returns the active provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Gateway returns the store client.
func (c *Container) Gateway() *gateway.Client {
	return c.gatewayClient
}

// ContentService returns the posts, categories and forms service.
func (c *Container) ContentService() *content.Service {
	return c.contentSvc
}

// CategoryAggregator returns the category page builder.
func (c *Container) CategoryAggregator() *categories.Aggregator {
	return c.aggregator
}

// ExerciseLoader returns the catalog loader.
func (c *Container) ExerciseLoader() *exercises.Loader {
	return c.loader
}

// Renderer returns the sanitising markdown renderer.
func (c *Container) Renderer() *markup.Renderer {
	return c.renderer
}

// SiteAPI returns the HTTP adapter.
func (c *Container) SiteAPI() *sitehttp.SiteAPI {
	return c.siteAPI
}
