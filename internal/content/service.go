package content

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-content-site/internal/gateway"
	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

const textCodePostNotFound = "CONTENT_POST_NOT_FOUND"

// Config holds default list sizes. Zero values fall back to the defaults.
type Config struct {
	PostsLimit         int
	CategoryPostsLimit int
	SubscribersLimit   int
}

const (
	defaultPostsLimit         = 10
	defaultCategoryPostsLimit = 20
	defaultSubscribersLimit   = 5
)

// Service reads and writes site content through the gateway.
type Service struct {
	client *gateway.Client
	cfg    Config
	logger interfaces.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds a Service over client.
func NewService(client *gateway.Client, cfg Config, opts ...Option) *Service {
	if cfg.PostsLimit <= 0 {
		cfg.PostsLimit = defaultPostsLimit
	}
	if cfg.CategoryPostsLimit <= 0 {
		cfg.CategoryPostsLimit = defaultCategoryPostsLimit
	}
	if cfg.SubscribersLimit <= 0 {
		cfg.SubscribersLimit = defaultSubscribersLimit
	}
	s := &Service{client: client, cfg: cfg, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListPosts returns the newest posts first. limit <= 0 uses the configured
// default.
func (s *Service) ListPosts(ctx context.Context, limit int) ([]Post, error) {
	q := gateway.Select(PostFields...).
		Order("created_at", gateway.Desc).
		Limit(orDefault(limit, s.cfg.PostsLimit))
	env := gateway.Read[Post](ctx, s.client, gateway.ResourcePosts, q)
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// PostsByCategory returns the newest posts whose category_slug equals slug.
func (s *Service) PostsByCategory(ctx context.Context, slug string, limit int) ([]Post, error) {
	q := gateway.Select(PostFields...).
		Eq("category_slug", slug).
		Order("created_at", gateway.Desc).
		Limit(orDefault(limit, s.cfg.CategoryPostsLimit))
	env := gateway.Read[Post](ctx, s.client, gateway.ResourcePosts, q)
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// PostByID returns a single post or a not-found error.
func (s *Service) PostByID(ctx context.Context, id string) (*Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, goerrors.New("post id is required", goerrors.CategoryValidation).
			WithTextCode(textCodeInvalidInput)
	}
	env := gateway.ReadOne[Post](ctx, s.client, gateway.ResourcePosts, gateway.Select(PostFields...).Eq("id", id))
	if err := env.Err(); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, goerrors.New("post not found", goerrors.CategoryNotFound).
			WithTextCode(textCodePostNotFound)
	}
	return env.Data, nil
}

// CreatePost validates and inserts a post, returning the stored row.
func (s *Service) CreatePost(ctx context.Context, input NewPost) (*Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.CategorySlug = strings.TrimSpace(input.CategorySlug)
	input.AuthorID = strings.TrimSpace(input.AuthorID)
	if strings.TrimSpace(input.Content) == "" {
		input.Content = ""
	}
	if err := input.Validate(); err != nil {
		return nil, wrapValidationError(err, "invalid post")
	}

	env := gateway.Write[Post](ctx, s.client, gateway.ResourcePosts, input)
	if err := env.Err(); err != nil {
		s.logger.Warn("create post failed", "status", env.Status, "error", err)
		return nil, err
	}
	return env.Data, nil
}

// ListCategories returns every category ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	q := gateway.Select(CategoryFields...).Order("name", gateway.Asc)
	env := gateway.Read[Category](ctx, s.client, gateway.ResourceCategories, q)
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CategoryBySlug returns the category with slug, or nil when none exists.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	q := gateway.Select(CategoryFields...).Eq("slug", slug)
	env := gateway.ReadOne[Category](ctx, s.client, gateway.ResourceCategories, q)
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Subscribe adds email to the newsletter. An address already on the list is
// reported through SubscribeResult.AlreadySubscribed rather than an error.
func (s *Service) Subscribe(ctx context.Context, email string) (SubscribeResult, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return SubscribeResult{}, wrapValidationError(err, "invalid email")
	}

	env := gateway.Write[Subscriber](ctx, s.client, gateway.ResourceSubscribers, map[string]string{"email": email})
	if env.IsUniqueViolation() {
		s.logger.Info("newsletter address already subscribed")
		return SubscribeResult{AlreadySubscribed: true}, nil
	}
	if err := env.Err(); err != nil {
		s.logger.Warn("newsletter subscribe failed", "status", env.Status, "error", err)
		return SubscribeResult{}, err
	}

	sub := env.Data
	if sub == nil {
		sub = &Subscriber{Email: email}
	}
	return SubscribeResult{Subscriber: sub}, nil
}

// ListSubscribers returns the most recent subscribers.
func (s *Service) ListSubscribers(ctx context.Context, limit int) ([]Subscriber, error) {
	q := gateway.Select(SubscriberFields...).
		Order("created_at", gateway.Desc).
		Limit(orDefault(limit, s.cfg.SubscribersLimit))
	env := gateway.Read[Subscriber](ctx, s.client, gateway.ResourceSubscribers, q)
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// SendContactMessage stores a contact form submission without reading the
// row back.
func (s *Service) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = NormalizeEmail(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := msg.Validate(); err != nil {
		return wrapValidationError(err, "invalid contact message")
	}

	env := gateway.WriteMinimal(ctx, s.client, gateway.ResourceContact, msg)
	if err := env.Err(); err != nil {
		s.logger.Warn("contact message failed", "status", env.Status, "error", err)
		return err
	}
	return nil
}

func orDefault(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}
