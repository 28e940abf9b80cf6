package exercises

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

const (
	MessageMissingID          = "missing exercise id"
	MessageNotFound           = "exercise not found"
	MessageContentUnavailable = "could not load exercise content"
	MessageCatalogUnavailable = "could not load exercise catalog"

	TextCodeMissingID          = "EXERCISE_ID_MISSING"
	TextCodeNotFound           = "EXERCISE_NOT_FOUND"
	TextCodeContentUnavailable = "EXERCISE_CONTENT_UNAVAILABLE"
	TextCodeCatalogUnavailable = "EXERCISE_CATALOG_UNAVAILABLE"
)

// Config locates the catalog. File paths resolve against FilesBaseURL, which
// defaults to ManifestURL.
type Config struct {
	ManifestURL  string
	FilesBaseURL string
}

// Loader reads the catalog manifest and exercise files over HTTP.
type Loader struct {
	manifest *url.URL
	files    *url.URL
	http     *http.Client
	schema   *jsonschema.Schema
	logger   interfaces.Logger
}

// Option customises a Loader.
type Option func(*Loader)

// WithHTTPClient overrides the transport. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *Loader) {
		if hc != nil {
			l.http = hc
		}
	}
}

// WithLogger sets the loader logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New builds a Loader. It fails when the manifest URL does not parse.
func New(cfg Config, opts ...Option) (*Loader, error) {
	manifest, err := url.Parse(strings.TrimSpace(cfg.ManifestURL))
	if err != nil || manifest.String() == "" {
		return nil, fmt.Errorf("exercises: invalid manifest url %q", cfg.ManifestURL)
	}
	files := manifest
	if base := strings.TrimSpace(cfg.FilesBaseURL); base != "" {
		if files, err = url.Parse(base); err != nil {
			return nil, fmt.Errorf("exercises: invalid files base url %q: %w", base, err)
		}
	}
	schema, err := compileCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("exercises: compile catalog schema: %w", err)
	}

	l := &Loader{
		manifest: manifest,
		files:    files,
		http:     http.DefaultClient,
		schema:   schema,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l, nil
}

// List returns every catalog entry in manifest order.
func (l *Loader) List(ctx context.Context) ([]Entry, error) {
	entries, err := l.fetchCatalog(ctx)
	if err != nil {
		logging.FromContext(ctx, l.logger).Error("exercise catalog failed", "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, MessageCatalogUnavailable).
			WithTextCode(TextCodeCatalogUnavailable)
	}
	return entries, nil
}

// Load resolves the entry with the given id and fetches all of its files
// concurrently. Any failure fails the whole load and Files stays nil. The id
// must match an entry exactly; a blank id is rejected without any request.
func (l *Loader) Load(ctx context.Context, id string) (Result, error) {
	if strings.TrimSpace(id) == "" {
		return Result{Error: MessageMissingID}, goerrors.New(MessageMissingID, goerrors.CategoryValidation).
			WithTextCode(TextCodeMissingID)
	}

	logger := logging.FromContext(ctx, l.logger)

	entries, err := l.fetchCatalog(ctx)
	if err != nil {
		logger.Error("exercise catalog failed", "id", id, "error", err)
		return Result{Error: MessageContentUnavailable}, l.unavailable(err)
	}

	entry, ok := find(entries, id)
	if !ok {
		return Result{Error: MessageNotFound}, goerrors.New(MessageNotFound, goerrors.CategoryNotFound).
			WithTextCode(TextCodeNotFound)
	}

	if len(entry.Files) == 0 {
		return Result{Exercise: &entry, Files: []File{}}, nil
	}

	files := make([]File, len(entry.Files))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range entry.Files {
		g.Go(func() error {
			text, err := l.fetchText(gctx, ref.Path)
			if err != nil {
				return fmt.Errorf("%s: %w", ref.Path, err)
			}
			files[i] = File{Name: ref.Name, Content: text, ExpectedOutput: ref.ExpectedOutput}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("exercise file failed", "id", id, "error", err)
		return Result{Exercise: &entry, Error: MessageContentUnavailable}, l.unavailable(err)
	}

	logger.Debug("exercise loaded", "id", id, "files", len(files))
	return Result{Exercise: &entry, Files: files}, nil
}

func (l *Loader) unavailable(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, MessageContentUnavailable).
		WithTextCode(TextCodeContentUnavailable)
}

func (l *Loader) fetchCatalog(ctx context.Context) ([]Entry, error) {
	body, err := l.get(ctx, l.manifest.String())
	if err != nil {
		return nil, err
	}
	return decodeManifest(l.schema, body)
}

func (l *Loader) fetchText(ctx context.Context, path string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	body, err := l.get(ctx, l.files.ResolveReference(ref).String())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (l *Loader) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GET %s: %s", target, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func find(entries []Entry, id string) (Entry, bool) {
	for _, entry := range entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}
