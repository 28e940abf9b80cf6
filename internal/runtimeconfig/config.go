package runtimeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrStoreBaseURLRequired = errors.New("site config: store base url is required")
var ErrStoreBaseURLInvalid = errors.New("site config: store base url must be an absolute http(s) url")
var ErrStoreAPIKeyRequired = errors.New("site config: store api key is required")
var ErrCatalogManifestRequired = errors.New("site config: catalog manifest url is required")
var ErrPageSizeInvalid = errors.New("site config: page sizes must be positive")
var ErrLoggingProviderRequired = errors.New("site config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("site config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// Environment variable names read by FromEnv. The store pair keeps the names
// used by the deployment scripts.
const (
	EnvStoreURL     = "SUPABASE_URL"
	EnvStoreKey     = "SUPABASE_KEY"
	EnvReadSchema   = "SITE_STORE_READ_SCHEMA"
	EnvWriteSchema  = "SITE_STORE_WRITE_SCHEMA"
	EnvCatalogURL   = "SITE_CATALOG_URL"
	EnvCatalogFiles = "SITE_CATALOG_FILES_URL"
	EnvHTTPAddr     = "SITE_HTTP_ADDR"
	EnvLogLevel     = "SITE_LOG_LEVEL"
	EnvLogFormat    = "SITE_LOG_FORMAT"
	EnvLogEnabled   = "SITE_LOG_ENABLED"
	EnvExcerptRunes = "SITE_EXCERPT_LENGTH"
)

// Config aggregates everything needed to construct the site module.
type Config struct {
	Store    StoreConfig
	Catalog  CatalogConfig
	Content  ContentConfig
	Markdown MarkdownConfig
	HTTP     HTTPConfig
	Features Features
	Logging  LoggingConfig
}

// StoreConfig points the resource gateway at the PostgREST endpoint.
type StoreConfig struct {
	BaseURL     string
	APIKey      string
	ReadSchema  string
	WriteSchema string
}

// CatalogConfig locates the exercise manifest. File paths listed in the
// manifest resolve against FilesBaseURL, or the manifest URL when blank.
type CatalogConfig struct {
	ManifestURL  string
	FilesBaseURL string
}

// ContentConfig holds list sizes used by the content service.
type ContentConfig struct {
	PostsLimit         int
	CategoryPostsLimit int
	SubscribersLimit   int
	ExcerptLength      int
}

// MarkdownConfig mirrors interfaces.ParseOptions.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
}

// HTTPConfig configures the JSON adapter.
type HTTPConfig struct {
	Addr string
}

// Features toggles optional wiring.
type Features struct {
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns defaults matching the published site. Store
// credentials are left blank and must come from the environment.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			ReadSchema:  "public",
			WriteSchema: "public",
		},
		Catalog: CatalogConfig{
			ManifestURL: "http://localhost:8080/assets/python-exercises/exercises.json",
		},
		Content: ContentConfig{
			PostsLimit:         10,
			CategoryPostsLimit: 20,
			SubscribersLimit:   5,
			ExcerptLength:      160,
		},
		Markdown: MarkdownConfig{
			HardWraps: true,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Features: Features{
			Logger: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
		},
	}
}

// FromEnv loads the optional dotenv files (".env" when none are given) and
// overlays any set environment variables onto cfg. Missing dotenv files are
// not an error.
func FromEnv(cfg Config, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("site config: load dotenv: %w", err)
	}
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	str := func(key string, target *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*target = strings.TrimSpace(v)
		}
	}

	str(EnvStoreURL, &cfg.Store.BaseURL)
	str(EnvStoreKey, &cfg.Store.APIKey)
	str(EnvReadSchema, &cfg.Store.ReadSchema)
	str(EnvWriteSchema, &cfg.Store.WriteSchema)
	str(EnvCatalogURL, &cfg.Catalog.ManifestURL)
	str(EnvCatalogFiles, &cfg.Catalog.FilesBaseURL)
	str(EnvHTTPAddr, &cfg.HTTP.Addr)
	str(EnvLogLevel, &cfg.Logging.Level)
	str(EnvLogFormat, &cfg.Logging.Format)

	if v, ok := lookup(EnvLogEnabled); ok && strings.TrimSpace(v) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("site config: %s: %w", EnvLogEnabled, err)
		}
		cfg.Features.Logger = enabled
	}
	if v, ok := lookup(EnvExcerptRunes); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("site config: %s: %w", EnvExcerptRunes, err)
		}
		cfg.Content.ExcerptLength = n
	}
	return cfg, nil
}

// Validate performs consistency checks before the module is wired.
func (cfg Config) Validate() error {
	base := strings.TrimSpace(cfg.Store.BaseURL)
	if base == "" {
		return ErrStoreBaseURLRequired
	}
	if u, err := url.Parse(base); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %s", ErrStoreBaseURLInvalid, base)
	}
	if strings.TrimSpace(cfg.Store.APIKey) == "" {
		return ErrStoreAPIKeyRequired
	}
	if strings.TrimSpace(cfg.Catalog.ManifestURL) == "" {
		return ErrCatalogManifestRequired
	}
	if cfg.Content.PostsLimit <= 0 {
		return fmt.Errorf("%w: posts", ErrPageSizeInvalid)
	}
	if cfg.Content.CategoryPostsLimit <= 0 {
		return fmt.Errorf("%w: category posts", ErrPageSizeInvalid)
	}
	if cfg.Content.SubscribersLimit <= 0 {
		return fmt.Errorf("%w: subscribers", ErrPageSizeInvalid)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
