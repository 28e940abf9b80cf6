package site

import "github.com/goliatone/go-content-site/internal/runtimeconfig"

var (
	ErrStoreBaseURLRequired    = runtimeconfig.ErrStoreBaseURLRequired
	ErrStoreBaseURLInvalid     = runtimeconfig.ErrStoreBaseURLInvalid
	ErrStoreAPIKeyRequired     = runtimeconfig.ErrStoreAPIKeyRequired
	ErrCatalogManifestRequired = runtimeconfig.ErrCatalogManifestRequired
	ErrPageSizeInvalid         = runtimeconfig.ErrPageSizeInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	StoreConfig    = runtimeconfig.StoreConfig
	CatalogConfig  = runtimeconfig.CatalogConfig
	ContentConfig  = runtimeconfig.ContentConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	HTTPConfig     = runtimeconfig.HTTPConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig overlays dotenv files and the process environment onto the
// defaults.
func LoadConfig(files ...string) (Config, error) {
	return runtimeconfig.FromEnv(runtimeconfig.DefaultConfig(), files...)
}
