package runtimeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Store.BaseURL = "https://project.supabase.co"
	cfg.Store.APIKey = "anon-key"
	return cfg
}

func TestConfigValidate_AcceptsDefaultsWithCredentials(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_StoreChecks(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"missing base url", func(c *Config) { c.Store.BaseURL = " " }, ErrStoreBaseURLRequired},
		{"relative base url", func(c *Config) { c.Store.BaseURL = "project.supabase.co" }, ErrStoreBaseURLInvalid},
		{"ftp base url", func(c *Config) { c.Store.BaseURL = "ftp://project.supabase.co" }, ErrStoreBaseURLInvalid},
		{"missing key", func(c *Config) { c.Store.APIKey = "" }, ErrStoreAPIKeyRequired},
		{"missing manifest", func(c *Config) { c.Catalog.ManifestURL = "" }, ErrCatalogManifestRequired},
		{"zero posts limit", func(c *Config) { c.Content.PostsLimit = 0 }, ErrPageSizeInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_LoggingChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = validConfig()
	cfg.Features.Logger = false
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected logging checks skipped when disabled, got %v", err)
	}
}

func TestApplyEnvOverlaysValues(t *testing.T) {
	env := map[string]string{
		EnvStoreURL:     " https://example.supabase.co ",
		EnvStoreKey:     "secret",
		EnvCatalogURL:   "https://cdn.example.com/exercises.json",
		EnvLogEnabled:   "false",
		EnvExcerptRunes: "80",
		EnvLogLevel:     "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := applyEnv(DefaultConfig(), lookup)
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Store.BaseURL != "https://example.supabase.co" {
		t.Fatalf("expected trimmed base url, got %q", cfg.Store.BaseURL)
	}
	if cfg.Store.APIKey != "secret" {
		t.Fatalf("expected api key, got %q", cfg.Store.APIKey)
	}
	if cfg.Catalog.ManifestURL != "https://cdn.example.com/exercises.json" {
		t.Fatalf("unexpected manifest url %q", cfg.Catalog.ManifestURL)
	}
	if cfg.Features.Logger {
		t.Fatalf("expected logger feature disabled")
	}
	if cfg.Content.ExcerptLength != 80 {
		t.Fatalf("expected excerpt length 80, got %d", cfg.Content.ExcerptLength)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected blank env to keep default level, got %q", cfg.Logging.Level)
	}
}

func TestApplyEnvRejectsMalformedNumbers(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == EnvExcerptRunes {
			return "many", true
		}
		return "", false
	}
	if _, err := applyEnv(DefaultConfig(), lookup); err == nil {
		t.Fatal("expected error for malformed excerpt length")
	}
}

func TestFromEnvReadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.env")
	if err := os.WriteFile(path, []byte("SITE_CATALOG_URL=https://files.example.com/catalog.json\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv(EnvCatalogURL, "")
	os.Unsetenv(EnvCatalogURL)

	cfg, err := FromEnv(DefaultConfig(), path)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Catalog.ManifestURL != "https://files.example.com/catalog.json" {
		t.Fatalf("expected manifest url from dotenv, got %q", cfg.Catalog.ManifestURL)
	}
}

func TestFromEnvIgnoresMissingDotenv(t *testing.T) {
	if _, err := FromEnv(DefaultConfig(), filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing dotenv to be ignored, got %v", err)
	}
}
