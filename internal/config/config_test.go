package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_CatalogRequiresAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Corpus.Catalog.Enabled = true

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
	expected := "database.addrs is required when corpus.catalog is enabled"
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}

	cfg.Database.Addrs = []string{"localhost:6379"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_AddrsOptionalWithoutCatalog(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "memcached" }},
		{"negative rps", func(c *Config) { c.HTTP.RateLimit.RPS = -1 }},
		{"default above max page", func(c *Config) { c.Search.DefaultPageSize = 200 }},
		{"max page above hard cap", func(c *Config) { c.Search.MaxPageSize = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.HTTP.RateLimit.RPS != 0 || cfg.HTTP.RateLimit.Burst != 0 {
		t.Errorf("rate limit should stay disabled, got %+v", cfg.HTTP.RateLimit)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("expected Driver=valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Search.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Search.LargeResultThreshold != 1000 {
		t.Errorf("expected LargeResultThreshold=1000, got %d", cfg.Search.LargeResultThreshold)
	}
	if cfg.Search.AutocompleteLimit != 10 {
		t.Errorf("expected AutocompleteLimit=10, got %d", cfg.Search.AutocompleteLimit)
	}
	if cfg.Search.SuggestionLimit != 5 {
		t.Errorf("expected SuggestionLimit=5, got %d", cfg.Search.SuggestionLimit)
	}
	if cfg.Corpus.Concurrency != 4 {
		t.Errorf("expected Concurrency=4, got %d", cfg.Corpus.Concurrency)
	}
	if cfg.Corpus.Catalog.KeyPrefix != "cardquery:" {
		t.Errorf("expected KeyPrefix='cardquery:', got %q", cfg.Corpus.Catalog.KeyPrefix)
	}
	if !cfg.Corpus.ShouldLoadOnStart() {
		t.Error("expected load_on_start to default to true")
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	off := false
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5, RateLimit: RateLimitConfig{RPS: 50, Burst: 7}},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Search:   SearchConfig{DefaultPageSize: 50, MaxPageSize: 200, CacheSize: 64},
		Corpus:   CorpusConfig{Catalog: CatalogConfig{KeyPrefix: "custom:"}, LoadOnStart: &off},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.RateLimit.Burst != 7 {
		t.Errorf("expected Burst=7, got %d", cfg.HTTP.RateLimit.Burst)
	}
	if cfg.Search.MaxPageSize != 200 {
		t.Errorf("expected MaxPageSize=200, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Search.CacheSize != 64 {
		t.Errorf("expected CacheSize=64, got %d", cfg.Search.CacheSize)
	}
	if cfg.Corpus.Catalog.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Corpus.Catalog.KeyPrefix)
	}
	if cfg.Corpus.ShouldLoadOnStart() {
		t.Error("explicit load_on_start=false must be kept")
	}
}

func TestApplyDefaults_BurstFollowsRPS(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{RateLimit: RateLimitConfig{RPS: 0.5}}}
	cfg.ApplyDefaults()
	if cfg.HTTP.RateLimit.Burst != 1 {
		t.Errorf("expected Burst=1 for fractional rps, got %d", cfg.HTTP.RateLimit.Burst)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CARDQUERY_TEST_PORT", "9090")

	tests := []struct {
		in, want string
	}{
		{"port: ${CARDQUERY_TEST_PORT}", "port: 9090"},
		{"port: ${CARDQUERY_TEST_PORT:-1}", "port: 9090"},
		{"port: ${CARDQUERY_TEST_UNSET:-8080}", "port: 8080"},
		{"port: ${CARDQUERY_TEST_UNSET}", "port: "},
	}
	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o750); err != nil {
		t.Fatal(err)
	}
	body := []byte(`
http:
  port: ${CARDQUERY_TEST_LOAD_PORT:-8181}
search:
  cache_size: 128
corpus:
  files: [cards.yaml]
`)
	if err := os.WriteFile(filepath.Join(dir, "config", "unit.yaml"), body, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("unit")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 8181 {
		t.Errorf("port = %d, want 8181", cfg.HTTP.Port)
	}
	if cfg.Search.CacheSize != 128 {
		t.Errorf("cache_size = %d, want 128", cfg.Search.CacheSize)
	}
	if len(cfg.Corpus.Files) != 1 || cfg.Corpus.Files[0] != "cards.yaml" {
		t.Errorf("files = %v", cfg.Corpus.Files)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("defaults not applied, max_page_size = %d", cfg.Search.MaxPageSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("definitely-missing-env"); err == nil {
		t.Fatal("expected error for missing config")
	}
}
