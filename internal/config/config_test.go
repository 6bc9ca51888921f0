package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes the working directory for the duration of the test.
// testing.T.Chdir exists only in Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("unexpected HTTP defaults: %+v", cfg.HTTP)
	}
	if cfg.Corpus.Extension != ".md" {
		t.Errorf("extension = %q", cfg.Corpus.Extension)
	}
	if cfg.Corpus.Workers != 8 {
		t.Errorf("workers = %d", cfg.Corpus.Workers)
	}
	if cfg.Search.MaxResults != 20 {
		t.Errorf("max_results = %d", cfg.Search.MaxResults)
	}
	if cfg.Search.SnippetLength != 200 {
		t.Errorf("snippet_length = %d", cfg.Search.SnippetLength)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Corpus: CorpusConfig{Extension: ".markdown", Workers: 2},
		Search: SearchConfig{MaxResults: 5, SnippetLength: 80},
	}
	cfg.ApplyDefaults()

	if cfg.Corpus.Extension != ".markdown" || cfg.Corpus.Workers != 2 {
		t.Errorf("corpus overridden: %+v", cfg.Corpus)
	}
	if cfg.Search.MaxResults != 5 || cfg.Search.SnippetLength != 80 {
		t.Errorf("search overridden: %+v", cfg.Search)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Corpus: CorpusConfig{Root: "./docs", Extension: ".md"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"port too large", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"missing root", func(c *Config) { c.Corpus.Root = "" }, "corpus.root"},
		{"extension without dot", func(c *Config) { c.Corpus.Extension = "md" }, "corpus.extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DOCSEARCH_TEST_ROOT", "/srv/docs")

	got := expandEnvVars([]byte("root: ${DOCSEARCH_TEST_ROOT}"))
	if string(got) != "root: /srv/docs" {
		t.Errorf("got %q", got)
	}
}

func TestExpandEnvVars_Default(t *testing.T) {
	got := expandEnvVars([]byte("root: ${DOCSEARCH_UNSET_VAR:-./docs}"))
	if string(got) != "root: ./docs" {
		t.Errorf("got %q", got)
	}
}

func TestExpandEnvVars_EmptyWithoutDefault(t *testing.T) {
	got := expandEnvVars([]byte("root: ${DOCSEARCH_UNSET_VAR}"))
	if string(got) != "root: " {
		t.Errorf("got %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "http:\n  port: 9090\ncorpus:\n  root: ${DOCSEARCH_TEST_CORPUS:-/srv/docs}\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Corpus.Root != "/srv/docs" {
		t.Errorf("root = %q", cfg.Corpus.Root)
	}
	// Defaults fill the rest.
	if cfg.Corpus.Extension != ".md" || cfg.Search.MaxResults != 20 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load("nonexistent"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want %q", got, "local")
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want %q", got, "prod")
	}
}
