package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/aliskhannn/video-quiz-bot/internal/repository"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	dir := t.TempDir()
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")

	cfg, err := load(newViper(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TelegramAPIToken != "token" {
		t.Errorf("token = %q", cfg.TelegramAPIToken)
	}
	if cfg.DefaultLanguage != "he" {
		t.Errorf("default language = %q", cfg.DefaultLanguage)
	}
	if cfg.Quiz.FetchTimeout != 10*time.Second {
		t.Errorf("fetch timeout = %v", cfg.Quiz.FetchTimeout)
	}
	if len(cfg.Quiz.Catalog) != 4 || cfg.Quiz.Catalog[0].SourceID != "test.json" {
		t.Errorf("catalog = %+v", cfg.Quiz.Catalog)
	}
	if cfg.DB.Enabled() {
		t.Errorf("database enabled without url")
	}
	if _, err := cfg.DB.DSN(); !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Errorf("dsn err = %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/quiz")

	cfg, err := load(newViper(t, `
default_language: en
quiz:
  base_url: https://example.com/quizzes
  fetch_timeout: 3s
  catalog:
    - source_id: one.json
      name_key: sampleQuiz
      description_key: sampleDescription
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DefaultLanguage != "en" || cfg.Quiz.BaseURL != "https://example.com/quizzes" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Quiz.FetchTimeout != 3*time.Second {
		t.Errorf("fetch timeout = %v", cfg.Quiz.FetchTimeout)
	}
	if len(cfg.Quiz.Catalog) != 1 || cfg.Quiz.Catalog[0].NameKey != "sampleQuiz" {
		t.Errorf("catalog = %+v", cfg.Quiz.Catalog)
	}
	if !cfg.DB.Enabled() {
		t.Errorf("database not enabled")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
		yaml  string
		want  error
	}{
		{name: "missing token", token: "", want: ErrMissingEnvironmentVariables},
		{name: "unsupported language", token: "t", yaml: "default_language: fr\n", want: ErrUnsupportedLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_API_TOKEN", tt.token)
			if _, err := load(newViper(t, tt.yaml)); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCatalogSourcesShip(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	repo, err := repository.NewQuestionSetRepository(nil, filepath.Join("..", "..", "assets", "quizzes"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	defaults, err := load(newViper(t, ""))
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join("..", "..", "config"))
	shipped, err := load(v)
	if err != nil {
		t.Fatalf("load config.yaml: %v", err)
	}
	if len(shipped.Quiz.Catalog) != len(defaults.Quiz.Catalog) {
		t.Fatalf("config.yaml lists %d quizzes, defaults %d", len(shipped.Quiz.Catalog), len(defaults.Quiz.Catalog))
	}

	for _, e := range append(defaults.Quiz.Catalog, shipped.Quiz.Catalog...) {
		if _, err := repo.Fetch(context.Background(), e.SourceID); err != nil {
			t.Errorf("%s: %v", e.SourceID, err)
		}
	}
}
