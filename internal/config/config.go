package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/video-quiz-bot/internal/domain/entities"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnsupportedLanguage         = errors.New("unsupported default language")
	ErrEmptyCatalog                = errors.New("quiz catalog is empty")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`              // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`                // Telegram API token loaded from environment
	DefaultLanguage  string `mapstructure:"default_language"` // interface language for new chats
	Quiz             Quiz   `mapstructure:"quiz"`             // question-set source and catalog
	HTTP             HTTP   `mapstructure:"http"`             // status endpoint
	DB               DB     `mapstructure:"database"`         // database configuration section
}

// Quiz configures where question sets come from and which ones are offered.
type Quiz struct {
	BaseURL      string                  `mapstructure:"base_url"`      // http(s) URL or local directory
	FetchTimeout time.Duration           `mapstructure:"fetch_timeout"` // per-request transport timeout
	Catalog      []entities.CatalogEntry `mapstructure:"catalog"`       // selection menu entries
}

// HTTP configures the optional status endpoint.
type HTTP struct {
	Addr           string   `mapstructure:"addr"` // empty disables the server
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a database is configured.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Pick up a local .env file if there is one.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("default_language", entities.LanguageHebrew)
	v.SetDefault("quiz.base_url", "assets/quizzes")
	v.SetDefault("quiz.fetch_timeout", "10s")
	v.SetDefault("quiz.catalog", defaultCatalog())
	v.SetDefault("http.addr", "")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("quiz.base_url", "QUIZ_BASE_URL")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")

	if cfg.DefaultLanguage != entities.LanguageHebrew && cfg.DefaultLanguage != entities.LanguageEnglish {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, cfg.DefaultLanguage)
	}

	if len(cfg.Quiz.Catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	return &cfg, nil
}

func defaultCatalog() []map[string]string {
	return []map[string]string{
		{"source_id": "test.json", "name_key": "sampleQuiz", "description_key": "sampleDescription"},
		{"source_id": "bigData.json", "name_key": "bigDataQuiz", "description_key": "bigDataDescription"},
		{"source_id": "NNNLP.json", "name_key": "nlpQuiz", "description_key": "nlpDescription"},
		{"source_id": "bigdata_exam_questions_80.json", "name_key": "bigDataExamQuiz", "description_key": "bigDataExamDescription"},
	}
}
