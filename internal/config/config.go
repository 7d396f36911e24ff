package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":5000"`
	IsProd     bool   `env:"IS_PROD" envDefault:"false"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"debug"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	UploadFolder     string        `env:"UPLOAD_FOLDER" envDefault:"uploads"`
	MaxContentLength int64         `env:"MAX_CONTENT_LENGTH" envDefault:"16777216"`
	MinContentLength int           `env:"MIN_CONTENT_LENGTH" envDefault:"10"`
	MaxDocumentChars int           `env:"MAX_DOCUMENT_CHARS" envDefault:"0"`
	PdfPageTimeout   time.Duration `env:"PDF_PAGE_TIMEOUT" envDefault:"10s"`

	LLMProvider      string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	GeminiModel      string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-exp"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIModel      string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	ModelTemperature float32       `env:"MODEL_TEMPERATURE" envDefault:"0.7"`
	SummarizeTimeout time.Duration `env:"SUMMARIZE_TIMEOUT" envDefault:"120s"`

	CacheEnabled  bool          `env:"CACHE_ENABLED" envDefault:"false"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`

	RateLimitPerSecond float64  `env:"RATE_LIMIT_PER_SECOND" envDefault:"2"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" envDefault:"5"`
	CorsOrigins        []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"150s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		ListenAddr:         ServerListenAddr,
		LogLevel:           "debug",
		LogMaxSizeMB:       50,
		LogMaxBackups:      3,
		UploadFolder:       UploadFolder,
		MaxContentLength:   MaxContentLength,
		MinContentLength:   MinContentLength,
		PdfPageTimeout:     PdfPageTimeout,
		LLMProvider:        ProviderGemini,
		GeminiModel:        GeminiModelName,
		OpenAIModel:        OpenAIModelName,
		ModelTemperature:   ModelTemperature,
		SummarizeTimeout:   SummarizeTimeout,
		CacheEnabled:       false,
		CacheTTL:           RedisSummaryStoreTTL,
		RedisAddr:          RedisAddr,
		RedisDB:            RedisSummaryStore,
		RateLimitPerSecond: RATE_LIMIT_PER_SECOND,
		RateLimitBurst:     BURST_RATE_LIMIT_SECOND,
		CorsOrigins:        []string{"*"},
		ReadTimeout:        ReadTimeout,
		WriteTimeout:       WriteTimeout,
		IdleTimeout:        IdleTimeout,
		ShutdownTimeout:    ShutdownContextTimeout,
	}
}

func (c *Config) Validate() error {
	if c.MinContentLength < 1 {
		return fmt.Errorf("MIN_CONTENT_LENGTH must be at least 1, got %d", c.MinContentLength)
	}
	if c.MaxContentLength <= 0 {
		return fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", c.MaxContentLength)
	}
	if c.MaxDocumentChars < 0 {
		return fmt.Errorf("MAX_DOCUMENT_CHARS must not be negative, got %d", c.MaxDocumentChars)
	}
	c.LLMProvider = strings.ToLower(strings.TrimSpace(c.LLMProvider))
	switch c.LLMProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	if c.SummarizeTimeout <= 0 {
		return errors.New("SUMMARIZE_TIMEOUT must be positive")
	}
	if c.UploadFolder == "" {
		return errors.New("UPLOAD_FOLDER must not be empty")
	}
	return nil
}

// APIKey returns the key of the configured provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}
