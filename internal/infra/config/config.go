package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	LLM        LLMConfig        `yaml:"llm"`
	Translator TranslatorConfig `yaml:"translator"`
	FAQ        FAQConfig        `yaml:"faq"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains OpenAI-compatible API settings used for the llm
// translator and the embeddings backend.
type LLMConfig struct {
	APIKey         string  `yaml:"apiKey"`
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	EmbeddingModel string  `yaml:"embeddingModel"`
	Temperature    float32 `yaml:"temperature"`
}

// TranslatorConfig selects and configures the machine translation backend.
type TranslatorConfig struct {
	// Provider is either "libre" (LibreTranslate HTTP API) or "llm"
	// (chat-completion backed translation).
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"baseUrl"`
	APIKey   string `yaml:"apiKey"`
}

// FAQConfig controls corpus loading and similarity search.
type FAQConfig struct {
	DataPath      string         `yaml:"dataPath"`
	PivotLanguage string         `yaml:"pivotLanguage"`
	EmbedderType  string         `yaml:"embedderType"` // "openai" or "deterministic"
	Postgres      PostgresConfig `yaml:"postgres"`
	Valkey        ValkeyConfig   `yaml:"valkey"`
}

// PostgresConfig contains DSN and pooling settings for the pgvector index.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the embedding cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("TRANSLATOR_PROVIDER"); v != "" {
		cfg.Translator.Provider = v
	}
	if v := os.Getenv("TRANSLATOR_BASE_URL"); v != "" {
		cfg.Translator.BaseURL = v
	}
	if v := os.Getenv("TRANSLATOR_API_KEY"); v != "" {
		cfg.Translator.APIKey = v
	}
	if v := os.Getenv("FAQ_DATA_PATH"); v != "" {
		cfg.FAQ.DataPath = v
	}
	if v := os.Getenv("FAQ_PIVOT_LANGUAGE"); v != "" {
		cfg.FAQ.PivotLanguage = v
	}
	if v := os.Getenv("FAQ_EMBEDDER_TYPE"); v != "" {
		cfg.FAQ.EmbedderType = v
	}
	if v := os.Getenv("FAQ_POSTGRES_DSN"); v != "" {
		cfg.FAQ.Postgres.DSN = v
	}
	if v := os.Getenv("FAQ_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_VALKEY_ENABLED"); v != "" {
		cfg.FAQ.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("FAQ_VALKEY_ADDR"); v != "" {
		cfg.FAQ.Valkey.Addr = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0.2,
		},
		Translator: TranslatorConfig{
			Provider: "libre",
			BaseURL:  "https://libretranslate.com",
		},
		FAQ: FAQConfig{
			DataPath:      "data/faqs.csv",
			PivotLanguage: "en",
			EmbedderType:  "openai",
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.FAQ.DataPath) == "" {
		return errors.New("faq.dataPath cannot be empty")
	}
	if strings.TrimSpace(c.FAQ.PivotLanguage) == "" {
		return errors.New("faq.pivotLanguage cannot be empty")
	}
	switch c.FAQ.EmbedderType {
	case "openai", "deterministic":
	default:
		return fmt.Errorf("faq.embedderType %q is not supported", c.FAQ.EmbedderType)
	}
	switch c.Translator.Provider {
	case "libre", "llm":
	default:
		return fmt.Errorf("translator.provider %q is not supported", c.Translator.Provider)
	}
	if c.Translator.Provider == "libre" && strings.TrimSpace(c.Translator.BaseURL) == "" {
		return errors.New("translator.baseUrl cannot be empty for the libre provider")
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	if c.FAQ.Valkey.Enabled && strings.TrimSpace(c.FAQ.Valkey.Addr) == "" {
		return errors.New("faq.valkey.addr cannot be empty when the cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
