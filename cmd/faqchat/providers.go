package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/hananasr/faqchat/internal/domain/chat"
	"github.com/hananasr/faqchat/internal/domain/faq"
	"github.com/hananasr/faqchat/internal/infra/config"
	"github.com/hananasr/faqchat/internal/infra/embedcache"
	"github.com/hananasr/faqchat/internal/infra/embedder"
	"github.com/hananasr/faqchat/internal/infra/faqindex"
	"github.com/hananasr/faqchat/internal/infra/faqsource"
	"github.com/hananasr/faqchat/internal/infra/langid"
	"github.com/hananasr/faqchat/internal/infra/llm/chatgpt"
	"github.com/hananasr/faqchat/internal/infra/translate/libre"
	"github.com/hananasr/faqchat/internal/infra/translate/llmtranslate"
)

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		PivotLanguage: cfg.FAQ.PivotLanguage,
	}
}

func provideFAQConfig(cfg *config.Config) faq.Config {
	// The namespace keys cached vectors per embedding space.
	return faq.Config{
		CacheNamespace: cfg.FAQ.EmbedderType + ":" + cfg.LLM.EmbeddingModel,
	}
}

func provideDetector() chat.Detector {
	return langid.New()
}

func provideSource(cfg *config.Config) faq.Source {
	return faqsource.NewCSVSource(cfg.FAQ.DataPath)
}

func provideTranslator(cfg *config.Config) (chat.Translator, error) {
	switch cfg.Translator.Provider {
	case "llm":
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("llm translator: %w", err)
		}
		return llmtranslate.New(client, cfg.LLM.Model), nil
	default:
		return libre.NewClient(cfg.Translator.BaseURL, cfg.Translator.APIKey), nil
	}
}

func provideEmbedder(cfg *config.Config, logger *slog.Logger) (faq.Embedder, error) {
	if cfg.FAQ.EmbedderType == "deterministic" {
		return embedder.NewDeterministicEmbedder(0), nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("openai embedder: %w", err)
	}
	return embedder.NewChatGPTEmbedder(client, cfg.LLM.EmbeddingModel, logger), nil
}

func provideIndex(cfg *config.Config, logger *slog.Logger) faq.Index {
	fallback := faqindex.NewMemoryIndex()
	dsn := strings.TrimSpace(cfg.FAQ.Postgres.DSN)
	if dsn == "" {
		logger.Info("faq postgres dsn not set, using memory index")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory index", "error", err)
		return fallback
	}
	if cfg.FAQ.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.FAQ.Postgres.MaxConns
	}
	if cfg.FAQ.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.FAQ.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory index", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory index", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("faq postgres index enabled")
	return faqindex.NewPostgresIndex(pool)
}

func provideVectorCache(cfg *config.Config, logger *slog.Logger) faq.VectorCache {
	if cfg.FAQ.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return embedcache.NewMemoryCache()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return embedcache.NewMemoryCache()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("faq valkey vector cache enabled", "addr", cfg.FAQ.Valkey.Addr)
			return embedcache.NewValkeyCache(client, "faqchat:embed")
		}
	}
	return embedcache.NewMemoryCache()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.FAQ.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.FAQ.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.FAQ.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideSearcher(svc faq.Service) chat.Searcher {
	return svc
}
