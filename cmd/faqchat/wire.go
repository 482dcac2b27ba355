//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/hananasr/faqchat/internal/bootstrap"
	"github.com/hananasr/faqchat/internal/domain/chat"
	"github.com/hananasr/faqchat/internal/domain/faq"
	"github.com/hananasr/faqchat/internal/infra/config"
	httpiface "github.com/hananasr/faqchat/internal/interface/http"
	"github.com/hananasr/faqchat/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatConfig,
		provideFAQConfig,
		provideDetector,
		provideSource,
		provideTranslator,
		provideEmbedder,
		provideIndex,
		provideVectorCache,
		provideSearcher,
		faq.NewService,
		chat.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeChatService() (chat.Service, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatConfig,
		provideFAQConfig,
		provideDetector,
		provideSource,
		provideTranslator,
		provideEmbedder,
		provideIndex,
		provideVectorCache,
		provideSearcher,
		faq.NewService,
		chat.NewService,
	)
	return nil, nil
}
