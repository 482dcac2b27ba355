package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/hananasr/faqchat/pkg/errors"
)

// Service exposes the FAQ answering pipeline: detect the input language,
// translate to the pivot, search the corpus, translate the answer back.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	// AnswerText is the containment boundary used by interactive surfaces:
	// it always returns displayable text, never an error.
	AnswerText(ctx context.Context, question string) string
}

type service struct {
	cfg        Config
	detector   Detector
	translator Translator
	faq        Searcher
	logger     *slog.Logger
}

// NewService wires up the query pipeline.
func NewService(cfg Config, detector Detector, translator Translator, searcher Searcher, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.PivotLanguage) == "" {
		cfg.PivotLanguage = "en"
	}
	return &service{
		cfg:        cfg,
		detector:   detector,
		translator: translator,
		faq:        searcher,
		logger:     logger.With("component", "chat.service"),
	}
}

func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	started := time.Now()

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	detected := s.detector.Detect(question)
	effective := applyOverrides(question, detected)
	if effective != detected {
		s.logger.Debug("detected language overridden", "detected", detected, "effective", effective)
	}

	// An unknown language cannot be named to the translator, so the query
	// proceeds in the pivot language untranslated.
	translate := effective != s.cfg.PivotLanguage && effective != LanguageUnknown

	pivotQuestion := question
	if translate {
		translated, err := s.translator.Translate(ctx, question, effective, s.cfg.PivotLanguage)
		if err != nil {
			return Response{}, apperrors.Wrap("translate_error", "failed to translate question", err)
		}
		pivotQuestion = translated
	}

	result, err := s.faq.Search(ctx, pivotQuestion)
	if err != nil {
		return Response{}, err
	}

	answer := result.Answer
	if translate {
		translated, err := s.translator.Translate(ctx, answer, s.cfg.PivotLanguage, effective)
		if err != nil {
			return Response{}, apperrors.Wrap("translate_error", "failed to translate answer", err)
		}
		answer = translated
	}

	s.logger.Info("question answered",
		"language", effective,
		"translated", translate,
		"score", result.Score,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return Response{
		Question:        question,
		Answer:          answer,
		MatchedQuestion: result.MatchedQuestion,
		Score:           result.Score,
		Language:        effective,
		Translated:      translate,
		DurationMs:      time.Since(started).Milliseconds(),
	}, nil
}

func (s *service) AnswerText(ctx context.Context, question string) string {
	resp, err := s.Answer(ctx, Request{Question: question})
	if err != nil {
		s.logger.Warn("pipeline failed", "error", err)
		return "An error occurred: " + err.Error()
	}
	return resp.Answer
}
