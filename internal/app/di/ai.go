package di

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	insightsadapters "skillroots/internal/feature/insights/adapters"
	insightsusecase "skillroots/internal/feature/insights/usecase"
	translationadapters "skillroots/internal/feature/translation/adapters"
	translationusecase "skillroots/internal/feature/translation/usecase"
	"skillroots/internal/platform/cache"
	"skillroots/internal/platform/config"
	"skillroots/internal/platform/gemini"
	"skillroots/internal/shared/ratelimiter"
)

// AI holds the Gemini-backed adapters. Both are nil when GEMINI_API_KEY is not set.
type AI struct {
	Translator translationusecase.Translator
	Searcher   insightsusecase.Searcher
}

// NewAI builds the Gemini adapters sharing one client and one rate limiter.
// A missing API key disables AI features instead of failing startup.
func NewAI(ctx context.Context, cfg *config.Config, rdb *redis.Client) (*AI, error) {
	client, err := gemini.NewClient(ctx, cfg.Gemini)
	if errors.Is(err, gemini.ErrDisabled) {
		slog.Warn("GEMINI_API_KEY is not set; translation falls back to English and insights are disabled")
		return &AI{}, nil
	}
	if err != nil {
		return nil, err
	}
	return newAI(client.Models, gemini.Model(cfg.Gemini), gemini.NewLimiter(cfg.Gemini), rdb, cfg.TranslationCacheTTL), nil
}

func newAI(models translationadapters.ContentGenerator, model string, limiter ratelimiter.Limiter, rdb *redis.Client, ttl time.Duration) *AI {
	cached := cache.NewCachingTranslator(rdb, ttl, translationadapters.NewGeminiTranslator(models, model, limiter), "translations")
	return &AI{
		Translator: cached,
		Searcher:   insightsadapters.NewGeminiSearcher(models, model, limiter),
	}
}
