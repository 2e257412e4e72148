// Package adapters はinsightsフィーチャーの外部サービス実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"google.golang.org/genai"

	"skillroots/internal/feature/insights/domain/entity"
	"skillroots/internal/feature/insights/usecase"
	"skillroots/internal/shared/ratelimiter"
)

// ContentGenerator is the subset of genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ErrEmptyAnswer is returned when the model produced no text.
var ErrEmptyAnswer = errors.New("no answer returned from model")

// GeminiSearcher answers questions with Gemini grounded by Google Search.
type GeminiSearcher struct {
	gen     ContentGenerator
	model   string
	limiter ratelimiter.Limiter
}

var _ usecase.Searcher = (*GeminiSearcher)(nil)

// NewGeminiSearcher creates a GeminiSearcher. limiter may be nil.
func NewGeminiSearcher(gen ContentGenerator, model string, limiter ratelimiter.Limiter) *GeminiSearcher {
	return &GeminiSearcher{gen: gen, model: model, limiter: limiter}
}

// Search sends query as-is and collects the web sources from the grounding metadata.
func (g *GeminiSearcher) Search(ctx context.Context, query string) (*entity.Insight, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := g.gen.GenerateContent(ctx, g.model, genai.Text(query), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	answer := resp.Text()
	if answer == "" {
		return nil, ErrEmptyAnswer
	}
	return &entity.Insight{Answer: answer, Sources: sources(resp)}, nil
}

// sources returns the web chunks of the first candidate that carry a URI.
func sources(resp *genai.GenerateContentResponse) []entity.Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return []entity.Source{}
	}
	return lo.FilterMap(resp.Candidates[0].GroundingMetadata.GroundingChunks, func(c *genai.GroundingChunk, _ int) (entity.Source, bool) {
		if c == nil || c.Web == nil || c.Web.URI == "" {
			return entity.Source{}, false
		}
		return entity.Source{URI: c.Web.URI, Title: c.Web.Title}, true
	})
}
