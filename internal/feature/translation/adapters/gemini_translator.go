// Package adapters はtranslationフィーチャーの外部サービス実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"skillroots/internal/feature/translation/domain/entity"
	"skillroots/internal/feature/translation/usecase"
	"skillroots/internal/shared/ratelimiter"
)

// ContentGenerator is the subset of genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ErrEmptyResponse is returned when the model produced no text or no known key.
var ErrEmptyResponse = errors.New("no translated text returned from model")

const promptTemplate = `You are an expert translator for a web application.
Translate the values in the following JSON object to %s.
Do NOT translate the keys.
Keep the structure exactly the same.

Original JSON:
%s
`

// GeminiTranslator translates the UI table with Gemini in JSON mode.
type GeminiTranslator struct {
	gen     ContentGenerator
	model   string
	limiter ratelimiter.Limiter
}

var _ usecase.Translator = (*GeminiTranslator)(nil)

// NewGeminiTranslator creates a GeminiTranslator. limiter may be nil.
func NewGeminiTranslator(gen ContentGenerator, model string, limiter ratelimiter.Limiter) *GeminiTranslator {
	return &GeminiTranslator{gen: gen, model: model, limiter: limiter}
}

// Translate asks the model for the translated table and merges the known
// string keys onto source.
func (g *GeminiTranslator) Translate(ctx context.Context, lang entity.Language, source entity.UITexts) (entity.UITexts, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return source, err
		}
	}

	original, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return source, err
	}

	resp, err := g.gen.GenerateContent(ctx, g.model,
		genai.Text(fmt.Sprintf(promptTemplate, lang.Name, original)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return source, fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return source, ErrEmptyResponse
	}

	merged, n, err := entity.Merge(source, []byte(text))
	if err != nil {
		return source, err
	}
	if n == 0 {
		return source, fmt.Errorf("%w: no known keys in reply", ErrEmptyResponse)
	}
	return merged, nil
}
