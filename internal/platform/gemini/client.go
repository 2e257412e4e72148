// Package gemini はGoogle Gemini APIクライアントの生成を提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"skillroots/internal/platform/config"
	platformhttp "skillroots/internal/platform/http"
	"skillroots/internal/shared/ratelimiter"
)

// DefaultModel はGemini APIのデフォルトモデルです。
const DefaultModel = "gemini-2.5-flash"

// ErrDisabled はAPIキーが未設定の場合に返されます。
var ErrDisabled = errors.New("gemini is disabled: GEMINI_API_KEY is not set")

// NewClient はAPIキーでGemini APIクライアントを生成します。
// HTTPクライアントにはタイムアウト付きのものを使用します。
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: platformhttp.NewHTTPClient(cfg.Timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// Model は設定されたモデル名を返します。空の場合はDefaultModelです。
func Model(cfg config.GeminiConfig) string {
	if cfg.Model == "" {
		return DefaultModel
	}
	return cfg.Model
}

// NewLimiter はGemini呼び出しで共有するレートリミッターを生成します。
func NewLimiter(cfg config.GeminiConfig) *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(cfg.CallsPerMinute, time.Minute)
}
