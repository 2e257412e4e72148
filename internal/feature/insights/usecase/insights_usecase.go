// Package usecase はinsightsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"skillroots/internal/feature/insights/domain/entity"
)

// MaxQueryLength は質問の最大文字数（rune数）です。
const MaxQueryLength = 500

// Searcher はWeb検索でグラウンディングされた回答を生成します。
type Searcher interface {
	Search(ctx context.Context, query string) (*entity.Insight, error)
}

type insightsUsecase struct {
	searcher Searcher
}

// NewInsightsUsecase はinsightsUsecaseの新しいインスタンスを生成します。searcherはnilでも構いません。
func NewInsightsUsecase(searcher Searcher) *insightsUsecase {
	return &insightsUsecase{searcher: searcher}
}

// Ask は市場に関する質問に回答します。
func (u *insightsUsecase) Ask(ctx context.Context, query string) (*entity.Insight, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return nil, fmt.Errorf("%w: query must be at most %d characters", ErrInvalidInput, MaxQueryLength)
	}
	if u.searcher == nil {
		return nil, ErrInsightsDisabled
	}

	in, err := u.searcher.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	in.Query = q
	if in.Sources == nil {
		in.Sources = []entity.Source{}
	}
	return in, nil
}
