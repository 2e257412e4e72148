package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillroots/internal/feature/insights/domain/entity"
)

type mockSearcher struct {
	SearchFunc func(ctx context.Context, query string) (*entity.Insight, error)
}

func (m *mockSearcher) Search(ctx context.Context, query string) (*entity.Insight, error) {
	return m.SearchFunc(ctx, query)
}

func TestInsightsUsecase_Ask(t *testing.T) {
	var got string
	s := &mockSearcher{SearchFunc: func(ctx context.Context, query string) (*entity.Insight, error) {
		got = query
		return &entity.Insight{Answer: "Millet prices are rising."}, nil
	}}
	uc := NewInsightsUsecase(s)

	in, err := uc.Ask(context.Background(), "  millet prices in Karnataka  ")

	require.NoError(t, err)
	assert.Equal(t, "millet prices in Karnataka", got)
	assert.Equal(t, "millet prices in Karnataka", in.Query)
	assert.Equal(t, "Millet prices are rising.", in.Answer)
	assert.NotNil(t, in.Sources)
}

func TestInsightsUsecase_AskErrors(t *testing.T) {
	upstream := &mockSearcher{SearchFunc: func(ctx context.Context, query string) (*entity.Insight, error) {
		return nil, errors.New("quota")
	}}

	tests := []struct {
		name     string
		searcher Searcher
		query    string
		wantErr  error
	}{
		{"empty", upstream, "   ", ErrInvalidInput},
		{"too long", upstream, strings.Repeat("क", MaxQueryLength+1), ErrInvalidInput},
		{"disabled", nil, "rice", ErrInsightsDisabled},
		{"upstream failure", upstream, "rice", ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewInsightsUsecase(tt.searcher)
			_, err := uc.Ask(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInsightsUsecase_MaxLengthCountsRunes(t *testing.T) {
	s := &mockSearcher{SearchFunc: func(ctx context.Context, query string) (*entity.Insight, error) {
		return &entity.Insight{}, nil
	}}
	uc := NewInsightsUsecase(s)

	_, err := uc.Ask(context.Background(), strings.Repeat("க", MaxQueryLength))
	assert.NoError(t, err)
}
