package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"skillroots/internal/feature/translation/domain/entity"
)

type mockTranslator struct {
	calls         int
	TranslateFunc func(ctx context.Context, lang entity.Language, source entity.UITexts) (entity.UITexts, error)
}

func (m *mockTranslator) Translate(ctx context.Context, lang entity.Language, source entity.UITexts) (entity.UITexts, error) {
	m.calls++
	return m.TranslateFunc(ctx, lang, source)
}

func TestTranslationUsecase_Translate(t *testing.T) {
	hindi := entity.English()
	hindi.Logout = "लॉग आउट"

	tests := []struct {
		name      string
		code      string
		err       error
		wantLang  string
		wantText  string
		wantCalls int
	}{
		{name: "english never calls the translator", code: "en", wantLang: "en", wantText: "Logout"},
		{name: "unknown language", code: "fr", wantLang: "en", wantText: "Logout"},
		{name: "supported language", code: " HI ", wantLang: "hi", wantText: "लॉग आउट", wantCalls: 1},
		{name: "translator failure falls back", code: "hi", err: errors.New("quota exceeded"), wantLang: "en", wantText: "Logout", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &mockTranslator{TranslateFunc: func(ctx context.Context, lang entity.Language, source entity.UITexts) (entity.UITexts, error) {
				assert.Equal(t, entity.English(), source)
				if tt.err != nil {
					return entity.UITexts{}, tt.err
				}
				return hindi, nil
			}}
			uc := NewTranslationUsecase(tr)

			texts, lang := uc.Translate(context.Background(), tt.code)

			assert.Equal(t, tt.wantLang, lang.Code)
			assert.Equal(t, tt.wantText, texts.Logout)
			assert.Equal(t, tt.wantCalls, tr.calls)
		})
	}
}

func TestTranslationUsecase_NilTranslator(t *testing.T) {
	uc := NewTranslationUsecase(nil)

	texts, lang := uc.Translate(context.Background(), "ta")

	assert.Equal(t, "en", lang.Code)
	assert.Equal(t, entity.English(), texts)
}

func TestTranslationUsecase_Languages(t *testing.T) {
	uc := NewTranslationUsecase(nil)

	langs := uc.Languages()
	langs[0].Name = "mutated"

	assert.Len(t, langs, 6)
	assert.Equal(t, "English", entity.Languages[0].Name, "callers cannot mutate the package table")
}
