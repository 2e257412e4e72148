// Package usecase はtranslationフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"skillroots/internal/feature/translation/domain/entity"
)

// Translator はUI文字列テーブルを指定言語へ翻訳します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Translator interface {
	Translate(ctx context.Context, lang entity.Language, source entity.UITexts) (entity.UITexts, error)
}

// translationUsecase は翻訳のユースケースを実装します。
type translationUsecase struct {
	translator Translator
}

// NewTranslationUsecase はtranslationUsecaseの新しいインスタンスを生成します。
// translatorがnilの場合は常に英語を返します。
func NewTranslationUsecase(translator Translator) *translationUsecase {
	return &translationUsecase{translator: translator}
}

// Translate は指定言語のUI文字列を返します。
// 未対応の言語コードや翻訳の失敗時はエラーを返さず英語にフォールバックします。
func (u *translationUsecase) Translate(ctx context.Context, code string) (entity.UITexts, entity.Language) {
	english := entity.English()
	en, _ := entity.LookupLanguage(entity.DefaultLanguage)

	lang, ok := entity.LookupLanguage(strings.ToLower(strings.TrimSpace(code)))
	if !ok || lang.Code == entity.DefaultLanguage {
		return english, en
	}
	if u.translator == nil {
		slog.Debug("translation disabled; using English", "lang", lang.Code)
		return english, en
	}

	texts, err := u.translator.Translate(ctx, lang, english)
	if err != nil {
		slog.Warn("translation failed; falling back to English", "lang", lang.Code, "error", err)
		return english, en
	}
	return texts, lang
}

// Languages は対応言語の一覧を返します。
func (u *translationUsecase) Languages() []entity.Language {
	return append([]entity.Language(nil), entity.Languages...)
}
