package dto

import "skillroots/internal/feature/translation/domain/entity"

// LanguageRes は言語のレスポンスです。
type LanguageRes struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranslationRes はGET /translationsのレスポンスです。
type TranslationRes struct {
	Language LanguageRes    `json:"language"`
	Texts    entity.UITexts `json:"texts"`
}

// NewTranslationRes はUI文字列と解決後の言語からレスポンスを組み立てます。
func NewTranslationRes(texts entity.UITexts, lang entity.Language) TranslationRes {
	return TranslationRes{Language: LanguageRes(lang), Texts: texts}
}

// NewLanguageList は対応言語の一覧を返します。空でもnullにはなりません。
func NewLanguageList(langs []entity.Language) []LanguageRes {
	out := make([]LanguageRes, 0, len(langs))
	for _, l := range langs {
		out = append(out, LanguageRes(l))
	}
	return out
}
