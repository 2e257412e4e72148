// Package handler はtranslationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillroots/internal/feature/translation/domain/entity"
	"skillroots/internal/feature/translation/transport/http/dto"
)

// TranslationUsecase は翻訳のユースケースインターフェースを定義します。
type TranslationUsecase interface {
	Translate(ctx context.Context, code string) (entity.UITexts, entity.Language)
	Languages() []entity.Language
}

// TranslationHandler は翻訳のHTTPリクエストを処理します。
type TranslationHandler struct {
	uc TranslationUsecase
}

// NewTranslationHandler はTranslationHandlerの新しいインスタンスを生成します。
func NewTranslationHandler(uc TranslationUsecase) *TranslationHandler {
	return &TranslationHandler{uc: uc}
}

// Translations はlangクエリで指定された言語のUI文字列を返します。
// 翻訳に失敗しても英語で200を返します。
func (h *TranslationHandler) Translations(c *gin.Context) {
	texts, lang := h.uc.Translate(c.Request.Context(), c.DefaultQuery("lang", entity.DefaultLanguage))
	c.JSON(http.StatusOK, dto.NewTranslationRes(texts, lang))
}

// Languages は対応言語の一覧を返します。
func (h *TranslationHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewLanguageList(h.uc.Languages()))
}
