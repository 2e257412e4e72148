// Package handler はinsightsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillroots/internal/feature/insights/domain/entity"
	"skillroots/internal/feature/insights/transport/http/dto"
	"skillroots/internal/feature/insights/usecase"
	jwtmw "skillroots/internal/platform/jwt"
)

// InsightsUsecase は市場インサイトのユースケースインターフェースを定義します。
type InsightsUsecase interface {
	Ask(ctx context.Context, query string) (*entity.Insight, error)
}

type InsightsHandler struct {
	uc InsightsUsecase
}

func NewInsightsHandler(uc InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Ask は質問に対するグラウンディング済みの回答を返します。
func (h *InsightsHandler) Ask(c *gin.Context) {
	var req dto.AskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	in, err := h.uc.Ask(c.Request.Context(), req.Query)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.NewInsightRes(*in))
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInsightsDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		slog.Error("market insights failed", "user", jwtmw.UserEmail(c), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch market insights"})
	}
}
