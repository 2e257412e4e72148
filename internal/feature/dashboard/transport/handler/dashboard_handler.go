// Package handler はdashboardフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillroots/internal/feature/dashboard/domain/entity"
	"skillroots/internal/feature/dashboard/transport/http/dto"
	jwtmw "skillroots/internal/platform/jwt"
)

// DashboardUsecase はダッシュボードのユースケースインターフェースを定義します。
type DashboardUsecase interface {
	Stats(ctx context.Context, email string) (*entity.Stats, error)
	Wallet(ctx context.Context, email string) (*entity.Wallet, error)
}

// DashboardHandler はダッシュボードのHTTPリクエストを処理します。
type DashboardHandler struct {
	uc DashboardUsecase
}

// NewDashboardHandler は指定されたusecaseでDashboardHandlerの新しいインスタンスを生成します。
func NewDashboardHandler(uc DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats はログインユーザーの活動集計を返します。
func (h *DashboardHandler) Stats(c *gin.Context) {
	s, err := h.uc.Stats(c.Request.Context(), jwtmw.UserEmail(c))
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsRes(*s))
}

// Wallet はログインユーザーのスキルウォレットを返します。
func (h *DashboardHandler) Wallet(c *gin.Context) {
	w, err := h.uc.Wallet(c.Request.Context(), jwtmw.UserEmail(c))
	if err != nil {
		slog.Error("failed to build wallet", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletRes(*w))
}
