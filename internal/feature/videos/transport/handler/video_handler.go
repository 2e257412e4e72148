// Package handler はvideosフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillroots/internal/feature/videos/domain/entity"
	"skillroots/internal/feature/videos/transport/http/dto"
	"skillroots/internal/feature/videos/usecase"
	jwtmw "skillroots/internal/platform/jwt"
)

// VideosUsecase は動画操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type VideosUsecase interface {
	Upload(ctx context.Context, draft entity.VideoDraft) (*entity.Video, error)
	List(ctx context.Context, query string) ([]entity.Video, error)
	Get(ctx context.Context, id string) (*entity.Video, error)
	Watch(ctx context.Context, id string) (*entity.Video, error)
	Like(ctx context.Context, id string) (*entity.Video, error)
	ListMine(ctx context.Context, ownerEmail string) ([]entity.Video, error)
}

// VideoHandler は動画のHTTPリクエストを処理します。
type VideoHandler struct {
	uc VideosUsecase
}

// NewVideoHandler は指定されたusecaseでVideoHandlerの新しいインスタンスを生成します。
func NewVideoHandler(uc VideosUsecase) *VideoHandler {
	return &VideoHandler{uc: uc}
}

// List は動画一覧を返します。
//
// エンドポイント例:
// GET /videos?q=pottery
func (h *VideoHandler) List(c *gin.Context) {
	vs, err := h.uc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "list videos", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewVideoList(vs))
}

// Get は動画を1件返します。
func (h *VideoHandler) Get(c *gin.Context) {
	v, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get video", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewVideoRes(*v))
}

// Upload はログインユーザーの動画を登録します。
func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.UploadVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.uc.Upload(c.Request.Context(), entity.VideoDraft{
		UserID:       jwtmw.UserEmail(c),
		UploaderName: jwtmw.UserName(c),
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
	})
	if err != nil {
		h.fail(c, "upload video", err)
		return
	}
	slog.Info("video uploaded", "id", v.ID, "owner", v.UserID)
	c.JSON(http.StatusCreated, dto.NewVideoRes(*v))
}

// Watch は再生回数を加算します。
func (h *VideoHandler) Watch(c *gin.Context) {
	v, err := h.uc.Watch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "increment views", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewVideoRes(*v))
}

// Like はいいね数を加算します。
func (h *VideoHandler) Like(c *gin.Context) {
	v, err := h.uc.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "like video", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewVideoRes(*v))
}

// ListMine はログインユーザーの動画を新しい順で返します。
func (h *VideoHandler) ListMine(c *gin.Context) {
	vs, err := h.uc.ListMine(c.Request.Context(), jwtmw.UserEmail(c))
	if err != nil {
		h.fail(c, "list my videos", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewVideoList(vs))
}

func (h *VideoHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrVideoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("video request failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
