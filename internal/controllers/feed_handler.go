package controllers

import (
	"context"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/jayblitz/SwipeMe-sub000/internal/models/vo"
)

// FeedServiceAPI 定义 FeedHandler 依赖的 Service 能力。
type FeedServiceAPI interface {
	GetRecommendedFeed(ctx context.Context, viewerID uuid.UUID, limit int) (*vo.RankedFeed, error)
}

// FeedHandler 暴露个性化排序结果的 HTTP 接口。
type FeedHandler struct {
	*BaseHandler
	service FeedServiceAPI
	log     *log.Helper
}

// NewFeedHandler 构造 FeedHandler。
func NewFeedHandler(feed FeedServiceAPI, base *BaseHandler, logger log.Logger) *FeedHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &FeedHandler{
		BaseHandler: base,
		service:     feed,
		log:         log.NewHelper(logger),
	}
}

// RegisterRoutes 在 HTTP Server 上注册路由。
func (h *FeedHandler) RegisterRoutes(srv *khttp.Server) {
	route := srv.Route("/v1")
	route.GET("/feed", h.GetFeed)
}

// GetFeed 返回按分数倒序的推荐结果。
func (h *FeedHandler) GetFeed(ctx khttp.Context) error {
	req := ctx.Request()

	meta := h.ExtractMetadata(req)
	if meta.InvalidUserInfo || meta.UserID == "" {
		return errors.Unauthorized("UNAUTHENTICATED", "invalid user info")
	}
	viewerID, err := uuid.Parse(meta.UserID)
	if err != nil {
		return errors.Unauthorized("UNAUTHENTICATED", "user id is not a valid uuid")
	}

	limit := 0
	if raw := ctx.Query().Get("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			return errors.BadRequest("INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	timeoutCtx, cancel := h.WithTimeout(req.Context(), HandlerTypeQuery)
	defer cancel()

	feed, err := h.service.GetRecommendedFeed(timeoutCtx, viewerID, limit)
	if err != nil {
		h.log.WithContext(req.Context()).Errorw("msg", "get recommended feed failed", "viewer_id", viewerID, "error", err)
		return errors.InternalServer("FEED_RANKING_FAILED", "get recommended feed failed")
	}
	return ctx.Result(200, feed)
}
