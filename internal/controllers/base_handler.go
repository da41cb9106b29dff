package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// userInfoHeader 是网关注入的用户身份头，内容为 base64url 编码的 JSON claims。
const userInfoHeader = "x-apigateway-api-userinfo"

// HandlerType 区分读写两类请求的超时档位。
type HandlerType int

// 请求超时档位。
const (
	HandlerTypeQuery HandlerType = iota
	HandlerTypeCommand
)

// HandlerTimeouts 配置各档位的处理超时，零值回落到默认值。
type HandlerTimeouts struct {
	Query   time.Duration
	Command time.Duration
}

// 默认超时档位。
const (
	defaultQueryTimeout   = 3 * time.Second
	defaultCommandTimeout = 5 * time.Second
)

// BaseHandler 封装各 Handler 共享的超时控制与身份解析。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler，未设置的超时取默认值。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	if timeouts.Command <= 0 {
		timeouts.Command = defaultCommandTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 按请求档位派生带超时的 context。
func (h *BaseHandler) WithTimeout(ctx context.Context, handlerType HandlerType) (context.Context, context.CancelFunc) {
	timeout := h.timeouts.Query
	if handlerType == HandlerTypeCommand {
		timeout = h.timeouts.Command
	}
	return context.WithTimeout(ctx, timeout)
}

// UserMetadata 描述从网关头解析出的用户身份。
type UserMetadata struct {
	UserID          string
	InvalidUserInfo bool
}

// ExtractMetadata 解析网关注入的用户信息头。头缺失返回空身份；
// 头存在但无法解码或缺少 sub 时标记为非法。
func (h *BaseHandler) ExtractMetadata(r *http.Request) UserMetadata {
	raw := strings.TrimSpace(r.Header.Get(userInfoHeader))
	if raw == "" {
		return UserMetadata{}
	}
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return UserMetadata{InvalidUserInfo: true}
	}
	var claims struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Sub == "" {
		return UserMetadata{InvalidUserInfo: true}
	}
	return UserMetadata{UserID: claims.Sub}
}
