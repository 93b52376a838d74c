package ratelimit

import (
	"context"

	"goalkeeper/api/biz/config"
	"goalkeeper/api/biz/model/dto"
	"goalkeeper/api/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// New creates a rate limit middleware that uses configuration from config.GetRateLimitConf().
// Counters are kept per path and client IP; the surface has no session concept.
func New() app.HandlerFunc {
	confList := config.GetRateLimitConf()
	rules := make(map[string]*Interceptor)

	for _, conf := range confList {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = NewInterceptor(conf.WindowSeconds, conf.Limit)
		}
	}

	// Default rule: window=1, limit=20
	defaultRule := NewInterceptor(1, 20)

	return func(ctx context.Context, c *app.RequestContext) {
		path := string(c.Request.URI().Path())

		r, ok := rules[path]
		if !ok {
			r = defaultRule
		}

		key := path + ":" + c.ClientIP()

		allowed, err := r.Allow(ctx, key)
		if err != nil {
			// Fail open strategy: Log error and allow request on Redis failure
			hlog.CtxErrorf(ctx, "Rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(consts.StatusTooManyRequests, dto.MessageResp{
				Message: errs.TooManyRequest.Msg(),
			})
			return
		}

		c.Next(ctx)
	}
}
