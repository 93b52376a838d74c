package middleware

import (
	"goalkeeper/api/biz/middleware/accesslog"
	"goalkeeper/api/biz/middleware/cors"
	"goalkeeper/api/biz/middleware/ratelimit"
	"goalkeeper/api/biz/middleware/recovery"
	"goalkeeper/api/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
		ratelimit.New(), // 限流
	}
}
