package cors

import (
	"slices"
	"time"

	"goalkeeper/api/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

func New() app.HandlerFunc {
	conf := config.GetCORSConf()

	cfg := cors.Config{
		AllowMethods:     conf.AllowMethods,
		AllowHeaders:     conf.AllowHeaders,
		AllowCredentials: conf.AllowCredentials,
		MaxAge:           time.Duration(conf.MaxAge) * time.Second,
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 12 * time.Hour
	}

	switch {
	case len(conf.AllowOrigins) == 0:
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	case slices.Contains(conf.AllowOrigins, "*"):
		if conf.AllowCredentials {
			// the wildcard origin cannot be combined with credentials,
			// reflect the caller's origin instead
			cfg.AllowOriginFunc = func(origin string) bool { return true }
		} else {
			cfg.AllowAllOrigins = true
		}
	default:
		cfg.AllowOrigins = conf.AllowOrigins
	}

	return cors.New(cfg)
}
