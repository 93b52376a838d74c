package recovery

import (
	"github.com/cloudwego/hertz/pkg/app"
	hertzrecovery "github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
)

func New() app.HandlerFunc {
	return hertzrecovery.Recovery()
}
