package router

import (
	"context"

	"goalkeeper/api/biz/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

// Register wires the HTTP surface onto the engine.
func Register(h *server.Hertz, userHandler *handler.Handler) {
	h.GET("/", func(ctx context.Context, c *app.RequestContext) {
		c.Redirect(consts.StatusFound, []byte("/swagger/index.html"))
	})
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	users := h.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("/:username", userHandler.GetUser)
	users.DELETE("/:username", userHandler.DeleteUser)
	users.PUT("/:username/username", userHandler.RenameUser)
	users.PUT("/:username/salary", userHandler.UpdateSalary)
	users.POST("/:username/goal", userHandler.CreateGoal)
	users.GET("/:username/goal/:goal_id", userHandler.GetGoal)
	users.DELETE("/:username/goal/:goal_id", userHandler.DeleteGoal)
	users.PUT("/:username/goal/:goal_id", userHandler.UpdateGoal)
}
