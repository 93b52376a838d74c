package main

import (
	"flag"

	"goalkeeper/api/biz/config"
	"goalkeeper/api/biz/dal/repo"
	"goalkeeper/api/biz/db/mysql"
	"goalkeeper/api/biz/db/redis"
	"goalkeeper/api/biz/gateway/goal"
	"goalkeeper/api/biz/handler"
	"goalkeeper/api/biz/middleware"
	"goalkeeper/api/biz/router"
	"goalkeeper/api/biz/service/user"
	"goalkeeper/api/biz/util/logger"
	"goalkeeper/api/biz/util/validate"
	_ "goalkeeper/api/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// @title			Goalkeeper API
// @version		1.0.0
// @description	CRUD backend for user accounts and their saving goals.
func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path of the config file")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	redis.Init()

	db, err := mysql.Open(config.GetMySQLConf())
	if err != nil {
		hlog.Fatalf("open mysql failed: %v", err)
	}

	gw, err := goal.NewClient(config.GetGoalAPIConf())
	if err != nil {
		hlog.Fatalf("init goal gateway failed: %v", err)
	}

	svc := user.New(repo.NewUserRepository(db), gw)

	h := server.New(
		server.WithHostPorts(*addr),
		server.WithCustomValidator(validate.New()),
	)
	h.Use(middleware.Suite()...)
	router.Register(h, handler.New(svc))

	h.Spin()
}
