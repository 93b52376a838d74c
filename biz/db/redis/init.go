package redis

import (
	"fmt"

	"goalkeeper/api/biz/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Init() {
	conf := config.GetRedisConf()

	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
}

func GetRedisClient() *redis.Client {
	return redisClient
}
