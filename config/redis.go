package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

func ConnectRedis(cfg RedisConfig) error {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis: %w", err)
	}

	RedisClient = client
	Log.Info("[config.redis] connected", zap.String("addr", opt.Addr), zap.String("ping", res))
	return nil
}

func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		Log.Warn("[config.redis] close failed", zap.Error(err))
	}
}
