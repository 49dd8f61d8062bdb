// Package redisclient opens the single Redis connection shared by the
// distributed mutex (pkg/distributedmutex): per-sid session writes lock
// through it. File Server's per-file_ref background passes use the
// in-process internal/fileserver/lockset instead.
package redisclient

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/doka-one/doka/config"
)

func NewClient(cfg *config.Configuration, logger *zap.Logger) redis.UniversalClient {
	logger = logger.With(zap.String("component", "redis"))

	opt, err := redis.ParseURL(cfg.Cache.RedisURI)
	if err != nil {
		logger.Error("failed parsing redis uri", zap.Error(err))
		log.Fatal(err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var pingErr error
	for i := 0; i < 3; i++ {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			break
		}
		if i == 2 {
			logger.Error("failed connecting to redis", zap.Error(pingErr), zap.String("uri", cfg.Cache.RedisURI))
			log.Fatal(pingErr)
		}
		time.Sleep(2 * time.Second)
	}

	return client
}
