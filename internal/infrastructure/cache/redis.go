package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"mediconnect/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// pingTimeout bounds the startup check so a missing Redis fails fast
const pingTimeout = 5 * time.Second

// NewRedisClient opens the store that holds booking sessions and token ids.
// The client is closed again when the first ping fails.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	log.WithFields(logrus.Fields{"addr": addr, "db": cfg.DB}).Info("Redis session store ready")
	return client, nil
}
