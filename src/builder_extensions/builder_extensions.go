package builderextensions

import (
	"context"
	"time"

	appbuilder "sos-api/pkg/app_builder"
	"sos-api/pkg/utilities"
	"sos-api/src/middleware"

	"github.com/redis/go-redis/v9"
)

type RedisSettings struct {
	Addr     string
	Password string
	DB       int
}

type RedisConfig interface {
	appbuilder.AppConfig
	GetRedisSettings() RedisSettings
}

// ConnectToRedis returns the rate limit counter, or nil when no redis address is set.
// An unreachable server is only logged; the limiter lets requests through until it
// comes back.
func ConnectToRedis[T utilities.JsonConfigObj[U], U RedisConfig](a *appbuilder.AppBuilder[T, U]) middleware.Counter {
	settings := a.Config.GetRedisSettings()
	if settings.Addr == "" {
		a.Logger.Warn("Redis address not configured, rate limiting disabled")
		return nil
	}

	a.Logger.Infof("Connecting to Redis at %s ...", settings.Addr)
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.Logger.Error(err, "Redis ping failed")
	} else {
		a.Logger.Info("Connection with Redis established")
	}

	return middleware.NewRedisCounter(client)
}
