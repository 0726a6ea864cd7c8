package bootstrap

import (
	"context"
	"log/slog"

	"hotel-frontdesk/internal/infra/cache"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

// ChangeHub is the read cache and the change stream behind it.
type ChangeHub interface {
	queries.Cache
	queries.ChangeFeed
	commands.ChangeNotifier
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewChangeHub,
		func(h ChangeHub) queries.Cache { return h },
		func(h ChangeHub) queries.ChangeFeed { return h },
		func(h ChangeHub) commands.ChangeNotifier { return h },
	),
)

// NewChangeHub uses Redis when REDIS_ADDR is set. Without it nothing is cached
// and change notifications stay in process.
func NewChangeHub(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) ChangeHub {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis未設定のためプロセス内の変更通知を使用します")
		return cache.NewLocalHub()
	}

	rc := cache.NewRedisCache(cache.NewRedisClient(cfg.Redis), cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rc.Ping(ctx); err != nil {
				logger.Warn("Redisに接続できません。キャッシュなしで続行します", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rc.Close()
		},
	})
	return rc
}
