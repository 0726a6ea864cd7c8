package bootstrap

import (
	"context"
	"log/slog"

	"hotel-frontdesk/internal/infra/broker"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher publishes to RabbitMQ when AMQP_URL is set, otherwise logs.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventPublisher {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP未設定のためイベントはログ出力のみです")
		return broker.NewLogPublisher(logger)
	}

	p := broker.NewAMQPPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// outbox keeps events until the broker is reachable
			if err := p.Connect(); err != nil {
				logger.Warn("AMQPに接続できません。再接続を待ちます", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
