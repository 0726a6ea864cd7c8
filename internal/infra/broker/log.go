package broker

import (
	"context"
	"log/slog"
)

// LogPublisher stands in for the broker when AMQP is not configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.logger.InfoContext(ctx, "event", "topic", topic, "payload", string(payload))
	return nil
}
