package bootstrap

import (
	"time"

	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewHotelLocation,
		NewHotelPolicy,
	),
)

func NewHotelLocation(cfg config.Config) *time.Location {
	return cfg.Hotel.Location()
}

func NewHotelPolicy(cfg config.Config) commands.HotelPolicy {
	return commands.HotelPolicy{
		RevenueCategory: cfg.Hotel.RevenueCategory,
		CleaningDelay:   cfg.Hotel.CleaningDelay,
		JobBatchSize:    cfg.Worker.BatchSize,
		JobLease:        cfg.Worker.JobLease,
	}
}
