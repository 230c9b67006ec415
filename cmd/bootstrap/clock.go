package bootstrap

import (
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/pkg/jwt"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
		jwt.NewDecoder,
	),
)

// NewClock reports time in the hotel's zone so "today" matches the front desk.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Hotel.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewZonedClock(loc), nil
}
