package usecase

import (
	"context"
	"log/slog"
	"time"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
)

//go:generate mockgen -source=guard.go -destination=../testutil/mock/usecase/mock_guard.go -package=usecasemock

type ModuleGateway interface {
	ModuleEnabled(ctx context.Context, m uiconfig.Module) (bool, error)
}

type GuardUseCase interface {
	// Decide checks a browser route.
	Decide(ctx context.Context, path string, sess session.Session) access.Decision
	// Check applies the same rules to an explicit requirement.
	Check(ctx context.Context, req access.Requirement, sess session.Session) access.Decision
	// Modules reports every module switch, served from the flag cache.
	Modules(ctx context.Context) map[uiconfig.Module]bool
}

type guardUseCaseImpl struct {
	gateway ModuleGateway
	hints   hints
	clock   clock.Clock
	mode    string
	ttl     time.Duration
	logger  *slog.Logger
}

func NewGuardUseCase(gateway ModuleGateway, kv KVStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) GuardUseCase {
	return &guardUseCaseImpl{
		gateway: gateway,
		hints:   hints{kv: kv, logger: logger},
		clock:   clk,
		mode:    cfg.Guard.ModuleFlags,
		ttl:     cfg.Guard.FlagTTL,
		logger:  logger,
	}
}

func (g *guardUseCaseImpl) Decide(ctx context.Context, path string, sess session.Session) access.Decision {
	return g.Check(ctx, access.Lookup(path), sess)
}

func (g *guardUseCaseImpl) Check(ctx context.Context, req access.Requirement, sess session.Session) access.Decision {
	moduleOff := func(m uiconfig.Module) bool {
		if g.mode == config.ModuleFlagsLegacy {
			return false
		}
		return !g.enabled(ctx, m)
	}
	return access.Evaluate(req, sess.IsLoggedIn(g.clock.Now()), sess.Role(), moduleOff)
}

func (g *guardUseCaseImpl) Modules(ctx context.Context) map[uiconfig.Module]bool {
	out := make(map[uiconfig.Module]bool, len(uiconfig.All))
	for _, m := range uiconfig.All {
		out[m] = g.enabled(ctx, m)
	}
	return out
}

// enabled reads the flag through the KV cache. A failed fetch counts as
// enabled so a backend outage never locks users out of a page.
func (g *guardUseCaseImpl) enabled(ctx context.Context, m uiconfig.Module) bool {
	var cached bool
	if g.hints.get(ctx, moduleKey(m), &cached) {
		return cached
	}
	on, err := g.gateway.ModuleEnabled(ctx, m)
	if err != nil {
		g.logger.Warn("module flag fetch failed, allowing", slog.String("module", string(m)), slog.Any("error", err))
		return true
	}
	if err := g.hints.put(ctx, moduleKey(m), on, g.ttl); err != nil {
		g.logger.Warn("module flag not cached", slog.String("module", string(m)), slog.Any("error", err))
	}
	return on
}
