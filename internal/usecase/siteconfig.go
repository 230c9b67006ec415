package usecase

import (
	"context"
	"log/slog"

	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/notice"
)

//go:generate mockgen -source=siteconfig.go -destination=../testutil/mock/usecase/mock_siteconfig.go -package=usecasemock

type SiteConfigGateway interface {
	UIConfig(ctx context.Context) (uiconfig.Config, error)
	Homepage(ctx context.Context) (uiconfig.Homepage, error)
	UpdateUIConfig(ctx context.Context, cfg uiconfig.Config, images []backend.File) (uiconfig.Config, error)
}

type SiteConfigUseCase interface {
	Homepage(ctx context.Context) (uiconfig.Homepage, error)
	Get(ctx context.Context, sess session.Session) (uiconfig.Config, error)
	// Update saves the configuration and drops the cached module flags so the
	// guard sees the new switches on its next check.
	Update(ctx context.Context, sess session.Session, in uiconfig.Config, images []backend.File) (uiconfig.Config, string, error)
}

type siteConfigUseCaseImpl struct {
	gateway SiteConfigGateway
	hints   hints
	logger  *slog.Logger
}

func NewSiteConfigUseCase(gateway SiteConfigGateway, kv KVStore, logger *slog.Logger) SiteConfigUseCase {
	return &siteConfigUseCaseImpl{
		gateway: gateway,
		hints:   hints{kv: kv, logger: logger},
		logger:  logger,
	}
}

func (u *siteConfigUseCaseImpl) Homepage(ctx context.Context) (uiconfig.Homepage, error) {
	h, err := u.gateway.Homepage(ctx)
	if err != nil {
		return uiconfig.Homepage{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading homepage"})
	}
	return h, nil
}

func (u *siteConfigUseCaseImpl) Get(ctx context.Context, sess session.Session) (uiconfig.Config, error) {
	cfg, err := u.gateway.UIConfig(backend.WithCredential(ctx, sess.Token()))
	if err != nil {
		return uiconfig.Config{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading configuration"})
	}
	return cfg, nil
}

func (u *siteConfigUseCaseImpl) Update(ctx context.Context, sess session.Session, in uiconfig.Config, images []backend.File) (uiconfig.Config, string, error) {
	form, err := uiconfig.NewForm(in)
	if err != nil {
		return uiconfig.Config{}, "", err
	}
	saved, err := u.gateway.UpdateUIConfig(backend.WithCredential(ctx, sess.Token()), form, images)
	if err != nil {
		return uiconfig.Config{}, "", notice.Wrap(err, notice.Default)
	}
	for _, m := range uiconfig.All {
		u.hints.drop(ctx, moduleKey(m))
	}
	return saved, uiconfig.SavedMessage, nil
}
