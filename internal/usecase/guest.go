package usecase

import (
	"context"
	"log/slog"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=guest.go -destination=../testutil/mock/usecase/mock_guest.go -package=usecasemock

const (
	MsgGuestCreated = "Guest created successfully"
	MsgGuestUpdated = "Guest updated successfully"
	MsgGuestDeleted = "Guest deleted"
)

type GuestGateway interface {
	ListGuests(ctx context.Context, p queries.PageRequest) (readmodel.Page[readmodel.GuestRM], error)
	SearchGuests(ctx context.Context, q queries.GuestSearch) (readmodel.Page[readmodel.GuestRM], error)
	GetGuest(ctx context.Context, email string) (user.Guest, error)
	CreateGuest(ctx context.Context, f user.GuestForm) (user.Guest, error)
	UpdateGuest(ctx context.Context, email string, f user.GuestForm) (user.Guest, error)
	DeleteGuest(ctx context.Context, email string) error
}

type GuestUseCase interface {
	List(ctx context.Context, sess session.Session, q queries.GuestSearch) (readmodel.Page[readmodel.GuestRM], error)
	Get(ctx context.Context, sess session.Session, email string) (user.Guest, error)
	Create(ctx context.Context, sess session.Session, in user.GuestInput) (user.Guest, string, error)
	Update(ctx context.Context, sess session.Session, email string, in user.GuestInput) (user.Guest, string, error)
	Delete(ctx context.Context, sess session.Session, email string) (string, error)
}

type guestUseCaseImpl struct {
	gateway GuestGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewGuestUseCase(gateway GuestGateway, clk clock.Clock, logger *slog.Logger) GuestUseCase {
	return &guestUseCaseImpl{
		gateway: gateway,
		clock:   clk,
		logger:  logger,
	}
}

func (u *guestUseCaseImpl) List(ctx context.Context, sess session.Session, q queries.GuestSearch) (readmodel.Page[readmodel.GuestRM], error) {
	ctx = backend.WithCredential(ctx, sess.Token())
	q.PageRequest = q.PageRequest.Normalize()

	var (
		page readmodel.Page[readmodel.GuestRM]
		err  error
	)
	if q.IsEmpty() {
		page, err = u.gateway.ListGuests(ctx, q.PageRequest)
	} else {
		page, err = u.gateway.SearchGuests(ctx, q)
	}
	if err != nil {
		return readmodel.Page[readmodel.GuestRM]{}, notice.Wrap(err, notice.Policy{Fallback: "Error loading guests"})
	}
	return page, nil
}

func (u *guestUseCaseImpl) Get(ctx context.Context, sess session.Session, email string) (user.Guest, error) {
	g, err := u.gateway.GetGuest(backend.WithCredential(ctx, sess.Token()), email)
	if err != nil {
		return user.Guest{}, notice.Wrap(err, notice.Policy{RawNotFound: true})
	}
	return g, nil
}

func (u *guestUseCaseImpl) Create(ctx context.Context, sess session.Session, in user.GuestInput) (user.Guest, string, error) {
	form, err := user.NewGuestForm(in, true, calendar.DateOf(u.clock.Now()))
	if err != nil {
		return user.Guest{}, "", err
	}
	g, err := u.gateway.CreateGuest(backend.WithCredential(ctx, sess.Token()), form)
	if err != nil {
		return user.Guest{}, "", notice.Wrap(err, notice.Default)
	}
	return g, MsgGuestCreated, nil
}

func (u *guestUseCaseImpl) Update(ctx context.Context, sess session.Session, email string, in user.GuestInput) (user.Guest, string, error) {
	form, err := user.NewGuestForm(in, false, calendar.DateOf(u.clock.Now()))
	if err != nil {
		return user.Guest{}, "", err
	}
	g, err := u.gateway.UpdateGuest(backend.WithCredential(ctx, sess.Token()), email, form)
	if err != nil {
		return user.Guest{}, "", notice.Wrap(err, notice.Default)
	}
	return g, MsgGuestUpdated, nil
}

func (u *guestUseCaseImpl) Delete(ctx context.Context, sess session.Session, email string) (string, error) {
	if err := u.gateway.DeleteGuest(backend.WithCredential(ctx, sess.Token()), email); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.logger.Info("guest deleted", slog.String("guest", email), slog.String("email", sess.Email()))
	return MsgGuestDeleted, nil
}
