package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/checkin"
	"hotel-portal/internal/domain/pricing"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=checkin.go -destination=../testutil/mock/usecase/mock_checkin.go -package=usecasemock

var ErrStaffOnly = notice.New(http.StatusForbidden, "Only staff can check in other guests.")

const (
	submitLabelCheckIn   = "Check in"
	submitLabelAddToRoom = "Add to room"
)

type CheckInGateway interface {
	CheckInBooking(ctx context.Context, v checkin.Variant) (booking.Booking, error)
	SubmitCheckIn(ctx context.Context, s checkin.Submission) error
	GetGuest(ctx context.Context, email string) (user.Guest, error)
}

type CheckInUseCase interface {
	// Prepare loads what the check-in page shows before the guest submits.
	Prepare(ctx context.Context, sess session.Session, v checkin.Variant) (readmodel.CheckInFormRM, error)
	Submit(ctx context.Context, sess session.Session, v checkin.Variant, details checkin.GuestDetails, doc *checkin.Document) (string, error)
}

type checkInUseCaseImpl struct {
	gateway CheckInGateway
	logger  *slog.Logger
}

func NewCheckInUseCase(gateway CheckInGateway, logger *slog.Logger) CheckInUseCase {
	return &checkInUseCaseImpl{
		gateway: gateway,
		logger:  logger,
	}
}

func (u *checkInUseCaseImpl) Prepare(ctx context.Context, sess session.Session, v checkin.Variant) (readmodel.CheckInFormRM, error) {
	if v.Staff() && !sess.Role().IsAdmin() {
		return readmodel.CheckInFormRM{}, ErrStaffOnly
	}
	ctx = backend.WithCredential(ctx, sess.Token())

	b, err := u.gateway.CheckInBooking(ctx, v)
	if err != nil {
		if backend.IsStatus(err, http.StatusNotFound) {
			return readmodel.CheckInFormRM{}, notice.Override(err, checkin.NotFoundMessage(v))
		}
		return readmodel.CheckInFormRM{}, notice.Wrap(err, notice.Default)
	}

	// backend prices are per night
	est, err := booking.Quote(b.Stay, pricing.FromAmount(b.Price))
	if err != nil {
		u.logger.Warn("check-in booking has no priceable stay", slog.Int64("booking_id", b.ID), slog.Any("error", err))
	}

	form := readmodel.CheckInFormRM{
		Booking:     b,
		Price:       est,
		Email:       checkin.PrefillEmail(v, sess.Email()),
		SubmitLabel: submitLabelCheckIn,
	}
	if _, ok := v.(checkin.ManualAddToRoom); ok {
		form.SubmitLabel = submitLabelAddToRoom
	}

	// A missing profile only means the form starts empty.
	if form.Email != "" {
		g, err := u.gateway.GetGuest(ctx, form.Email)
		if err != nil {
			u.logger.Debug("no guest profile to prefill", slog.String("guest", form.Email), slog.Any("error", err))
		} else {
			form.Details = detailsOf(g)
		}
	}
	return form, nil
}

func detailsOf(g user.Guest) checkin.GuestDetails {
	return checkin.GuestDetails{
		FirstName:      g.FirstName,
		LastName:       g.LastName,
		DateOfBirth:    g.DateOfBirth,
		PlaceOfBirth:   g.PlaceOfBirth,
		Gender:         string(g.Gender),
		Nationality:    g.Nationality,
		Address:        g.Address,
		PassportNumber: g.PassportNumber,
		PhoneNumber:    g.PhoneNumber,
	}
}

func (u *checkInUseCaseImpl) Submit(ctx context.Context, sess session.Session, v checkin.Variant, details checkin.GuestDetails, doc *checkin.Document) (string, error) {
	if v.Staff() && !sess.Role().IsAdmin() {
		return "", ErrStaffOnly
	}
	sub, err := checkin.NewSubmission(v, details, doc)
	if err != nil {
		return "", err
	}
	if err := u.gateway.SubmitCheckIn(backend.WithCredential(ctx, sess.Token()), sub); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.logger.Info("check-in submitted",
		slog.Int64("booking_id", v.Booking()),
		slog.Bool("staff", v.Staff()),
		slog.String("email", sess.Email()),
	)
	return checkin.SuccessMessage(v), nil
}
