package usecase

import (
	"context"
	"log/slog"
	"strings"

	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=staff.go -destination=../testutil/mock/usecase/mock_staff.go -package=usecasemock

const MsgGuestRemoved = "Successfully removed the guest from the room."

type StaffGateway interface {
	AllRoomGuests(ctx context.Context, bookingID int64) ([]readmodel.GuestRM, error)
	RemoveGuest(ctx context.Context, bookingID int64, email string) error
	StaffCheckOut(ctx context.Context, bookingID int64, email string) error
	Passport(ctx context.Context, bookingID int64, email string) (readmodel.DocumentRM, error)
}

// StaffUseCase covers the front desk's view of an occupied booking.
type StaffUseCase interface {
	Guests(ctx context.Context, sess session.Session, bookingID int64) ([]readmodel.GuestRM, error)
	RemoveGuest(ctx context.Context, sess session.Session, bookingID int64, email string) (string, error)
	CheckOut(ctx context.Context, sess session.Session, bookingID int64, email string) (string, error)
	Passport(ctx context.Context, sess session.Session, bookingID int64, email string) (readmodel.DocumentRM, error)
}

type staffUseCaseImpl struct {
	gateway StaffGateway
	logger  *slog.Logger
}

func NewStaffUseCase(gateway StaffGateway, logger *slog.Logger) StaffUseCase {
	return &staffUseCaseImpl{
		gateway: gateway,
		logger:  logger,
	}
}

func (u *staffUseCaseImpl) Guests(ctx context.Context, sess session.Session, bookingID int64) ([]readmodel.GuestRM, error) {
	guests, err := u.gateway.AllRoomGuests(backend.WithCredential(ctx, sess.Token()), bookingID)
	if err != nil {
		return nil, notice.Wrap(err, notice.Policy{Fallback: "Error loading guests"})
	}
	return guests, nil
}

func (u *staffUseCaseImpl) RemoveGuest(ctx context.Context, sess session.Session, bookingID int64, email string) (string, error) {
	if _, err := user.NewEmail(email); err != nil {
		return "", err
	}
	if err := u.gateway.RemoveGuest(backend.WithCredential(ctx, sess.Token()), bookingID, email); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.logger.Info("guest removed from room", slog.Int64("booking_id", bookingID), slog.String("guest", email))
	return MsgGuestRemoved, nil
}

func (u *staffUseCaseImpl) CheckOut(ctx context.Context, sess session.Session, bookingID int64, email string) (string, error) {
	email = strings.TrimSpace(email)
	if _, err := user.NewEmail(email); err != nil {
		return "", err
	}
	if err := u.gateway.StaffCheckOut(backend.WithCredential(ctx, sess.Token()), bookingID, email); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	return MsgGuestLeft, nil
}

func (u *staffUseCaseImpl) Passport(ctx context.Context, sess session.Session, bookingID int64, email string) (readmodel.DocumentRM, error) {
	doc, err := u.gateway.Passport(backend.WithCredential(ctx, sess.Token()), bookingID, email)
	if err != nil {
		return readmodel.DocumentRM{}, notice.Wrap(err, notice.Policy{RawNotFound: true, Fallback: "Error downloading passport"})
	}
	return doc, nil
}
