package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/checkin"
	"hotel-portal/internal/domain/cleaning"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/readmodel"
)

//go:generate mockgen -source=myroom.go -destination=../testutil/mock/usecase/mock_myroom.go -package=usecasemock

const (
	MsgInvited     = "Invited to room successfully."
	MsgDoorOpened  = "Door opened successfully!"
	MsgGuestLeft   = "Guest checked out successfully."
	keyStatusError = "unknown"
)

var ErrNotCheckedIn = notice.New(http.StatusNotFound, "You are not checked in.")

type MyRoomGateway interface {
	MyRooms(ctx context.Context) ([]room.Room, error)
	RoomBooking(ctx context.Context, roomID int64) (booking.Booking, error)
	IsOwner(ctx context.Context, bookingID int64) (bool, error)
	RoomGuests(ctx context.Context, bookingID int64) ([]readmodel.GuestRM, error)
	KeyStatus(ctx context.Context, roomID int64) (readmodel.KeyStatusRM, error)
	InviteToRoom(ctx context.Context, inv checkin.Invite) error
	CheckOut(ctx context.Context, bookingID int64, email string) error
	Unlock(ctx context.Context, roomID int64) error
}

type MyRoomUseCase interface {
	// View lists the rooms the caller is checked into.
	View(ctx context.Context, sess session.Session) ([]readmodel.MyRoomRM, error)
	Invite(ctx context.Context, sess session.Session, roomID int64, email string) (string, error)
	CheckOut(ctx context.Context, sess session.Session, roomID int64) (string, error)
	Unlock(ctx context.Context, sess session.Session, roomID int64) (string, error)
}

type myRoomUseCaseImpl struct {
	gateway MyRoomGateway
	hints   hints
	clock   clock.Clock
	fanout  int
	logger  *slog.Logger
}

func NewMyRoomUseCase(gateway MyRoomGateway, kv KVStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) MyRoomUseCase {
	return &myRoomUseCaseImpl{
		gateway: gateway,
		hints:   hints{kv: kv, logger: logger},
		clock:   clk,
		fanout:  cfg.Backend.Fanout,
		logger:  logger,
	}
}

func (u *myRoomUseCaseImpl) View(ctx context.Context, sess session.Session) ([]readmodel.MyRoomRM, error) {
	ctx = backend.WithCredential(ctx, sess.Token())
	rooms, err := u.gateway.MyRooms(ctx)
	if err != nil {
		return nil, notice.Wrap(err, notice.Default)
	}
	if len(rooms) == 0 {
		return nil, ErrNotCheckedIn
	}

	now := u.clock.Now()
	options := cleaning.TimeOptions(now)
	out := make([]readmodel.MyRoomRM, len(rooms))
	fanOut(len(rooms), u.fanout, func(i int) {
		out[i] = u.roomView(ctx, sess, rooms[i], now)
		out[i].TimeOptions = options
	})
	return out, nil
}

// roomView resolves the booking first; owner flag, guest list and lock
// status depend on it and load together. Failures leave their field empty.
func (u *myRoomUseCaseImpl) roomView(ctx context.Context, sess session.Session, r room.Room, now time.Time) readmodel.MyRoomRM {
	view := readmodel.MyRoomRM{Room: r, KeyStatus: keyStatusError}

	if w, ok := u.hints.window(ctx, sess.Email(), r.ID, calendar.DateOf(now)); ok {
		view.CleaningFrom = w.From().String()
		view.CleaningTo = w.To().String()
		view.CleaningInUse = true
	} else if r.CleaningTime != nil && !r.ExpiredAt(now) {
		view.CleaningFrom = calendar.ClockOf(r.CleaningTime.From.In(now.Location())).String()
		view.CleaningTo = calendar.ClockOf(r.CleaningTime.To.In(now.Location())).String()
		view.CleaningInUse = true
	}

	b, err := u.gateway.RoomBooking(ctx, r.ID)
	if err != nil {
		u.logger.Warn("room booking unavailable", slog.Int64("room_id", r.ID), slog.Any("error", err))
		return view
	}
	view.BookingID = b.ID

	var g errgroup.Group
	g.Go(func() error {
		owner, err := u.gateway.IsOwner(ctx, b.ID)
		if err != nil {
			u.logger.Warn("owner check failed", slog.Int64("booking_id", b.ID), slog.Any("error", err))
			return nil
		}
		view.IsOwner = owner
		return nil
	})
	var guests []readmodel.GuestRM
	g.Go(func() error {
		var err error
		guests, err = u.gateway.RoomGuests(ctx, b.ID)
		if err != nil {
			u.logger.Warn("room guests unavailable", slog.Int64("booking_id", b.ID), slog.Any("error", err))
		}
		return nil
	})
	var status string
	g.Go(func() error {
		ks, err := u.gateway.KeyStatus(ctx, r.ID)
		if err != nil {
			u.logger.Warn("key status unavailable", slog.Int64("room_id", r.ID), slog.Any("error", err))
			return nil
		}
		status = ks.Status
		return nil
	})
	_ = g.Wait()

	view.Guests = guests
	if status != "" {
		view.KeyStatus = status
	}
	return view
}

// Invite checks the address and the self-invite rule before anything is
// sent, then refuses guests who already share the room.
func (u *myRoomUseCaseImpl) Invite(ctx context.Context, sess session.Session, roomID int64, email string) (string, error) {
	if _, err := checkin.NewInvite(0, email, sess.Email(), nil); err != nil {
		return "", err
	}

	ctx = backend.WithCredential(ctx, sess.Token())
	b, err := u.gateway.RoomBooking(ctx, roomID)
	if err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	guests, err := u.gateway.RoomGuests(ctx, b.ID)
	if err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	emails := make([]string, len(guests))
	for i, g := range guests {
		emails[i] = g.Email
	}

	inv, err := checkin.NewInvite(b.ID, email, sess.Email(), emails)
	if err != nil {
		return "", err
	}
	if err := u.gateway.InviteToRoom(ctx, inv); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	return MsgInvited, nil
}

func (u *myRoomUseCaseImpl) CheckOut(ctx context.Context, sess session.Session, roomID int64) (string, error) {
	ctx = backend.WithCredential(ctx, sess.Token())
	b, err := u.gateway.RoomBooking(ctx, roomID)
	if err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	if err := u.gateway.CheckOut(ctx, b.ID, sess.Email()); err != nil {
		return "", notice.Wrap(err, notice.Default)
	}
	u.hints.drop(ctx, windowKey(sess.Email(), roomID))
	return MsgCheckedOut, nil
}

func (u *myRoomUseCaseImpl) Unlock(ctx context.Context, sess session.Session, roomID int64) (string, error) {
	if err := u.gateway.Unlock(backend.WithCredential(ctx, sess.Token()), roomID); err != nil {
		return "", notice.Wrap(err, notice.Policy{Fallback: "Failed to open the door."})
	}
	u.logger.Info("door unlocked", slog.Int64("room_id", roomID), slog.String("email", sess.Email()))
	return MsgDoorOpened, nil
}
